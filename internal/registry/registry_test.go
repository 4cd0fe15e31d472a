package registry

import (
	"testing"

	"github.com/vovakirdan/tui-drops/internal/config"
)

func TestFromConfigOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	extra := cfg.Difficulties["hard"]
	extra.Name = "Custom"
	cfg.Difficulties["aaa"] = extra

	r, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() failed: %v", err)
	}

	list := r.List()
	expected := []config.DifficultyPreset{"easy", "normal", "hard", "aaa"}
	if len(list) != len(expected) {
		t.Fatalf("Expected %d profiles, got %d", len(expected), len(list))
	}
	for i, key := range expected {
		if list[i].Key != key {
			t.Errorf("List()[%d] = %s, expected %s", i, list[i].Key, key)
		}
	}
}

func TestRegisterRejects(t *testing.T) {
	r := New()
	p := config.DefaultConfig().Difficulties["normal"]

	if err := r.Register("normal", p); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := r.Register("normal", p); err == nil {
		t.Error("Duplicate key should be rejected")
	}

	bad := p
	bad.TargetScore = 0
	if err := r.Register("broken", bad); err == nil {
		t.Error("Invalid profile should be rejected")
	}
	if r.Exists("broken") {
		t.Error("Rejected profile should not be registered")
	}
}

func TestRegisterDefaultsName(t *testing.T) {
	r := New()
	p := config.DefaultConfig().Difficulties["easy"]
	p.Name = ""

	if err := r.Register("chill", p); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	got, err := r.Lookup("chill")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if got.Name != "chill" {
		t.Errorf("Name = %q, expected key as fallback", got.Name)
	}
}

func TestLookupUnknown(t *testing.T) {
	r := New()
	if _, err := r.Lookup("nope"); err == nil {
		t.Error("Lookup of unknown key should fail")
	}
}

func TestNextWraps(t *testing.T) {
	r, err := FromConfig(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if got := r.Next("easy"); got != "normal" {
		t.Errorf("Next(easy) = %s, expected normal", got)
	}
	if got := r.Next("hard"); got != "easy" {
		t.Errorf("Next(hard) = %s, expected easy", got)
	}
	if got := r.Next("missing"); got != "easy" {
		t.Errorf("Next(missing) = %s, expected easy", got)
	}
}
