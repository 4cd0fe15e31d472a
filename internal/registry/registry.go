// Package registry maps selectable difficulty keys to profiles.
// The UI cycles through the registered keys in order; the game only ever sees
// the resolved config.Profile.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-drops/internal/config"
)

// ProfileInfo contains a registered key with its profile.
type ProfileInfo struct {
	Key     config.DifficultyPreset
	Profile config.Profile
}

// Registry holds the selectable difficulty profiles.
type Registry struct {
	mu       sync.RWMutex
	profiles map[config.DifficultyPreset]config.Profile
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		profiles: make(map[config.DifficultyPreset]config.Profile),
	}
}

// FromConfig creates a registry holding every difficulty in cfg.
func FromConfig(cfg config.GameConfig) (*Registry, error) {
	r := New()
	for key, p := range cfg.Difficulties {
		if err := r.Register(config.DifficultyPreset(key), p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a profile under key.
// Returns an error if the key is taken or the profile is invalid.
func (r *Registry) Register(key config.DifficultyPreset, p config.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("registry: difficulty %q: %w", key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[key]; exists {
		return fmt.Errorf("registry: difficulty %q already registered", key)
	}
	if p.Name == "" {
		p.Name = string(key)
	}
	r.profiles[key] = p
	return nil
}

// List returns all registered profiles: built-in presets first in their
// canonical order, then custom keys sorted alphabetically.
func (r *Registry) List() []ProfileInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ProfileInfo, 0, len(r.profiles))
	for key, p := range r.profiles {
		result = append(result, ProfileInfo{Key: key, Profile: p})
	}

	sort.Slice(result, func(i, j int) bool {
		ri, rj := presetRank(result[i].Key), presetRank(result[j].Key)
		if ri != rj {
			return ri < rj
		}
		return result[i].Key < result[j].Key
	})

	return result
}

// Lookup returns the profile registered under key.
// Returns an error if the key is not registered.
func (r *Registry) Lookup(key config.DifficultyPreset) (config.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[key]
	if !ok {
		return config.Profile{}, fmt.Errorf("registry: unknown difficulty %q", key)
	}
	return p, nil
}

// Exists checks if a difficulty with the given key is registered.
func (r *Registry) Exists(key config.DifficultyPreset) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.profiles[key]
	return ok
}

// Next returns the key following key in List order, wrapping around.
// An unknown key yields the first entry.
func (r *Registry) Next(key config.DifficultyPreset) config.DifficultyPreset {
	list := r.List()
	if len(list) == 0 {
		return key
	}
	for i, info := range list {
		if info.Key == key {
			return list[(i+1)%len(list)].Key
		}
	}
	return list[0].Key
}

// presetRank orders built-in presets before custom keys.
func presetRank(key config.DifficultyPreset) int {
	for i, p := range config.Presets {
		if p == key {
			return i
		}
	}
	return len(config.Presets)
}
