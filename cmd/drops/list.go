package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty profiles",
	Long:  `Shows every difficulty profile from the active configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	_, profiles, err := loadProfiles()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	infos := profiles.List()
	if len(infos) == 0 {
		fmt.Fprintln(out, "No difficulties configured.")
		return nil
	}

	fmt.Fprintln(out, "Difficulties:")
	fmt.Fprintln(out)

	maxKeyLen := 3 // "Key" header
	for _, info := range infos {
		maxKeyLen = max(maxKeyLen, len(info.Key))
	}

	fmt.Fprintf(out, "  %-*s  %-8s  %6s  %9s  %5s  %6s  %s\n", maxKeyLen, "Key", "Name", "Spawn", "Fall", "Bad", "Target", "Points")
	fmt.Fprintf(out, "  %-*s  %-8s  %6s  %9s  %5s  %6s  %s\n", maxKeyLen, "---", "----", "-----", "----", "---", "------", "------")

	for _, info := range infos {
		p := info.Profile
		fmt.Fprintf(out, "  %-*s  %-8s  %5dms  %4.1f-%3.1fs  %4.0f%%  %6d  %+d/%+d\n",
			maxKeyLen, info.Key, p.Name,
			p.SpawnIntervalMs,
			p.FallMinSecs, p.FallMaxSecs,
			p.BadProbability*100,
			p.TargetScore,
			p.GoodDelta, p.BadDelta,
		)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'drops play --difficulty <key>' to play.")
	return nil
}
