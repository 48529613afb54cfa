package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/phaseshift/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range levels.Names() {
		lvl, err := levels.Load(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-10s  platforms: %-2d  teleporting: %-2d  enemies: %d\n",
			lvl.Name, len(lvl.StaticPlatforms), len(lvl.TeleportingPlatforms), len(lvl.Enemies))
	}
	return nil
}
