package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/phaseshift/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show recorded run statistics",
	Long: `Display falls, deaths, restarts and clears per level, with the fastest
clear time.

Examples:
  phaseshift stats
  phaseshift stats level3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadConfig(logger)

	store := openStore(cfg, logger)
	if store == nil {
		return errors.New("statistics are disabled: no database path")
	}
	defer store.Close()

	var rows []storage.LevelStats
	if len(args) == 1 {
		st, err := store.Stats(args[0])
		if err != nil {
			return err
		}
		rows = append(rows, st)
	} else {
		all, err := store.AllStats()
		if err != nil {
			return err
		}
		rows = all
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %-5s  %-6s  %-8s  %-6s  %s\n", "Level", "Falls", "Deaths", "Restarts", "Clears", "Best")
	fmt.Fprintf(out, "  %-10s  %-5s  %-6s  %-8s  %-6s  %s\n", "-----", "-----", "------", "--------", "------", "----")
	for _, st := range rows {
		best := "-"
		if st.BestClearMs > 0 {
			best = (time.Duration(st.BestClearMs) * time.Millisecond).String()
		}
		fmt.Fprintf(out, "  %-10s  %-5d  %-6d  %-8d  %-6d  %s\n", st.Level, st.Falls, st.Deaths, st.Restarts, st.Clears, best)
	}
	return nil
}
