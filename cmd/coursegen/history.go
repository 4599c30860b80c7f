package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"coursegen/pkg/config"
	"coursegen/pkg/history"
)

var errHistoryDisabled = errors.New("run history is disabled (set history.enabled: true in the config file)")

var (
	historyLimit     int
	historyPruneDays int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded setup runs",
	Example: `  coursegen history             # last 10 runs
  coursegen history --limit 0   # every run
  coursegen history --prune 30  # drop runs older than 30 days`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			return errHistoryDisabled
		}

		db, err := history.Open(cfg.HistoryPath())
		if err != nil {
			return err
		}
		defer db.Close()

		out := cmd.OutOrStdout()

		if historyPruneDays > 0 {
			deleted, err := db.DeleteOlderThan(time.Now().AddDate(0, 0, -historyPruneDays))
			if err != nil {
				return fmt.Errorf("failed to prune history: %w", err)
			}
			fmt.Fprintf(out, "Pruned %d run(s) older than %d days\n", deleted, historyPruneDays)
		}

		runs, err := db.List(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tTEMPLATE\tROOT\tDIRS\tFILES\tSTATUS")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Template, r.Root,
				r.Directories, r.Files, runStatus(r))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		summary, err := db.Summary()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d run(s) recorded, %d failed\n", summary.TotalRuns, summary.FailedRuns)
		return nil
	},
}

func runStatus(r history.Run) string {
	switch {
	case !r.Success:
		return "failed: " + truncate(r.Error, 48)
	case r.DryRun:
		return "dry-run"
	default:
		return "ok"
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of runs to show (0 for all)")
	historyCmd.Flags().IntVar(&historyPruneDays, "prune", 0, "Delete runs older than this many days first")
	rootCmd.AddCommand(historyCmd)
}
