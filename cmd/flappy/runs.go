package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsTop    bool
	flagRunsLimit  int
	flagRunsBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Show the most recent recorded runs, or the best ones with --top.
With --browse the runs open in an interactive table where they can be
verified and deleted.

Examples:
  flappy runs
  flappy runs --top --limit 5
  flappy runs --browse`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsTop, "top", false, "Order by score instead of date")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive runs browser")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRuns(store, width, height, flagRunsTop)
	}

	var runs []storage.RunSummary
	if flagRunsTop {
		runs, err = store.TopRuns(flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-36s  %-6s  %-7s  %-6s  %s\n", "ID", "Score", "Ticks", "Inputs", "Date")
	fmt.Printf("  %-36s  %-6s  %-7s  %-6s  %s\n", "--", "-----", "-----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-6d  %-7d  %-6d  %s\n",
			r.ID, r.Score, r.Ticks, r.Inputs, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
