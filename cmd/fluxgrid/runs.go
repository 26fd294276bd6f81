package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxfield/fluxgrid/internal/runstore"
)

var (
	flagRunsStore string
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded match runs",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsStore, "store", "", "SQLite file the runs were recorded in")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "maximum number of runs to list")
	_ = runsCmd.MarkFlagRequired("store")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := runstore.Open(flagRunsStore)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}
	for _, run := range runs {
		status := successColor.Sprint("ok")
		if !run.Result.Success {
			status = failColor.Sprint("failed")
		}
		fmt.Printf("%s  %s  %-6s  %s  target=%g final=%g\n",
			run.ID,
			run.CreatedAt.Format(time.RFC3339),
			status,
			run.Scenario,
			run.Result.TargetFlux,
			run.Result.FinalFlux,
		)
	}
	return nil
}
