package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/voxfield/fluxgrid/internal/runstore"
	"github.com/voxfield/fluxgrid/match"
)

var (
	flagMatchConfig string
	flagMatchStore  string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Tune distribution parameters until the target flux matches",
	Long: `Match runs the flux matcher on a scenario file: it measures the flux of
the source shape under its distribution, then tunes the named parameters
of the target's distribution family until the target shape reproduces
that flux.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&flagMatchConfig, "config", "c", "", "scenario file (YAML)")
	matchCmd.Flags().StringVar(&flagMatchStore, "store", "", "SQLite file to record the run in")
	_ = matchCmd.MarkFlagRequired("config")
}

func runMatch(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(flagMatchConfig)
	if err != nil {
		return err
	}
	problem, opts, err := sc.problem()
	if err != nil {
		return err
	}

	res, err := match.MatchFlux(problem, opts)
	if err != nil {
		return err
	}
	printReport(sc.Name, res)

	if flagMatchStore != "" {
		store, err := runstore.Open(flagMatchStore)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Save(sc.Name, res)
		if err != nil {
			return err
		}
		fmt.Printf("recorded run %s\n", id)
	}
	return nil
}

func printReport(name string, res match.Result) {
	if res.Success {
		successColor.Printf("MATCHED (%s)\n", res.Message)
	} else {
		failColor.Printf("NOT MATCHED (%s)\n", res.Message)
	}
	fmt.Printf("scenario:    %s\n", name)
	fmt.Printf("target flux: %g\n", res.TargetFlux)
	fmt.Printf("final flux:  %g (gap %g)\n", res.FinalFlux, math.Abs(res.FinalFlux-res.TargetFlux))

	names := make([]string, 0, len(res.Params))
	for name := range res.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s = %g\n", name, res.Params[name])
	}
	fmt.Printf("evaluations: %d, iterations: %d\n", res.Evaluations, res.Iterations)
}
