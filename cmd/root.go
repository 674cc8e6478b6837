package cmd

import (
	"context"
	"fmt"
	"time"

	"aavevar/internal"
	"aavevar/internal/logger"
	"aavevar/internal/service"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "aavevar",
	Short:        "Monte Carlo bad debt risk engine for Aave v3 positions",
	SilenceUsage: true,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a Monte Carlo simulation and persist the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(deps)

		scenarios, _ := cmd.Flags().GetInt("scenarios")
		seed, _ := cmd.Flags().GetInt64("seed")
		topBorrowers, _ := cmd.Flags().GetInt64("top-borrowers")
		savePrices, _ := cmd.Flags().GetBool("save-prices")
		csvPath, _ := cmd.Flags().GetString("csv")
		abortOnNonFinite, _ := cmd.Flags().GetBool("abort-on-non-finite")

		log := logger.New()
		ctx := logger.AddToContext(context.Background(), log)

		run, err := deps.VaRSimulationService.RunSimulation(ctx, service.RunSimulationInput{
			Scenarios:            scenarios,
			Seed:                 seed,
			TopBorrowers:         topBorrowers,
			SavePrices:           savePrices,
			CsvExportPath:        csvPath,
			AbortOnNonFiniteLoss: abortOnNonFinite,
		})
		if err != nil {
			return err
		}

		internal.Pprint(run.Metrics)
		fmt.Printf("run %s: %d scenarios, %d excluded\n", run.RunID, run.ScenarioCount, run.ExcludedScenarios)
		return nil
	},
}

var covarianceCmd = &cobra.Command{
	Use:   "covariance",
	Short: "Rebuild the asset covariance matrix from stored historical closes",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(deps)

		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")

		end := time.Now().UTC()
		if endStr != "" {
			end, err = time.Parse(time.DateOnly, endStr)
			if err != nil {
				return fmt.Errorf("failed to parse end date: %w", err)
			}
		}
		start := end.AddDate(-1, 0, 0)
		if startStr != "" {
			start, err = time.Parse(time.DateOnly, startStr)
			if err != nil {
				return fmt.Errorf("failed to parse start date: %w", err)
			}
		}

		snapshot, err := deps.CovarianceService.RecalculateMatrix(start, end)
		if err != nil {
			return err
		}

		fmt.Printf("rebuilt covariance matrix for %d assets\n", snapshot.NumAssets())
		return nil
	},
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the simulation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer CloseDependencies(deps)

		port, _ := cmd.Flags().GetInt("port")
		return deps.NewApiHandler().StartApi(port)
	},
}

func init() {
	simulateCmd.Flags().Int("scenarios", 10000, "number of Monte Carlo scenarios")
	simulateCmd.Flags().Int64("seed", 0, "RNG seed, same seed reproduces the run bit for bit")
	simulateCmd.Flags().Int64("top-borrowers", 0, "cap on accounts loaded, largest debt first")
	simulateCmd.Flags().Bool("save-prices", false, "persist per-scenario simulated prices")
	simulateCmd.Flags().String("csv", "", "also write the loss distribution to this csv file")
	simulateCmd.Flags().Bool("abort-on-non-finite", false, "fail the whole run on a non-finite loss instead of excluding the scenario")

	covarianceCmd.Flags().String("start", "", "window start date (YYYY-MM-DD), default one year before end")
	covarianceCmd.Flags().String("end", "", "window end date (YYYY-MM-DD), default today")

	apiCmd.Flags().Int("port", 3009, "port to listen on")

	rootCmd.AddCommand(simulateCmd, covarianceCmd, apiCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
