package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/jakenef/project-rsa/internal/app"
	"github.com/jakenef/project-rsa/internal/domain/analysis"
	"github.com/jakenef/project-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Benchmark targets accepted by the benchmark command
const (
	BenchmarkPrime   = "prime"
	BenchmarkKeyPair = "keypair"
)

// AnalysisCommandHandler runs the primality experiments and timing benchmarks.
type AnalysisCommandHandler struct {
	logger logger.Logger
}

// NewAnalysisCommandHandler initializes a new AnalysisCommandHandler with logging.
func NewAnalysisCommandHandler() (*AnalysisCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AnalysisCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *AnalysisCommandHandler) newService(cmd *cobra.Command) (analysis.Service, error) {
	rsaProcessor, err := newRSAProcessor(cmd, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	return app.NewAnalysisService(rsaProcessor, commandHandler.logger)
}

// CarmichaelCmd prints the false positive rates of both tests on a Carmichael number
func (commandHandler *AnalysisCommandHandler) CarmichaelCmd(cmd *cobra.Command, _ []string) error {
	number, err := cmd.Flags().GetInt64("number")
	if err != nil {
		return fmt.Errorf("invalid number flag: %w", err)
	}
	maxRounds, err := cmd.Flags().GetInt("max-rounds")
	if err != nil {
		return fmt.Errorf("invalid max-rounds flag: %w", err)
	}
	trials, err := cmd.Flags().GetInt("trials")
	if err != nil {
		return fmt.Errorf("invalid trials flag: %w", err)
	}

	service, err := commandHandler.newService(cmd)
	if err != nil {
		return err
	}

	report, err := service.CarmichaelExperiment(cmd.Context(), number, maxRounds, trials)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "# %d, %d trials per round count\n", report.Number, report.Trials)
	fmt.Fprintln(w, "rounds\tfermat\tmiller-rabin\t(1/2)^k\t(1/4)^k")
	half, quarter := 1.0, 1.0
	for _, rate := range report.Rates {
		half /= 2
		quarter /= 4
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\n", rate.Rounds, rate.Fermat, rate.MillerRabin, half, quarter)
	}
	return w.Flush()
}

// BenchmarkCmd prints average, minimum and maximum run times per bit size
func (commandHandler *AnalysisCommandHandler) BenchmarkCmd(cmd *cobra.Command, _ []string) error {
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return fmt.Errorf("invalid target flag: %w", err)
	}
	bits, err := cmd.Flags().GetIntSlice("bits")
	if err != nil {
		return fmt.Errorf("invalid bits flag: %w", err)
	}
	runs, err := cmd.Flags().GetInt("runs")
	if err != nil {
		return fmt.Errorf("invalid runs flag: %w", err)
	}

	service, err := commandHandler.newService(cmd)
	if err != nil {
		return err
	}

	var results []*analysis.BenchmarkResult
	switch target {
	case BenchmarkPrime:
		results, err = service.BenchmarkPrimeGeneration(cmd.Context(), bits, runs)
	case BenchmarkKeyPair:
		results, err = service.BenchmarkKeyPairGeneration(cmd.Context(), bits, runs)
	default:
		return fmt.Errorf("unknown benchmark target %q, expected %s or %s", target, BenchmarkPrime, BenchmarkKeyPair)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "operation\tbits\truns\tavg ms\tmin ms\tmax ms")
	for _, result := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%.3f\t%.3f\n",
			result.Operation, result.Bits, result.Runs, result.AverageMs, result.MinMs, result.MaxMs)
	}
	return w.Flush()
}

// InitAnalysisCommands registers the experiment and benchmark commands
func InitAnalysisCommands(rootCmd *cobra.Command) error {
	handler, err := NewAnalysisCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create analysis command handler %w", err)
	}

	var carmichaelCmd = &cobra.Command{
		Use:   "carmichael",
		Short: "Measure Fermat and Miller-Rabin false positive rates on a Carmichael number",
		RunE:  handler.CarmichaelCmd,
	}
	carmichaelCmd.Flags().Int64("number", 561, "Carmichael number to test (561, 1105, 1729, 2465, 2821, 6601 or 8911)")
	carmichaelCmd.Flags().Int("max-rounds", 10, "Largest round count to measure")
	carmichaelCmd.Flags().Int("trials", 1000, "Test runs per round count")
	rootCmd.AddCommand(carmichaelCmd)

	var benchmarkCmd = &cobra.Command{
		Use:   "benchmark",
		Short: "Time prime or key pair generation over several sizes",
		RunE:  handler.BenchmarkCmd,
	}
	benchmarkCmd.Flags().String("target", BenchmarkPrime, "What to time (prime or keypair)")
	benchmarkCmd.Flags().IntSlice("bits", []int{64, 128, 256, 512}, "Bit sizes to time")
	benchmarkCmd.Flags().Int("runs", 5, "Runs per bit size")
	rootCmd.AddCommand(benchmarkCmd)

	return nil
}
