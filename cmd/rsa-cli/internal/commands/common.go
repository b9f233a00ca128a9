package commands

import (
	"fmt"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/infrastructure/cryptography"
	"github.com/jakenef/project-rsa/internal/pkg/config"
	"github.com/jakenef/project-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command that needs an RSA processor
const (
	flagPrimalityTest = "primality-test"
	flagRounds        = "rounds"
	flagSearchWorkers = "search-workers"
	flagCipherWorkers = "cipher-workers"
	flagMaxAttempts   = "max-attempts"
	flagSeed          = "seed"
)

// RegisterProcessorFlags adds the processor tuning flags to the root command.
func RegisterProcessorFlags(rootCmd *cobra.Command) {
	defaults := config.DefaultRSASettings()

	flags := rootCmd.PersistentFlags()
	flags.String(flagPrimalityTest, defaults.PrimalityTest, "Primality test used for prime search (miller-rabin or fermat)")
	flags.Int(flagRounds, defaults.Rounds, "Witness rounds per primality test")
	flags.Int(flagSearchWorkers, defaults.SearchWorkers, "Concurrent prime search workers")
	flags.Int(flagCipherWorkers, defaults.CipherWorkers, "Concurrent chunk workers for encrypt and decrypt")
	flags.Int(flagMaxAttempts, defaults.MaxAttempts, "Maximum prime candidates per search, 0 for unbounded")
	flags.Int64(flagSeed, 0, "Seed for a reproducible random source, 0 uses crypto/rand")
}

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// rsaSettingsFromFlags reads the persistent processor flags of cmd.
func rsaSettingsFromFlags(cmd *cobra.Command) (*config.RSASettings, int64, error) {
	settings := config.DefaultRSASettings()
	flags := cmd.Flags()

	var err error
	if settings.PrimalityTest, err = flags.GetString(flagPrimalityTest); err != nil {
		return nil, 0, fmt.Errorf("invalid %s flag: %w", flagPrimalityTest, err)
	}
	if settings.Rounds, err = flags.GetInt(flagRounds); err != nil {
		return nil, 0, fmt.Errorf("invalid %s flag: %w", flagRounds, err)
	}
	if settings.SearchWorkers, err = flags.GetInt(flagSearchWorkers); err != nil {
		return nil, 0, fmt.Errorf("invalid %s flag: %w", flagSearchWorkers, err)
	}
	if settings.CipherWorkers, err = flags.GetInt(flagCipherWorkers); err != nil {
		return nil, 0, fmt.Errorf("invalid %s flag: %w", flagCipherWorkers, err)
	}
	if settings.MaxAttempts, err = flags.GetInt(flagMaxAttempts); err != nil {
		return nil, 0, fmt.Errorf("invalid %s flag: %w", flagMaxAttempts, err)
	}

	seed, err := flags.GetInt64(flagSeed)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid %s flag: %w", flagSeed, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, 0, err
	}
	return &settings, seed, nil
}

// newRSAProcessor builds a processor configured by the persistent flags of cmd.
func newRSAProcessor(cmd *cobra.Command, log logger.Logger) (cryptoalg.RSAProcessor, error) {
	settings, seed, err := rsaSettingsFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	var random cryptoalg.RandomSource
	if seed != 0 {
		random = cryptography.NewSeededSource(seed)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(settings, random, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return rsaProcessor, nil
}
