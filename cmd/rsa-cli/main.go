// Package main is the entry point for the rsa-cli application.
// It initializes the root command, registers the key, cipher, primality and
// analysis sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/jakenef/project-rsa/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `rsa-cli generates textbook RSA key pairs and encrypts or decrypts files chunk by chunk.
It also generates and tests primes with the Fermat and Miller-Rabin tests, measures
their false positive rates on Carmichael numbers and times prime and key generation.

Key files hold two decimal lines: the modulus followed by the exponent.`,
		SilenceUsage: true,
	}

	commands.RegisterProcessorFlags(rootCmd)

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register RSA commands
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	// Register analysis commands
	if err := commands.InitAnalysisCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize analysis commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
