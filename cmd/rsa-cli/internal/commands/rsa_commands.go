package commands

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
	"github.com/jakenef/project-rsa/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Key file suffixes appended to the file stem
const (
	PublicKeySuffix  = ".public.txt"
	PrivateKeySuffix = ".private.txt"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	logger logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging.
// The RSA processor is built per command so that persistent flags apply.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{
		logger: loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists both halves in a selected directory
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	primeBits, err := cmd.Flags().GetInt("prime-bits")
	if err != nil {
		return fmt.Errorf("invalid prime-bits flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	stem, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	if stem == "" {
		stem = uuid.New().String()
	}

	validate, err := validators.New()
	if err != nil {
		return err
	}
	if err := validate.Var(primeBits, validators.PrimeBitsTag); err != nil {
		return fmt.Errorf("prime-bits must be between %d and %d: %w",
			validators.MinPrimeBits, validators.MaxPrimeBits, cryptoalg.ErrInvalidBitLength)
	}

	rsaProcessor, err := newRSAProcessor(cmd, commandHandler.logger)
	if err != nil {
		return err
	}

	start := time.Now()
	keyPair, err := rsaProcessor.GenerateKeys(cmd.Context(), primeBits)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%f seconds elapsed\n", time.Since(start).Seconds())

	publicKeyFilePath := filepath.Join(keyDir, stem+PublicKeySuffix)
	if err := rsaProcessor.SavePublicKeyToFile(&keyPair.Public, publicKeyFilePath); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), publicKeyFilePath, "written")

	privateKeyFilePath := filepath.Join(keyDir, stem+PrivateKeySuffix)
	if err := rsaProcessor.SavePrivateKeyToFile(&keyPair.Private, privateKeyFilePath); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), privateKeyFilePath, "written")

	return nil
}

// EncryptCmd encrypts a file with a public key file
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, outputFile, publicKeyPath, err := fileFlags(cmd, "public-key")
	if err != nil {
		return err
	}

	rsaProcessor, err := newRSAProcessor(cmd, commandHandler.logger)
	if err != nil {
		return err
	}

	publicKey, err := rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return err
	}

	start := time.Now()
	encryptedData, err := rsaProcessor.Encrypt(cmd.Context(), plainText, publicKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%f seconds elapsed\n", time.Since(start).Seconds())

	if err := os.WriteFile(outputFile, encryptedData, 0600); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptCmd decrypts a file with a private key file
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, outputFile, privateKeyPath, err := fileFlags(cmd, "private-key")
	if err != nil {
		return err
	}

	rsaProcessor, err := newRSAProcessor(cmd, commandHandler.logger)
	if err != nil {
		return err
	}

	privateKey, err := rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return err
	}

	start := time.Now()
	decryptedData, err := rsaProcessor.Decrypt(cmd.Context(), encryptedData, privateKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%f seconds elapsed\n", time.Since(start).Seconds())

	if err := os.WriteFile(outputFile, decryptedData, 0600); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
	return nil
}

// GeneratePrimeCmd prints a random prime of the requested size
func (commandHandler *RSACommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) error {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return fmt.Errorf("invalid bits flag: %w", err)
	}

	rsaProcessor, err := newRSAProcessor(cmd, commandHandler.logger)
	if err != nil {
		return err
	}

	prime, err := rsaProcessor.GeneratePrime(cmd.Context(), bits)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime.String())
	return nil
}

// IsPrimeCmd tests the given decimal number for primality
func (commandHandler *RSACommandHandler) IsPrimeCmd(cmd *cobra.Command, args []string) error {
	n, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return fmt.Errorf("%q is not a decimal integer", args[0])
	}

	test, err := cmd.Flags().GetString("test")
	if err != nil {
		return fmt.Errorf("invalid test flag: %w", err)
	}
	rounds, err := cmd.Flags().GetInt(flagRounds)
	if err != nil {
		return fmt.Errorf("invalid rounds flag: %w", err)
	}

	rsaProcessor, err := newRSAProcessor(cmd, commandHandler.logger)
	if err != nil {
		return err
	}

	probablyPrime, err := rsaProcessor.IsProbablyPrime(n, cryptoalg.PrimalityTest(test), rounds)
	if err != nil {
		return err
	}

	verdict := "composite"
	if probablyPrime {
		verdict = "probably prime"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (%s, %d rounds)\n", n, verdict, test, rounds)
	return nil
}

func fileFlags(cmd *cobra.Command, keyFlag string) (inputFile, outputFile, keyPath string, err error) {
	if inputFile, err = cmd.Flags().GetString("input-file"); err != nil {
		return "", "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if outputFile, err = cmd.Flags().GetString("output-file"); err != nil {
		return "", "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	if keyPath, err = cmd.Flags().GetString(keyFlag); err != nil {
		return "", "", "", fmt.Errorf("invalid %s flag: %w", keyFlag, err)
	}
	if inputFile == "" || outputFile == "" || keyPath == "" {
		return "", "", "", errors.New("input-file, output-file and " + keyFlag + " are required")
	}
	return inputFile, outputFile, keyPath, nil
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Long:  "Generate two primes of prime-bits bits each and write <name>.public.txt and <name>.private.txt.",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().Int("prime-bits", 512, "Size of each prime in bits")
	generateKeysCmd.Flags().String("key-dir", ".", "Directory to store the key files")
	generateKeysCmd.Flags().String("name", "", "File stem of the key files (default a random UUID)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("input-file", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().String("output-file", "", "Path to encrypted output file")
	encryptCmd.Flags().String("public-key", "", "Path to public key file")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with a private key",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("input-file", "", "Path to encrypted file")
	decryptCmd.Flags().String("output-file", "", "Path to decrypted output file")
	decryptCmd.Flags().String("private-key", "", "Path to private key file")
	rootCmd.AddCommand(decryptCmd)

	var generatePrimeCmd = &cobra.Command{
		Use:   "generate-prime",
		Short: "Print a random prime with exactly the given number of bits",
		RunE:  handler.GeneratePrimeCmd,
	}
	generatePrimeCmd.Flags().Int("bits", 512, "Size of the prime in bits")
	rootCmd.AddCommand(generatePrimeCmd)

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime <number>",
		Short: "Test a decimal number for primality",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.IsPrimeCmd,
	}
	isPrimeCmd.Flags().String("test", string(cryptoalg.PrimalityTestMillerRabin), "Primality test (miller-rabin or fermat)")
	rootCmd.AddCommand(isPrimeCmd)

	return nil
}
