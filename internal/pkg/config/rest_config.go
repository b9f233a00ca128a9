package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig is the configuration of the REST API binary.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	RSA      RSASettings      `mapstructure:"rsa"`
}

// Validate checks the top level fields and every nested settings block.
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig.Port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.RSA.Validate()
}

// InitializeRestConfig reads the YAML file at path and applies environment overrides.
// Keys map to env vars with a RSA_ prefix, e.g. RSA_DATABASE_DSN or RSA_RSA_PRIME_BITS.
// A missing file is tolerated so the binary can run from defaults and env alone.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("RSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	logger := DefaultLoggerSettings()
	db := DefaultDatabaseSettings()
	rsa := DefaultRSASettings()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("database.type", db.Type)
	v.SetDefault("database.dsn", db.DSN)
	v.SetDefault("rsa.prime_bits", rsa.PrimeBits)
	v.SetDefault("rsa.rounds", rsa.Rounds)
	v.SetDefault("rsa.primality_test", rsa.PrimalityTest)
	v.SetDefault("rsa.search_workers", rsa.SearchWorkers)
	v.SetDefault("rsa.cipher_workers", rsa.CipherWorkers)
	v.SetDefault("rsa.max_attempts", rsa.MaxAttempts)
}
