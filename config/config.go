package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/s0up4200/fotmob/fotmob"
)

// EnvPrefix prefixes environment overrides, e.g. FOTMOB_API_TIMEOUT
const EnvPrefix = "FOTMOB"

var validate = newValidator()

// newValidator reports fields by their config key rather than the Go field name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load loads the configuration from file, environment and defaults.
// A missing config file is not an error when configPath is empty.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fotmob"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fotmob/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment is present
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: fotmob.DefaultBaseURL,
			Timeout: int(fotmob.DefaultTimeout.Seconds()),
		},
		Batch: BatchConfig{
			Concurrency: 4,
		},
		Update: UpdateConfig{
			Repository: defaultRepository,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Color:  true,
		},
	}
}

const defaultRepository = "s0up4200/fotmob"

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()

	// API defaults
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.user_agent", "")

	// Output defaults
	v.SetDefault("output.pretty", d.Output.Pretty)

	// Batch defaults
	v.SetDefault("batch.concurrency", d.Batch.Concurrency)
	v.SetDefault("batch.rate", d.Batch.Rate)

	// Update defaults
	v.SetDefault("update.repository", d.Update.Repository)

	// Logging defaults
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.color", d.Logging.Color)
}

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return fmt.Sprintf("%s must be a valid URL: %v", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("invalid %s: %v (must be one of [%s])", field, fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, fe.Tag())
	}
}
