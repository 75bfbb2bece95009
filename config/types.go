package config

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Output  OutputConfig  `mapstructure:"output"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Update  UpdateConfig  `mapstructure:"update"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds FotMob API connection details
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	Timeout   int    `mapstructure:"timeout" validate:"gt=0"` // seconds
	UserAgent string `mapstructure:"user_agent"`
}

// OutputConfig controls how documents are printed
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// BatchConfig controls the batch command
type BatchConfig struct {
	Concurrency int     `mapstructure:"concurrency" validate:"min=1,max=20"`
	Rate        float64 `mapstructure:"rate" validate:"gte=0"` // requests per second, 0 = unpaced
}

// UpdateConfig points the update command at a release repository
type UpdateConfig struct {
	Repository string `mapstructure:"repository" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}
