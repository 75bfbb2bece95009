package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fotmob/config"
	"github.com/s0up4200/fotmob/fotmob"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fotmob.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	timeout   time.Duration
	baseURL   string
	legacy    bool
	pretty    bool
	queryExpr string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fotmob",
	Short: "Fetch football data from the FotMob API",
	Long: `fotmob is a CLI tool that fetches leagues, matches, match details,
players and teams from the FotMob JSON API and prints them as JSON.
Documents can be projected with an expression, e.g. --query 'details.name'.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information for the version and update commands
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	stop()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.DurationVar(&timeout, "timeout", 0, "request timeout, e.g. 30s (default from config)")
	flags.StringVar(&baseURL, "base-url", "", "API root to send requests to")
	flags.BoolVar(&legacy, "legacy", false, "use the legacy API root ("+fotmob.LegacyBaseURL+")")
	flags.BoolVar(&pretty, "pretty", false, "indent JSON output")
	flags.StringVarP(&queryExpr, "query", "q", "", "expression applied to each document before printing")
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger = setupLogger(cfg.Logging)

	requestTimeout := time.Duration(cfg.API.Timeout) * time.Second
	if cmd.Flags().Changed("timeout") {
		requestTimeout = timeout
	}

	client, err = fotmob.NewClient(
		fotmob.WithBaseURL(cfg.API.BaseURL),
		fotmob.WithTimeout(requestTimeout),
		fotmob.WithUserAgent(cfg.API.UserAgent),
		fotmob.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create FotMob client: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Dur("timeout", client.Timeout()).
		Msg("FotMob client ready")

	return nil
}

// applyFlags overrides configuration values with explicitly set flags
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("legacy") && flags.Changed("base-url") {
		return errors.New("--legacy and --base-url cannot be used together")
	}
	if flags.Changed("timeout") && timeout <= 0 {
		return fmt.Errorf("invalid --timeout %s: must be positive", timeout)
	}

	if legacy {
		cfg.API.BaseURL = fotmob.LegacyBaseURL
	}
	if flags.Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
