package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/config"
	"github.com/jobhunter/backend/logger"
)

const (
	app = "jobhunter"
)

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "jobhunter is an AI job hunting assistant: resume parsing, job search and career chat",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringP("port", "p", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output (overrides DEBUG)")
	rootCmd.PersistentFlags().BoolP("log-json", "j", false, "json format for logging (overrides LOG_JSON)")

	for _, name := range []string{"port", "debug", "log-json"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func loadDotEnv() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()
}

// loadConfig reads the environment, applies flag overrides and validates
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if viper.IsSet("port") && viper.GetString("port") != "" {
		cfg.Port = viper.GetString("port")
	}
	if viper.IsSet("debug") && viper.GetBool("debug") {
		cfg.Debug = true
	}
	if viper.IsSet("log-json") && viper.GetBool("log-json") {
		cfg.LogJSON = true
	}
}

// setup loads configuration and builds the logger shared by all commands
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	return cfg, log, nil
}
