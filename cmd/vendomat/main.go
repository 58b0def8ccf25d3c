package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/vendomat/internal/cli"
	"github.com/MarkoPoloResearchLab/vendomat/internal/oplog"
	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

const (
	flagConfigFile   = "config"
	flagLogLevel     = "log-level"
	configKeyConfig  = "config"
	configKeyLogging = "log_level"
	defaultLogLevel  = "warn"
)

type runtimeConfig struct {
	ConfigFile string
	LogLevel   string
	Machine    cli.Config
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vendomat: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "vendomat",
		Short:         "Interactive coin-operated vending machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMachine(cfg)
		},
	}

	cmd.Flags().String(flagConfigFile, "", "Path to a YAML file with initial stock and coin float")
	cmd.Flags().String(flagLogLevel, defaultLogLevel, "Operation log level (debug, info, warn, error)")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *runtimeConfig) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix("VENDOMAT")
	viper.AutomaticEnv()

	if err := viper.BindEnv(configKeyConfig, "VENDOMAT_CONFIG"); err != nil {
		return err
	}
	if err := viper.BindEnv(configKeyLogging, "VENDOMAT_LOG_LEVEL"); err != nil {
		return err
	}
	if err := viper.BindPFlag(configKeyConfig, cmd.Flags().Lookup(flagConfigFile)); err != nil {
		return err
	}
	if err := viper.BindPFlag(configKeyLogging, cmd.Flags().Lookup(flagLogLevel)); err != nil {
		return err
	}

	cfg.ConfigFile = viper.GetString(configKeyConfig)
	cfg.LogLevel = viper.GetString(configKeyLogging)
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if cfg.ConfigFile != "" {
		viper.SetConfigFile(cfg.ConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := viper.Unmarshal(&cfg.Machine); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	return cfg.Machine.Validate()
}

func runMachine(cfg *runtimeConfig) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	machine, err := cli.BuildMachine(cfg.Machine, vending.WithOperationLogger(oplog.New(logger)))
	if err != nil {
		return fmt.Errorf("machine init: %w", err)
	}

	cli.NewRunner(os.Stdin, os.Stdout, machine).Run()
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	// Menus own stdout; structured operation logs go to stderr.
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = parsed
	loggerConfig.OutputPaths = []string{"stderr"}
	return loggerConfig.Build()
}
