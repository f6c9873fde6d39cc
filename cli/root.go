// Package cli implements the pursuit command line interface
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/samuelfneumann/gopursuit/environment/envconfig"
	"github.com/spf13/cobra"
)

// Environment variables read when the corresponding flag is not given.
// Variables may also be set in a .env file in the working directory.
const (
	EnvConfig   = "PURSUIT_CONFIG"
	EnvSeed     = "PURSUIT_SEED"
	EnvLogLevel = "PURSUIT_LOG_LEVEL"
)

// options holds the persistent flags shared by all commands and the
// state derived from them before a command runs
type options struct {
	configFile string
	seed       uint64
	logLevel   string
	logFormat  string

	config envconfig.Config
	logger *slog.Logger
}

// NewRootCommand returns the pursuit root command with all of its
// subcommands
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "pursuit",
		Short:        "Pursuit is a multi-agent grid-world in which hunters chase a prey",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "",
		"HCL or JSON environment configuration file (env "+EnvConfig+")")
	flags.Uint64Var(&opts.seed, "seed", 0,
		"seed overriding the configured seed (env "+EnvSeed+")")
	flags.StringVar(&opts.logLevel, "log-level", "info",
		"log level: debug, info, warn or error (env "+EnvLogLevel+")")
	flags.StringVar(&opts.logFormat, "log-format", "text",
		"log format: text or json")

	cmd.AddCommand(newRunCommand(opts), newBenchCommand(opts))
	return cmd
}

// setup resolves flags against the environment, then creates the
// logger and loads the configuration
func (o *options) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if v, ok := os.LookupEnv(EnvLogLevel); ok && !flags.Changed("log-level") {
		o.logLevel = v
	}
	logger, err := newLogger(o.logLevel, o.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.logger = logger

	if v, ok := os.LookupEnv(EnvConfig); ok && !flags.Changed("config") {
		o.configFile = v
	}

	o.config = envconfig.Default()
	if o.configFile != "" {
		c, err := envconfig.Load(o.configFile)
		if err != nil {
			return err
		}
		o.config = c
	}

	if flags.Changed("seed") {
		o.config.Seed = o.seed
	} else if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%v: %w", EnvSeed, err)
		}
		o.config.Seed = seed
	}

	o.logger.Debug("configuration loaded",
		"file", o.configFile,
		"config", fmt.Sprintf("%+v", o.config),
	)
	return nil
}

// Execute loads a .env file if there is one and runs the root command
// until it finishes or the process is interrupted
func Execute() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("execute: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}
