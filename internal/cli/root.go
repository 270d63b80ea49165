// Package cli implements the econmap and mapgen command lines.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"econmap/internal/app"
	"econmap/internal/config"
	"econmap/internal/logging"
	"econmap/internal/secret"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format (text, json)")
}

// load reads the config and applies the logging flags. apply overrides
// settings from command flags; the result is validated again afterwards.
func (g *globalFlags) load(cmd *cobra.Command, apply func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = g.logFormat
	}
	if apply != nil {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// Execute runs the econmap CLI.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:           "econmap",
		Short:         "GDP and inflation record-linkage pipeline",
		Long:          "Joins GDP and inflation datasets, resolves ISO country codes and derives real growth and economic condition labels.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	g.register(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(&g),
		newRunsCmd(&g),
		newSecretCmd(&g),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "econmap %s (%s)\n", version, commit)
		},
	}
}

func newRunCmd(g *globalFlags) *cobra.Command {
	var (
		gdp, inflation, output string
		schedule               string
		watch                  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline",
		Long: "Run the pipeline once and write the output CSV (and the mirror table when configured).\n" +
			"With --watch or --schedule it keeps running and re-runs on input changes or on the cron schedule.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("gdp") {
					cfg.Input.GDP = gdp
				}
				if flags.Changed("inflation") {
					cfg.Input.Inflation = inflation
				}
				if flags.Changed("output") {
					cfg.Output.Path = output
				}
				if flags.Changed("watch") {
					cfg.Trigger.Watch = watch
				}
				if flags.Changed("schedule") {
					cfg.Trigger.Schedule = schedule
				}
			})
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			a := app.New(cfg)
			if err := a.Startup(ctx); err != nil {
				return err
			}
			defer a.Shutdown()

			svc := a.PipelineService()
			if cfg.Trigger.Watch || cfg.Trigger.Schedule != "" {
				return a.Serve(ctx, svc)
			}

			res, err := svc.RunOnce(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows for %d countries to %s\n", res.Rows, res.Countries, cfg.Output.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&gdp, "gdp", "", "GDP CSV path")
	cmd.Flags().StringVar(&inflation, "inflation", "", "Inflation CSV path")
	cmd.Flags().StringVar(&output, "output", "", "Output CSV path")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run when an input file changes")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Re-run on a cron schedule (e.g. \"0 6 * * *\" or @daily)")
	return cmd
}

// newSecretCmd manages the mirror password. Writes go to the macOS Keychain,
// so mirror.keychain must be enabled; the environment store is read-only.
func newSecretCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the mirror password in the macOS Keychain",
	}

	store := func(cmd *cobra.Command) (secret.SecretStore, error) {
		cfg, err := g.load(cmd, nil)
		if err != nil {
			return nil, err
		}
		return app.New(cfg).Secrets(), nil
	}

	setCmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Store a secret read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store(cmd)
			if err != nil {
				return err
			}
			value, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := s.Set(args[0], []byte(value)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", args[0])
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store(cmd)
			if err != nil {
				return err
			}
			return s.Delete(args[0])
		},
	}

	cmd.AddCommand(setCmd, deleteCmd)
	return cmd
}

// readSecret reads one line from r with the line ending removed. Inner
// whitespace is part of the value.
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read secret: %w", err)
	}
	value := strings.TrimRight(line, "\r\n")
	if value == "" {
		return "", errors.New("read secret: empty value")
	}
	return value, nil
}
