// Package cli implements the jobdash command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"job-dash/internal/app"
	"job-dash/internal/config"
	"job-dash/internal/dataset"
)

var (
	version = "dev"
	commit  = "none"
)

// options holds the persistent flag values shared by every command.
type options struct {
	output        string
	profile       string
	envFile       string
	rawData       string
	processedData string
	datasetConfig string
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == outputJSON {
			_ = PrintJSON(os.Stdout, map[string]any{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "jobdash",
		Short:         "Job listings dashboard",
		Long:          "Serve the job listings dashboard, or print its overview, search results, and chart data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}

			uc, err := LoadUserConfig()
			if err != nil {
				return err
			}
			p := uc.ActiveProfile(opts.profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("output") {
				switch {
				case os.Getenv("JOBDASH_OUTPUT") != "":
					opts.output = os.Getenv("JOBDASH_OUTPUT")
				case p.Output != "":
					opts.output = p.Output
				default:
					opts.output = defaultOutputFormat()
				}
			}
			applyProfile(cmd, "raw-data", "RAW_DATA_PATH", p.RawData, &opts.rawData)
			applyProfile(cmd, "processed-data", "PROCESSED_DATA_PATH", p.ProcessedData, &opts.processedData)
			applyProfile(cmd, "dataset-config", "DATASET_CONFIG", p.DatasetConfig, &opts.datasetConfig)

			return validateOutputFormat(opts.output)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", outputTable, "Output format (table, json)")
	flags.StringVarP(&opts.profile, "profile", "p", "", "Config profile to use")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before reading configuration")
	flags.StringVar(&opts.rawData, "raw-data", "", "Raw listings location (overrides RAW_DATA_PATH)")
	flags.StringVar(&opts.processedData, "processed-data", "", "Processed listings location (overrides PROCESSED_DATA_PATH)")
	flags.StringVar(&opts.datasetConfig, "dataset-config", "", "Dataset column YAML (overrides DATASET_CONFIG)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newOverviewCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newVisualizeCmd(opts))
	rootCmd.AddCommand(newCommandsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// applyProfile fills target from the profile when neither the flag nor the
// environment variable supplied a value.
func applyProfile(cmd *cobra.Command, flag, env, profileValue string, target *string) {
	if cmd.Flags().Changed(flag) || os.Getenv(env) != "" || profileValue == "" {
		return
	}
	*target = profileValue
}

// loadConfig reads the environment and applies the dataset flags on top.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.rawData != "" {
		cfg.RawDataPath = opts.rawData
	}
	if opts.processedData != "" {
		cfg.ProcessedDataPath = opts.processedData
	}
	if opts.datasetConfig != "" {
		ds, err := config.LoadDataset(opts.datasetConfig)
		if err != nil {
			return nil, err
		}
		cfg.DatasetConfigPath = opts.datasetConfig
		cfg.Dataset = ds
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// withApp wires the application for one command and runs fn with it.
func withApp(cmd *cobra.Command, opts *options, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	for _, w := range cfg.Warnings {
		logger.Warn("config", "warning", w)
	}

	duckDB, err := dataset.OpenDuckDB()
	if err != nil {
		return err
	}
	defer duckDB.Close() //nolint:errcheck

	a := app.New(app.Deps{Cfg: cfg, DuckDB: duckDB, Logger: logger})
	return fn(cmd.Context(), a)
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
