package cli

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/gridgames/tictactoe-cli/internal"
	"github.com/gridgames/tictactoe-cli/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal against a perfect opponent",
		Long: `tictactoe runs a single interactive match on the terminal.

You play X and always move first; the computer plays O and never makes a
mistake, so the best you can hope for is a draw.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if noColor {
				conf.Display.Color = false
			}

			logger, closeLogger, err := initLogger(conf)
			if err != nil {
				return err
			}
			defer closeLogger()

			return app.RunApp(logger, conf)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "config.yml", "Path to the YAML config file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored board output")

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger builds the JSON logger. Logs go to stderr or the configured
// file so stdout stays free for the board.
func initLogger(conf *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	sink := os.Stderr
	closeSink := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		sink = file
		closeSink = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})), closeSink, nil
}
