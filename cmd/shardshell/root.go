package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/samdwyer/shardshell/internal/game"
	"github.com/samdwyer/shardshell/internal/telemetry"
	"github.com/samdwyer/shardshell/internal/theme"
)

// newRootCmd builds the shardshell command. Flags override the environment,
// which overrides the config file, which overrides the defaults.
func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "shardshell [map]",
		Short: "Explore a tile map in the terminal",
		Long: `shardshell draws a map as stitched wall glyphs and lets you pan around it
with the arrow keys (Shift for whole cells). F1 opens the menu.

The map is an image where wall pixels are red (#FF0000 by default), a text
file where '#' marks walls, or, when no map is given, a generated dungeon.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(configPath, cmd.Flags(), args, nil)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	defaults := game.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringP("map", "m", "", "map image or .txt file (default: generate a dungeon)")
	flags.Int64("seed", 0, "seed for the generated dungeon (0 = random)")
	flags.Int("map-width", defaults.MapWidth, "generated dungeon width in cells")
	flags.Int("map-height", defaults.MapHeight, "generated dungeon height in cells")
	flags.IntP("width", "W", defaults.ViewWidth, "viewport width in cells")
	flags.IntP("height", "H", defaults.ViewHeight, "viewport height in cells")
	flags.StringP("theme", "t", defaults.Theme, "glyph theme")
	flags.StringSlice("wall-color", defaults.WallColors, "pixel colors that mark walls")
	flags.String("language", defaults.Language, "menu language")
	flags.String("log-file", defaults.LogFile, "log file path")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("no-telemetry", false, "disable OpenTelemetry tracing")

	cmd.AddCommand(newThemesCmd())
	return cmd
}

// buildConfig layers the config file, environment, positional map argument
// and explicitly set flags. A nil environ reads the process environment
// after .env has been loaded into it.
func buildConfig(path string, flags *pflag.FlagSet, args []string, environ map[string]string) (game.Config, error) {
	// Not fatal - env vars might be set directly
	_ = godotenv.Load()

	cfg, err := game.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(environ); err != nil {
		return cfg, err
	}

	if len(args) == 1 {
		cfg.MapPath = args[0]
	}

	var ferr error
	flags.Visit(func(f *pflag.Flag) {
		if ferr != nil {
			return
		}
		switch f.Name {
		case "map":
			cfg.MapPath, ferr = flags.GetString(f.Name)
		case "seed":
			cfg.Seed, ferr = flags.GetInt64(f.Name)
		case "map-width":
			cfg.MapWidth, ferr = flags.GetInt(f.Name)
		case "map-height":
			cfg.MapHeight, ferr = flags.GetInt(f.Name)
		case "width":
			cfg.ViewWidth, ferr = flags.GetInt(f.Name)
		case "height":
			cfg.ViewHeight, ferr = flags.GetInt(f.Name)
		case "theme":
			cfg.Theme, ferr = flags.GetString(f.Name)
		case "wall-color":
			cfg.WallColors, ferr = flags.GetStringSlice(f.Name)
		case "language":
			cfg.Language, ferr = flags.GetString(f.Name)
		case "log-file":
			cfg.LogFile, ferr = flags.GetString(f.Name)
		case "log-level":
			cfg.LogLevel, ferr = flags.GetString(f.Name)
		case "no-telemetry":
			var off bool
			off, ferr = flags.GetBool(f.Name)
			cfg.Telemetry = !off
		}
	})
	return cfg, ferr
}

// run owns the process-wide resources: log file, telemetry and terminal.
func run(ctx context.Context, cfg game.Config) error {
	closeLog, err := setupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx, cfg.TraceAttributes()...)
		if err != nil {
			// Continue without telemetry - the viewer still works
			log.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	log.Info().Str("map", cfg.MapPath).Str("theme", cfg.Theme).Msg("starting")
	if err := g.Run(ctx); err != nil {
		log.Error().Err(err).Msg("game error")
		return err
	}
	log.Info().Msg("exiting")
	return nil
}

// setupLogging points the global zerolog logger at a file; the terminal
// belongs to the screen while the game runs.
func setupLogging(path, level string) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Only applies when a Honeycomb key is present; standard OTEL_* variables
// are otherwise left alone.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_SHARDSHELL_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_SHARDSHELL_DATASET")
	if dataset == "" {
		dataset = "shardshell"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available glyph themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := theme.LoadRegistry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range registry.IDs() {
				def := registry.GetByID(id)
				g, err := def.Glyphs()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-8s %-8s %c%c%c %c %c\n", def.ID, def.Name,
					g.Corners[0][0], g.Horizontal, g.Corners[0][1], g.Vertical, g.Solid)
			}
			return nil
		},
	}
}
