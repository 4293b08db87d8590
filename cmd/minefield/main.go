package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minefield/internal/config"
	"github.com/mitchelldurbincs/minefield/internal/game"
	"github.com/mitchelldurbincs/minefield/internal/game/events"
	"github.com/mitchelldurbincs/minefield/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/minefield/internal/game/mapgen"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay to merge (loads config.<env>.yaml)")
	width := flag.Int("width", -1, "Board width, 1 to 26 (-1 to use config default)")
	mines := flag.Int("mines", -1, "Number of mines (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default, or the clock)")
	format := flag.String("format", "", "Output format: text, json or yaml (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	verify := flag.Bool("verify", false, "Check neighbor counts on the generated board")
	watch := flag.Bool("watch", false, "Regenerate the board whenever the config file changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	// Flags are applied as config overrides so they survive config reloads
	overrides := flagOverrides(*width, *mines, *seed, *format, *logLevel, *verify)
	if err := applyOverrides(overrides); err != nil {
		log.Fatal().Err(err).Msg("Invalid command line flags")
	}

	cfg := config.Get()
	seedValue := cfg.Board.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	log.Debug().
		Int("width", cfg.Board.Width).
		Int("mine_count", cfg.Board.MineCount).
		Int64("seed", seedValue).
		Str("format", cfg.Output.Format).
		Msg("Starting board generation")

	var opts []game.ServiceOption
	if cfg.Events.Enabled {
		bus := events.NewEventBus()
		eventLogger := subscribers.NewLoggerSubscriber("cli", log.Logger, zerolog.DebugLevel)
		eventLogger.SetDevMode(cfg.Events.DevMode)
		bus.Subscribe(eventLogger)
		opts = append(opts, game.WithEventPublisher(bus))
	}

	rng := rand.New(rand.NewSource(seedValue))
	service := game.NewBoardService(mapgen.NewRandSource(rng), opts...)

	if err := generate(service, cfg); err != nil {
		log.Error().Err(err).Msg("Board generation failed")
		os.Exit(1)
	}

	if !*watch {
		return
	}

	log.Info().Str("config_file", config.ConfigFilePath()).Msg("Watching config for changes")
	config.WatchConfig(func(c *config.Config, err error) {
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		if err := generate(service, c); err != nil {
			log.Error().Err(err).Msg("Board generation failed")
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("Shutting down")
}

// flagOverrides maps the flags that were actually given to config keys.
// Unset flags keep their sentinel values and leave the config alone.
func flagOverrides(width, mines int, seed int64, format, logLevel string, verify bool) map[string]interface{} {
	overrides := make(map[string]interface{})
	if width != -1 {
		overrides["board.width"] = width
	}
	if mines != -1 {
		overrides["board.mine_count"] = mines
	}
	if seed != 0 {
		overrides["board.seed"] = seed
	}
	if format != "" {
		overrides["output.format"] = format
	}
	if logLevel != "" {
		overrides["logging.level"] = logLevel
	}
	if verify {
		overrides["output.verify"] = true
	}
	return overrides
}

func applyOverrides(overrides map[string]interface{}) error {
	for key, value := range overrides {
		if err := config.Set(key, value); err != nil {
			return err
		}
	}
	return config.Validate(config.Get())
}

func generate(service *game.BoardService, c *config.Config) error {
	if err := service.CreateBoard(c.Board.Width, c.Board.MineCount); err != nil {
		return err
	}

	board := service.Board()
	if c.Output.Verify {
		if err := board.Verify(); err != nil {
			return err
		}
		log.Debug().Str("board_id", service.BoardID().String()).Msg("Board verified")
	}

	return game.EncodeBoard(os.Stdout, board, c.Output.Format)
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so stdout carries only the board
	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
