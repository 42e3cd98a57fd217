package root

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"lockin/internal/config"
	"lockin/internal/engine"
	"lockin/internal/storage"
)

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openService opens the store, loads (and if needed migrates) the state, and
// settles rollover plus clean accrual before the command's own work, so every
// command sees a current day.
func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}

	path := cfg.Storage.Path
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, cfg, nil, err
		}
	}

	store, err := storage.Open(ctx, path)
	if err != nil {
		return nil, cfg, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}

	svc, err := engine.NewService(ctx, store, engine.WithLogger(newLogger()))
	if err != nil {
		cleanup()
		return nil, cfg, nil, err
	}
	svc.Tick(ctx)

	return svc, cfg, cleanup, nil
}
