package main

import (
	"context"
	"errors"

	"github.com/jacksmith/pcat/internal/catalog"
	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/storage"
	"go.uber.org/zap"
)

// app carries what every command needs: configuration, logger and store.
type app struct {
	cfg    *storage.Config
	logger *zap.Logger
	store  *storage.Store
	path   string
}

// openApp reads .pcatconfig.yaml from the working directory and applies
// the global flags on top of it.
func openApp() (*app, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(rootVerbose)
	if err != nil {
		return nil, err
	}

	if rootNoColor || cfg.NoColor {
		cli.SetColorEnabled(false)
	}

	path := cfg.File
	if rootFile != "" {
		path = rootFile
	}

	logger.Debug("configuration loaded",
		zap.String("file", path),
		zap.String("currency", cfg.Currency),
	)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  storage.New(logger),
		path:   path,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// newLogger returns a development logger at debug level when verbose,
// otherwise a no-op logger.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logConfig.OutputPaths = []string{"stderr"}
	return logConfig.Build()
}

// loadCatalog reads the catalog file. A missing file is an empty catalog,
// so the first add creates it.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	projects, err := a.store.Load(ctx, a.path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			a.logger.Debug("catalog file missing, starting empty", zap.String("path", a.path))
			return &catalog.Catalog{}, nil
		}
		return nil, err
	}
	return catalog.New(projects...), nil
}

func (a *app) saveCatalog(ctx context.Context, c *catalog.Catalog) error {
	return a.store.Save(ctx, a.path, c.Projects())
}
