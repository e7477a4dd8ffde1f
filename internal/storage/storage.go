// Package storage saves and loads catalog files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jacksmith/pcat/internal/model"
	"go.uber.org/zap"
)

// Store reads and writes catalog files, choosing the codec by extension.
type Store struct {
	logger *zap.Logger
}

// New returns a Store. A nil logger disables logging.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Save writes projects to path, replacing whatever was there.
// File formats are written to a temporary sibling and renamed into place,
// so an interrupted save leaves the previous file intact.
func (s *Store) Save(ctx context.Context, path string, projects []model.Project) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatSQLite:
		err = saveSQLite(ctx, path, projects)
	case FormatYAML:
		err = writeFileAtomic(path, func(w io.Writer) error {
			return model.WriteYAML(w, projects)
		})
	default:
		err = writeFileAtomic(path, func(w io.Writer) error {
			return model.WriteXML(w, projects)
		})
	}
	if err != nil {
		s.logger.Debug("save failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	s.logger.Debug("saved catalog",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("projects", len(projects)),
	)
	return nil
}

// Load reads every project from path in file order.
// Returns ErrFileNotFound if path does not exist and an ErrParse-wrapped
// error if it cannot be decoded. Nothing is returned on partial success.
func (s *Store) Load(ctx context.Context, path string) ([]model.Project, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	// Check if file exists first; opening a missing SQLite path would create it
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}

	var projects []model.Project
	switch format {
	case FormatSQLite:
		projects, err = loadSQLite(ctx, path)
	case FormatYAML:
		projects, err = readFile(path, model.ReadYAML)
	default:
		projects, err = readFile(path, model.ReadXML)
	}
	if err != nil {
		s.logger.Debug("load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("loaded catalog",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("projects", len(projects)),
	)
	return projects, nil
}

// readFile opens path and decodes it with decode. The file is closed on
// every return path.
func readFile(path string, decode func(io.Reader) ([]model.Project, error)) ([]model.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	projects, err := decode(f)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w %s: %w", ErrParse, path, err)
	}
	return projects, nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it over path once encode has succeeded.
func writeFileAtomic(path string, encode func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pcat-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Remove the temp file unless the rename succeeded
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	committed = true
	return nil
}
