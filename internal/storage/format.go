package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an on-disk catalog encoding.
type Format string

const (
	FormatXML    Format = "xml"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// FormatFor picks the format from a path's extension (case-insensitive).
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q (use .xml, .yaml, .yml, .db or .sqlite)", ErrUnsupportedFormat, path)
	}
}
