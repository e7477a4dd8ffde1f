package storage

import "errors"

var (
	// ErrFileNotFound is returned by Load when the catalog file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrParse is returned when a catalog file exists but cannot be decoded.
	ErrParse = errors.New("failed to parse catalog file")

	// ErrUnsupportedFormat is returned for paths whose extension has no codec.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
