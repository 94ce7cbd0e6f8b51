// Package storage keeps uploaded files on the local filesystem under a single
// configured base directory. Names map directly to files in that directory.
package storage

import "errors"

// Storage errors returned by Filesystem.
var (
	// ErrNotFound indicates the requested name does not exist in storage.
	ErrNotFound = errors.New("storage: file not found")

	// ErrPermissionDenied indicates insufficient permissions to access the file.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidName indicates an empty name or one that escapes the base directory.
	ErrInvalidName = errors.New("storage: invalid name")
)
