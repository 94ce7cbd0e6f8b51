package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/youbeemuhwan/commercial/pkg/logger"
)

const meterName = "github.com/youbeemuhwan/commercial/pkg/storage"

// Filesystem stores files verbatim under basePath.
type Filesystem struct {
	basePath     string
	log          logger.Logger
	bytesWritten metric.Int64Counter
	filesWritten metric.Int64Counter
}

// New resolves basePath to an absolute path and creates it if missing.
func New(basePath string, log logger.Logger) (*Filesystem, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage: base path required")
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base path: %w", err)
	}

	meter := otel.Meter(meterName)
	bytesWritten, err := meter.Int64Counter("storage.bytes_written",
		metric.WithDescription("Bytes written to file storage"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: bytes counter: %w", err)
	}
	filesWritten, err := meter.Int64Counter("storage.files_written",
		metric.WithDescription("Files written to file storage"),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: files counter: %w", err)
	}

	log.Info("file storage ready", "base_path", abs)

	return &Filesystem{
		basePath:     abs,
		log:          log.With("component", "storage"),
		bytesWritten: bytesWritten,
		filesWritten: filesWritten,
	}, nil
}

// BasePath returns the absolute storage directory.
func (f *Filesystem) BasePath() string {
	return f.basePath
}

// Store copies r into the file called name and returns the number of bytes
// written. Content lands under a temporary name first and is renamed into
// place, so a failed copy never leaves a partial file behind.
func (f *Filesystem) Store(ctx context.Context, name string, r io.Reader) (int64, error) {
	path, err := f.fullPath(name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(f.basePath, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("storage: create temp file: %w", mapFSError(err))
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("storage: write %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("storage: rename %s: %w", name, mapFSError(err))
	}

	f.bytesWritten.Add(ctx, n)
	f.filesWritten.Add(ctx, 1)
	f.log.DebugContext(ctx, "file stored", "name", name, "bytes", n)

	return n, nil
}

// Open returns the stored file for reading. Callers close it.
func (f *Filesystem) Open(_ context.Context, name string) (*os.File, error) {
	path, err := f.fullPath(name)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, mapFSError(err)
	}
	return file, nil
}

// Ping verifies the base directory is still present and is a directory.
func (f *Filesystem) Ping(_ context.Context) error {
	info, err := os.Stat(f.basePath)
	if err != nil {
		return fmt.Errorf("storage ping: %w", mapFSError(err))
	}
	if !info.IsDir() {
		return fmt.Errorf("storage ping: %s is not a directory", f.basePath)
	}
	return nil
}

// fullPath joins name onto the base path. Names must be a single path element.
func (f *Filesystem) fullPath(name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", ErrInvalidName
	}
	return filepath.Join(f.basePath, name), nil
}

func mapFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return err
	}
}
