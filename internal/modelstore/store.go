// Package modelstore downloads external model files into a local directory
// once, so that later runs and concurrent processes reuse them.
package modelstore

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const lockRetryDelay = time.Second

// Store maps file names to paths under a directory and fills in missing ones
// from a Client.
type Store struct {
	dir    string
	client *Client
}

// New creates a Store rooted at dir. client may be nil, in which case
// Ensure only checks that the files are present.
func New(dir string, client *Client) *Store {
	return &Store{dir: dir, client: client}
}

// Path returns the local path of name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Ensure makes sure every named file exists locally, downloading the missing
// ones. Files already present are never fetched again.
func (s *Store) Ensure(ctx context.Context, names ...string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating model directory %q", s.dir)
	}
	for _, name := range names {
		path := s.Path(name)
		if fileExists(path) {
			continue
		}
		if s.client == nil {
			return errors.Errorf("model file %q is missing and no model URL is configured", path)
		}
		if err := s.lockedDownload(ctx, name, path); err != nil {
			return err
		}
	}
	return nil
}

// lockedDownload fetches name into path while holding path.lock. The body is
// written to path.downloading and renamed into place only once complete.
func (s *Store) lockedDownload(ctx context.Context, name, path string) error {
	lockPath := path + ".lock"
	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return errors.WithMessagef(err, "while locking %q to download %q", lockPath, name)
	}
	if !locked {
		return errors.Errorf("could not lock %q", lockPath)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Warn("modelstore: unlock failed", "lock", lockPath, "error", err)
		}
	}()

	// Another process may have finished the download while we waited.
	if fileExists(path) {
		return nil
	}

	tmpPath := path + ".downloading"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrapf(err, "creating temporary download file %q", tmpPath)
	}

	start := time.Now()
	slog.Info("modelstore: downloading", "file", name, "dest", path)
	if err := s.client.Fetch(ctx, name, tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, "downloading %q", name)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to close temporary download file %q", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to move downloaded file %q to %q", tmpPath, path)
	}
	slog.Info("modelstore: downloaded", "file", name, "elapsed", time.Since(start))

	if err := os.Remove(lockPath); err != nil {
		slog.Debug("modelstore: lock file not removed", "lock", lockPath, "error", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
