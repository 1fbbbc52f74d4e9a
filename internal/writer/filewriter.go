// Package writer exposes sinks for table emission.
package writer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

const (
	tempPrefix   = ".sizeclass-tmp-"
	tempAttempts = 10000
)

// FileWriter writes a table to a filesystem path atomically.
type FileWriter struct {
	Path string
	// Sync flushes file data to stable storage before the rename.
	Sync bool
}

// WriteTable streams fill's output to the configured path atomically via
// temp file + rename. The temp file is closed and removed on every error.
//
// A symlinked path is followed, so the link survives and its target is
// replaced. An existing file keeps its permission bits; a new file gets
// 0666 minus the umask, as with os.Create.
func (w *FileWriter) WriteTable(fill func(io.Writer) error) error {
	target := resolveTarget(w.Path)

	perm := os.FileMode(0o666)
	keepMode := false
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
		keepMode = true
	}

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := createTemp(filepath.Dir(target), perm)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if fillErr := fill(tmpFile); fillErr != nil {
		return fmt.Errorf("write temp file: %w", fillErr)
	}

	if w.Sync {
		if syncErr := fdatasync(tmpFile); syncErr != nil {
			return fmt.Errorf("sync temp file: %w", syncErr)
		}
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	// The umask may have cleared bits the existing file had
	if keepMode {
		if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("chmod temp file: %w", chmodErr)
		}
	}

	// Atomic rename
	if renameErr := os.Rename(tmpPath, target); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}

// resolveTarget returns the file a write to path should replace. Symlinks
// are followed, including a dangling final link.
func resolveTarget(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	link, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link
}

// createTemp creates a new file in dir with perm, subject to the umask.
// os.CreateTemp always uses 0600.
func createTemp(dir string, perm os.FileMode) (*os.File, error) {
	for i := 0; i < tempAttempts; i++ {
		name := filepath.Join(dir, tempPrefix+strconv.FormatUint(rand.Uint64(), 36))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, tempPrefix+"*"), Err: fs.ErrExist}
}
