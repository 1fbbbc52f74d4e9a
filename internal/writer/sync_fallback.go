//go:build !linux && !freebsd && !darwin && !windows

package writer

import "os"

// fdatasync flushes file data to disk.
func fdatasync(f *os.File) error {
	return f.Sync()
}
