//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data to disk.
//
// On macOS, fsync() only reaches the drive cache; F_FULLFSYNC is required
// for the data to hit stable storage.
func fdatasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
