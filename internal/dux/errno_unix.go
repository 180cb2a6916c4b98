//go:build unix

package dux

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoName returns the platform's symbolic constant for errno, or "" when
// the code has no name.
func errnoName(errno syscall.Errno) string {
	return unix.ErrnoName(errno)
}
