//go:build windows

package dux

import "syscall"

// errnoName has no symbol table on Windows; the numeric fallback is used.
func errnoName(syscall.Errno) string {
	return ""
}
