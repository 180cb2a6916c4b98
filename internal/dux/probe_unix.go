//go:build unix

package dux

import (
	"os"
	"syscall"
)

// probe looks up the attributes of path without following symlinks, so a
// symlink's identity and size are those of the link itself and a link to a
// directory is never crawled.
func probe(path string) (Attr, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Attr{}, err
	}

	attr := Attr{
		Size: info.Size(),
		Kind: KindFromMode(info.Mode()),
	}

	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		// Dev and Ino are not uint64 on all platforms.
		attr.Device = uint64(stat.Dev) //nolint:unconvert // Width differs per platform
		attr.Inode = uint64(stat.Ino)  //nolint:unconvert // Width differs per platform
	}

	return attr, nil
}
