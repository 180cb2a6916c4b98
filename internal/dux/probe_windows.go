//go:build windows

package dux

import "os"

// syntheticInode hands out identities on platforms without a cheap
// (device, inode) pair. The crawl is single-threaded, so a plain counter
// suffices.
var syntheticInode uint64

// probe looks up the attributes of path without following symlinks.
//
// Windows exposes no inode-like identity through os.Lstat, so every entry
// gets a fresh synthetic identity and hard-link deduplication degrades to
// plain summation.
func probe(path string) (Attr, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Attr{}, err
	}

	syntheticInode++

	return Attr{
		Inode: syntheticInode,
		Size:  info.Size(),
		Kind:  KindFromMode(info.Mode()),
	}, nil
}
