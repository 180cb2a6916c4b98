package dux

// Attr is the probe output for one filesystem entry.
type Attr struct {
	// Device and Inode identify the entry's content within one mounted
	// filesystem.
	Device uint64
	Inode  uint64
	// Size is the entry's own size, not including descendants.
	Size int64
	// Kind is derived from the mode bits.
	Kind Kind
}
