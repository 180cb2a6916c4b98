package dux

import "os"

// Kind represents the type of a filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// MarshalText renders the kind as its string form in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindFromMode derives the Kind from an os.FileMode. Symlinks are detected
// from the mode bits directly, so a link to a directory is still a symlink.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// Node represents one filesystem entry in the crawled tree.
type Node struct {
	// Name is the basename of the entry, without any path component.
	Name string `json:"name"`
	// Kind is derived from the probe's mode bits at creation time.
	Kind Kind `json:"kind"`
	// Size is the entry's own size as reported by the probe.
	Size int64 `json:"size"`
	// Aggregate is the deduplicated sum of descendant sizes. It is only
	// ever non-zero for directories and excludes the node's own Size.
	Aggregate int64 `json:"aggregate,omitempty"`
	// Children holds the immediate children, directories only. Order is
	// enumeration order until the siblings are sorted.
	Children []*Node `json:"children,omitempty"`
	// Device and Inode form the entry's content identity. The pair is
	// unique only within one mounted filesystem.
	Device uint64 `json:"-"`
	Inode  uint64 `json:"-"`
}

// Total is the size the node represents in the report: its own size plus,
// for directories, the deduplicated descendant bytes.
func (n *Node) Total() int64 {
	return n.Size + n.Aggregate
}
