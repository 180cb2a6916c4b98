package dux

// identity is the composite key for one piece of file content. Device is
// compared before inode; inode numbers repeat across filesystems.
type identity struct {
	device uint64
	inode  uint64
}

// identityPool records every (device, inode) pair seen during one run so
// that hard-link aliases are counted once. It only ever grows; there is no
// removal for the lifetime of a run.
type identityPool struct {
	seen map[identity]struct{}
}

func newIdentityPool() *identityPool {
	return &identityPool{seen: make(map[identity]struct{})}
}

// registerIfNew records the pair and reports whether it was absent before
// this call. The first caller for a given pair gets true, every later
// caller gets false.
func (p *identityPool) registerIfNew(device, inode uint64) bool {
	key := identity{device: device, inode: inode}
	if _, ok := p.seen[key]; ok {
		return false
	}

	p.seen[key] = struct{}{}

	return true
}

// len reports the number of distinct identities registered so far.
func (p *identityPool) len() int {
	return len(p.seen)
}
