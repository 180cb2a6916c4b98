package dux

import "sort"

// sortSiblings orders one parent's immediate children for the report. It
// runs once per directory, after the full child set and all aggregates are
// known.
func sortSiblings(children []*Node) {
	sort.Slice(children, func(i, j int) bool {
		return siblingLess(children[i], children[j])
	})
}

// siblingLess is the report's comparator: directories before everything
// else, then larger totals, remaining ties broken by ascending byte-wise
// name. Names are unique within a directory, so the order is a strict
// total order and the sort deterministic.
func siblingLess(a, b *Node) bool {
	aDir := a.Kind == KindDir
	bDir := b.Kind == KindDir

	if aDir != bDir {
		return aDir
	}

	// Totals are compared directly; subtracting them could overflow for
	// very large sizes.
	if a.Total() != b.Total() {
		return a.Total() > b.Total()
	}

	return a.Name < b.Name
}
