package dux

import (
	"fmt"
	"io"
)

// sizeFieldWidth fits the widest humanized value, "1024.0 kiB".
const sizeFieldWidth = 10

// sizeUnits are the binary units of the report, smallest first.
//
//nolint:gochecknoglobals // Format constant
var sizeUnits = [...]string{"B", "kiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// HumanSize renders a byte count with one fractional digit and the
// smallest binary unit that keeps the scaled value at or below 1024, so
// 1024 bytes render as "1024.0 B" and 1025 as "1.0 kiB".
func HumanSize(bytes int64) string {
	value := float64(bytes)
	unit := 0

	for value > 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

// Renderer prints a tree as indented, size-annotated lines, largest
// entries first within each directory.
type Renderer struct {
	writer io.Writer
	boring map[string]struct{}
	depth  int
}

// NewRenderer creates a renderer writing to writer. Directories whose
// basename is in boring render an ellipsis placeholder in place of their
// children. depth caps how many levels are descended (0 = unlimited).
func NewRenderer(writer io.Writer, boring []string, depth int) *Renderer {
	set := make(map[string]struct{}, len(boring))
	for _, name := range boring {
		set[name] = struct{}{}
	}

	return &Renderer{writer: writer, boring: set, depth: depth}
}

// Render prints node and its subtree, one line per entry.
func (r *Renderer) Render(node *Node) {
	r.render(node, "", 0)
}

func (r *Renderer) render(node *Node, indent string, level int) {
	name := node.Name
	if node.Kind == KindDir {
		name += "/"
	}

	fmt.Fprintf(r.writer, "%*s %s%s\n", sizeFieldWidth, HumanSize(node.Total()), indent, name)

	if node.Kind != KindDir || len(node.Children) == 0 {
		return
	}

	if r.depth > 0 && level+1 > r.depth {
		return
	}

	childIndent := indent + "  "

	// A collapsed directory already contributed its bytes to the line
	// above; only the detailed listing is suppressed.
	if _, ok := r.boring[node.Name]; ok {
		fmt.Fprintf(r.writer, "%*s %s...\n", sizeFieldWidth, "", childIndent)

		return
	}

	for _, child := range node.Children {
		r.render(child, childIndent, level+1)
	}
}
