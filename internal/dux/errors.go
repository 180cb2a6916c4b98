package dux

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Op identifies which filesystem operation failed.
type Op int

const (
	// OpOpen is a failure to open a directory for enumeration.
	OpOpen Op = iota
	// OpRead is a failure of the directory stream mid-listing.
	OpRead
	// OpStat is a failure to look up the attributes of a single entry.
	OpStat
)

func (o Op) String() string {
	switch o {
	case OpOpen:
		return "opening"
	case OpRead:
		return "reading"
	default:
		return "statting"
	}
}

// Reporter is the sink for recoverable crawl diagnostics. Every reported
// failure becomes one line on the underlying writer.
type Reporter struct {
	writer io.Writer
	count  int64
}

// NewReporter creates a reporter writing diagnostic lines to writer.
func NewReporter(writer io.Writer) *Reporter {
	return &Reporter{writer: writer}
}

// Report writes one diagnostic line for a failed operation on path.
func (r *Reporter) Report(op Op, path string, err error) {
	r.count++

	name, code, desc := describe(err)

	fmt.Fprintf(r.writer, "Error %s(%d) occured when %s %q: %s\n", name, code, op, path, desc)
}

// Count reports how many failures have been reported so far.
func (r *Reporter) Count() int64 {
	return r.count
}

// describe extracts the symbolic errno name, numeric code and description
// from err. Errors that carry no errno fall back to UNKNOWN(-1) with the
// error's own text; an errno without a known symbol renders as ERRNO_<n>.
func describe(err error) (name string, code int, desc string) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return "UNKNOWN", -1, err.Error()
	}

	name = errnoName(errno)
	if name == "" {
		name = fmt.Sprintf("ERRNO_%d", int(errno))
	}

	return name, int(errno), errno.Error()
}
