package dux

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Options configures a crawl and the surrounding CLI behavior.
type Options struct {
	// Path is the root of the subtree to analyze.
	Path string
	// Boring lists directory basenames whose children are size-counted
	// but not individually rendered.
	Boring []string
	// Config is the path of an optional YAML config file.
	Config string
	// Output represents output format (tree or json).
	Output string
	// Depth is the maximum rendered depth (0=unlimited). Aggregation is
	// never affected by it.
	Depth int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Summary indicates whether to print a scan summary.
	Summary bool
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// Result holds the built tree and the totals of one run.
type Result struct {
	// Root is the fully aggregated, sorted tree.
	Root *Node `json:"root"`
	// Entries is the number of tree nodes, the root included.
	Entries int64 `json:"entries"`
	// Dirs is the number of directory nodes.
	Dirs int64 `json:"dirs"`
	// Bytes is the deduplicated byte total across all nodes.
	Bytes int64 `json:"bytes"`
	// Unique is the number of distinct (device, inode) pairs seen.
	Unique int `json:"unique"`
	// Errors is the number of recoverable failures reported.
	Errors int64 `json:"errors"`
	// Elapsed is the total time taken for the crawl.
	Elapsed time.Duration `json:"elapsed"`
}

// crawler carries the run-scoped state of one crawl: the identity pool,
// the diagnostic sink and the progress counters.
type crawler struct {
	pool *identityPool
	rep  *Reporter
	log  logger

	mu      sync.Mutex // Protects the counters read by the progress reporter
	entries int64
	dirs    int64
	bytes   int64
}

// observe feeds the progress counters. fresh is false for hard-link
// aliases, whose bytes were already counted at the first encounter.
func (c *crawler) observe(node *Node, fresh bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries++

	if node.Kind == KindDir {
		c.dirs++
	}

	if fresh {
		c.bytes += node.Size
	}
}

// snapshot returns the current progress counters.
func (c *crawler) snapshot() (entries, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries, c.bytes
}

// crawl builds node's child list from the directory at path, accumulates
// deduplicated descendant bytes into node.Aggregate and sorts the final
// sibling set.
//
// Failures stay scoped: an open failure leaves the node empty with a zero
// aggregate, a mid-stream read failure keeps the entries listed so far,
// and a stat failure skips that one entry. None of them aborts the run.
func (c *crawler) crawl(path string, node *Node) {
	dir, err := os.Open(path)
	if err != nil {
		c.rep.Report(OpOpen, path, err)

		return
	}
	defer dir.Close()

	// Readdirnames never yields "." or "..". On a mid-stream failure it
	// hands back the names read until that point together with the error.
	names, err := dir.Readdirnames(-1)
	if err != nil {
		c.rep.Report(OpRead, path, err)
	}

	for _, name := range names {
		childPath := filepath.Join(path, name)

		attr, err := probe(childPath)
		if err != nil {
			c.rep.Report(OpStat, childPath, err)

			continue
		}

		child := &Node{
			Name:   name,
			Kind:   attr.Kind,
			Size:   attr.Size,
			Device: attr.Device,
			Inode:  attr.Inode,
		}
		node.Children = append(node.Children, child)

		// Recurse before the pool query so the child's aggregate is
		// final when its own dedup decision is made.
		if child.Kind == KindDir {
			c.crawl(childPath, child)
		}

		fresh := c.pool.registerIfNew(child.Device, child.Inode)
		if fresh {
			node.Aggregate += child.Total()
		} else {
			c.log.printf("[debug]: hard link alias, not counted again: %s\n", childPath)
		}

		c.observe(child, fresh)
	}

	sortSiblings(node.Children)
}

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx
// is done.
//
//nolint:varnamelen // c is idiomatic for crawler
func startProgressReporter(ctx context.Context, c *crawler, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run crawls the subtree at opt.Path and returns the aggregated, sorted
// tree together with the run totals.
//
// The crawl itself is synchronous and single-threaded; ctx only governs
// the progress reporter goroutine, which samples the crawler's counters
// and passes them to progressHook if provided.
//
// Recoverable failures (an unreadable directory, an entry that cannot be
// statted) are written to diag as they occur and never abort the run; the
// tree reflects whatever was successfully traversed. Only a failure to
// probe opt.Path itself is returned as an error.
func Run(ctx context.Context, opt Options, diag io.Writer, progressHook func(int64, int64)) (*Result, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	attr, err := probe(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("probing root %q: %w", opt.Path, err)
	}

	root := &Node{
		Name:   opt.Path,
		Kind:   attr.Kind,
		Size:   attr.Size,
		Device: attr.Device,
		Inode:  attr.Inode,
	}

	//nolint:varnamelen // c is idiomatic for crawler
	c := &crawler{
		pool: newIdentityPool(),
		rep:  NewReporter(diag),
		log:  log,
	}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, c, progressHook, opt.ProgressInterval)

	start := time.Now()

	if root.Kind == KindDir {
		log.printf("[debug]: crawling %s\n", opt.Path)
		c.crawl(opt.Path, root)
	}

	// The root registers last, after its whole subtree has aggregated,
	// keeping the visit-once rule uniform across all nodes.
	c.pool.registerIfNew(root.Device, root.Inode)
	c.observe(root, true)

	entries, bytes := c.snapshot()

	return &Result{
		Root:    root,
		Entries: entries,
		Dirs:    c.dirs,
		Bytes:   bytes,
		Unique:  c.pool.len(),
		Errors:  c.rep.Count(),
		Elapsed: time.Since(start),
	}, nil
}
