// Package dux computes per-directory disk usage for a filesystem subtree.
//
// It crawls a directory recursively, deduplicates hard-linked content via a
// (device, inode) identity pool, aggregates sizes bottom-up, orders siblings
// deterministically and renders an indented, human-readable report.
//
// The crawl is single-threaded and recursive; depth is bounded only by the
// depth of the subtree being scanned.
package dux
