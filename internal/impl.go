package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"
)

// DirectorySearcher finds files by name under a directory tree.
// It keeps no state between calls; every Walk owns its own cursor.
type DirectorySearcher struct {
	onDir func(dir string)
}

type SearcherOption func(*DirectorySearcher)

// WithDirectoryHook registers fn to be called for every directory read.
func WithDirectoryHook(fn func(dir string)) SearcherOption {
	return func(s *DirectorySearcher) { s.onDir = fn }
}

func NewDirectorySearcher(opts ...SearcherOption) *DirectorySearcher {
	s := &DirectorySearcher{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MatchResult is one file found, in discovery order.
type MatchResult struct {
	Index int
	Path  string
}

// SearchSummary is derived once the walk finished or was cut short.
type SearchSummary struct {
	MatchCount int
	Elapsed    time.Duration
}

func (s SearchSummary) String() string {
	return fmt.Sprintf("%d files in %s", s.MatchCount, FormatElapsed(s.Elapsed))
}

// cursor is the per-call traversal state.
type cursor struct {
	pattern    Pattern
	maxResults Limit
	found      int
	stats      *SearchStats
	onMatch    func(MatchResult)
}

func (c *cursor) visit(dir string, d fs.DirEntry, depth int) error {
	if c.maxResults.Reached(c.found) {
		return errStopWalk
	}
	if d.IsDir() {
		return nil
	}
	path := joinPath(dir, d.Name())
	if !isRegularFile(path, d) {
		return nil
	}
	c.stats.FilesChecked++
	if !c.pattern.Match(d.Name()) {
		return nil
	}
	c.onMatch(MatchResult{Index: c.found, Path: path})
	c.found++
	c.stats.Matches++
	return nil
}

// Walk searches req.Root() and hands every match to onMatch as soon as it is
// found. A root that is missing or not a directory yields a zero summary.
func (s *DirectorySearcher) Walk(req SearchRequest, onMatch func(MatchResult)) SearchSummary {
	if !IsSearchRoot(req.Root()) {
		logrus.WithField("dir", req.Root()).Debug("search root is not a directory, nothing to do")
		return SearchSummary{}
	}
	if onMatch == nil {
		onMatch = func(MatchResult) {}
	}

	var stats SearchStats
	c := &cursor{
		pattern:    NewNamePattern(req.Pattern()),
		maxResults: req.MaxResults(),
		stats:      &stats,
		onMatch:    onMatch,
	}

	stats.Start()
	err := walkDir(req.Root(), 0, req.MaxDepth(), &stats, s.onDir, c.visit)
	stats.Stop()

	if errors.Is(err, errStopWalk) {
		logrus.WithField("max_results", req.MaxResults()).Debug("result limit reached, walk stopped")
	}
	logrus.WithFields(logrus.Fields{
		"pattern":      c.pattern.Desc(),
		"dirs_read":    stats.DirsRead,
		"dirs_skipped": stats.DirsSkipped,
		"files":        stats.FilesChecked,
		"matches":      stats.Matches,
	}).Debug("search finished")

	return SearchSummary{MatchCount: c.found, Elapsed: stats.Elapsed()}
}

// Search is Walk collecting the matches into a slice.
func (s *DirectorySearcher) Search(req SearchRequest) ([]MatchResult, SearchSummary) {
	results := []MatchResult{}
	summary := s.Walk(req, func(m MatchResult) {
		results = append(results, m)
	})
	return results, summary
}
