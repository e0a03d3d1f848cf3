package internal

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// errStopWalk unwinds the recursion once the result budget is spent.
var errStopWalk = errors.New("stop walk")

// visitFunc is called for every entry of a directory at the given depth.
// Returning errStopWalk aborts the whole walk.
type visitFunc func(dir string, d fs.DirEntry, depth int) error

// IsSearchRoot reports whether root exists and is a directory (symlinks followed).
func IsSearchRoot(root string) bool {
	st, err := os.Stat(root)
	return err == nil && st.IsDir()
}

// walkDir reads dir (sitting at depth) and visits its entries in lexical order.
// Subdirectories are entered at depth+1 unless maxDepth is exceeded.
// Unreadable directories are skipped; entries of a partial read still count.
func walkDir(dir string, depth int, maxDepth Limit, stats *SearchStats, onDir func(string), visit visitFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		stats.DirsSkipped++
		logrus.WithFields(logrus.Fields{"dir": dir, "err": err}).Debug("skip unreadable directory")
	} else {
		stats.DirsRead++
		if onDir != nil {
			onDir(dir)
		}
	}

	for _, d := range entries {
		if err := visit(dir, d, depth); err != nil {
			return err
		}
		// Type() reports the link itself, so directory symlinks are never entered.
		if !d.IsDir() {
			continue
		}
		if maxDepth.Exceeded(depth + 1) {
			logrus.WithFields(logrus.Fields{"dir": joinPath(dir, d.Name()), "depth": depth + 1}).Debug("depth cutoff")
			continue
		}
		if err := walkDir(joinPath(dir, d.Name()), depth+1, maxDepth, stats, onDir, visit); err != nil {
			return err
		}
	}
	return nil
}

// isRegularFile resolves symlinks: a link to a regular file counts, a
// dangling one or anything that is not a plain file does not.
func isRegularFile(path string, d fs.DirEntry) bool {
	t := d.Type()
	if t.IsRegular() {
		return true
	}
	if t&fs.ModeSymlink == 0 {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// joinPath appends name to dir without cleaning dir, so reported paths keep
// the root exactly as the user typed it.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
