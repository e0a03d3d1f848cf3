package internal

import (
	"fmt"
	"time"
)

// SearchStats - timer plus counters of one search. Owned by a single walk.
type SearchStats struct {
	start, stop  time.Time
	DirsRead     int64
	DirsSkipped  int64
	FilesChecked int64
	Matches      int64
}

func (s *SearchStats) Start() {
	s.start = time.Now()
	s.stop = time.Time{}
}

func (s *SearchStats) Stop() {
	s.stop = time.Now()
}

// Elapsed is truncated to milliseconds. Before Stop it reports the running time.
func (s *SearchStats) Elapsed() time.Duration {
	end := s.stop
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.start).Truncate(time.Millisecond)
}

// FormatElapsed renders d as "<n> ms" below one second, otherwise as
// "<h>h <m>m <s>s <ms>ms" with leading zero hour/minute segments dropped.
func FormatElapsed(d time.Duration) string {
	total := d.Milliseconds()
	if total < 1000 {
		return fmt.Sprintf("%d ms", total)
	}

	ms := total % 1000
	secs := total / 1000 % 60
	mins := total / 60000 % 60
	hours := total / 3600000

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds %dms", hours, mins, secs, ms)
	case mins > 0:
		return fmt.Sprintf("%dm %ds %dms", mins, secs, ms)
	default:
		return fmt.Sprintf("%ds %dms", secs, ms)
	}
}
