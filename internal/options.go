package internal

import (
	"errors"
	"strconv"
)

var (
	ErrEmptyPattern = errors.New("search pattern is required")
	ErrEmptyRoot    = errors.New("search directory is required")
)

// Limit is an optional non-negative bound. The zero value means "no limit";
// LimitOf(0) is a real limit of zero.
type Limit struct {
	n   int
	set bool
}

// NoLimit returns an unset limit.
func NoLimit() Limit { return Limit{} }

// LimitOf returns a limit of n. Negative values are clamped to 0.
func LimitOf(n int) Limit {
	return Limit{n: max(n, 0), set: true}
}

// Value returns the bound and whether it is set.
func (l Limit) Value() (int, bool) { return l.n, l.set }

func (l Limit) IsSet() bool { return l.set }

// Exceeded reports whether v is beyond the bound.
func (l Limit) Exceeded(v int) bool { return l.set && v > l.n }

// Reached reports whether v has hit the bound.
func (l Limit) Reached(v int) bool { return l.set && v >= l.n }

func (l Limit) String() string {
	if !l.set {
		return "unlimited"
	}
	return strconv.Itoa(l.n)
}

// SearchRequest - validated, immutable input of a search.
type SearchRequest struct {
	pattern    string
	root       string
	maxDepth   Limit
	maxResults Limit
}

// NewSearchRequest checks invariants and builds a request.
func NewSearchRequest(pattern, root string, maxDepth, maxResults Limit) (SearchRequest, error) {
	if pattern == "" {
		return SearchRequest{}, ErrEmptyPattern
	}
	if root == "" {
		return SearchRequest{}, ErrEmptyRoot
	}
	return SearchRequest{
		pattern:    pattern,
		root:       root,
		maxDepth:   maxDepth,
		maxResults: maxResults,
	}, nil
}

func (r SearchRequest) Pattern() string   { return r.pattern }
func (r SearchRequest) Root() string      { return r.root }
func (r SearchRequest) MaxDepth() Limit   { return r.maxDepth }
func (r SearchRequest) MaxResults() Limit { return r.maxResults }
