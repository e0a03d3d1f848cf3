package internal

import "strings"

// Pattern - fast interface for file name match.
type Pattern interface {
	Match(name string) bool
	Desc() string // for logs
}

// NamePattern matches base names by case-insensitive substring.
// Only ASCII letters are folded; other bytes are compared as is, so
// multi-byte UTF-8 sequences (or non-UTF-8 names) are never altered.
type NamePattern struct {
	raw    string
	folded string
}

func NewNamePattern(s string) *NamePattern {
	return &NamePattern{raw: s, folded: FoldASCII(s)}
}

func (p *NamePattern) Match(name string) bool {
	return strings.Contains(FoldASCII(name), p.folded)
}

func (p *NamePattern) Desc() string { return p.raw }

// FoldASCII lowercases A-Z and leaves every other byte untouched.
// Returns s itself when there is nothing to fold.
func FoldASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
