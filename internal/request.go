package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingArguments = errors.New("missing required arguments")
	ErrInvalidLimit     = errors.New("invalid limit value")
)

// ParsedArgs is what the parser could make of the tokens after a subcommand.
// Warnings holds recoverable problems (bad numeric flag values); the
// affected limit stays unset.
type ParsedArgs struct {
	Pattern    string
	Directory  string
	MaxDepth   Limit
	MaxResults Limit
	Help       bool
	Warnings   *multierror.Error
}

// Tokenize splits an input line on spaces and drops every double quote.
// There is no escaping: a quoted token containing a space is still split.
func Tokenize(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	line = strings.ReplaceAll(line, `"`, "")
	var args []string
	for _, tok := range strings.Split(line, " ") {
		if tok != "" {
			args = append(args, tok)
		}
	}
	return args
}

// ParseArgs reads `<cmd> <pattern> [-d dir] [--max-depth n] [--max-results n] [-h]`.
// tokens[0] is the subcommand and is not interpreted here.
func ParseArgs(tokens []string) (*ParsedArgs, error) {
	if len(tokens) < 2 {
		return nil, ErrMissingArguments
	}

	pa := &ParsedArgs{Pattern: tokens[1]}
	for i := 2; i < len(tokens); i++ {
		switch arg := tokens[i]; arg {
		case "-h", "--help":
			pa.Help = true
		case "-d":
			if i+1 < len(tokens) {
				i++
				pa.Directory = tokens[i]
			}
		case "--max-depth", "--max-results":
			var raw string
			if i+1 < len(tokens) {
				i++
				raw = tokens[i]
			}
			lim, err := parseLimit(arg, raw)
			if err != nil {
				pa.Warnings = multierror.Append(pa.Warnings, err)
				continue
			}
			if arg == "--max-depth" {
				pa.MaxDepth = lim
			} else {
				pa.MaxResults = lim
			}
		default:
			logrus.WithField("arg", arg).Debug("ignoring unknown argument")
		}
	}
	return pa, nil
}

func parseLimit(flag, raw string) (Limit, error) {
	if raw == "" {
		return NoLimit(), fmt.Errorf("%s: %w: missing value", flag, ErrInvalidLimit)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return NoLimit(), fmt.Errorf("%s: %w %q: %w", flag, ErrInvalidLimit, raw, err)
	}
	if n < 0 {
		return NoLimit(), fmt.Errorf("%s: %w %q: must not be negative", flag, ErrInvalidLimit, raw)
	}
	return LimitOf(n), nil
}

// Request returns the validated request, or false when usage must be shown
// instead (help requested, pattern or directory missing).
func (pa *ParsedArgs) Request() (SearchRequest, bool) {
	if pa.Help {
		return SearchRequest{}, false
	}
	req, err := NewSearchRequest(pa.Pattern, pa.Directory, pa.MaxDepth, pa.MaxResults)
	if err != nil {
		return SearchRequest{}, false
	}
	return req, true
}

// WarningList flattens recoverable errors for reporting.
func (pa *ParsedArgs) WarningList() []error {
	if pa.Warnings == nil {
		return nil
	}
	return pa.Warnings.WrappedErrors()
}
