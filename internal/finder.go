package internal

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const searchCommand = "search"

var ErrNoArguments = errors.New("no arguments")

// CommandConfig wires a command run to its outputs.
type CommandConfig struct {
	Out      io.Writer
	Err      io.Writer
	Colored  bool
	Searcher *DirectorySearcher
}

// RunCommand dispatches one tokenized input line. Only an empty line is an
// error; everything else is reported on the configured writers.
func RunCommand(tokens []string, cfg CommandConfig) error {
	if len(tokens) == 0 {
		return ErrNoArguments
	}
	if tokens[0] != searchCommand {
		logrus.WithField("command", tokens[0]).Warn("unknown command")
		return nil
	}
	return runSearch(tokens, cfg)
}

func runSearch(tokens []string, cfg CommandConfig) error {
	pa, err := ParseArgs(tokens)
	if errors.Is(err, ErrMissingArguments) {
		fmt.Fprintf(cfg.Err, "Error: %s.\nUse 'search -h' to display help.\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	for _, w := range pa.WarningList() {
		fmt.Fprintf(cfg.Err, "Warning: %s\n", w)
	}

	rep := NewReporter(cfg.Out, cfg.Colored)
	req, ok := pa.Request()
	if !ok {
		rep.Usage()
		return nil
	}

	searcher := cfg.Searcher
	if searcher == nil {
		searcher = NewDirectorySearcher()
	}

	logrus.WithFields(logrus.Fields{
		"pattern":     req.Pattern(),
		"dir":         req.Root(),
		"max_depth":   req.MaxDepth(),
		"max_results": req.MaxResults(),
	}).Info("search started")

	rep.Header(req)
	summary := searcher.Walk(req, rep.Match)
	rep.Summary(summary)

	logrus.WithField("summary", summary).Info("search finished")
	return nil
}
