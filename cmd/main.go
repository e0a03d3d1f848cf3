package main

import (
	"FileSearch/internal"
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "FileSearch",
		Usage: "Find files by name under a directory tree; without arguments one command line is read from stdin",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "logfile",
				Usage:   "Write logs into file instead of stderr",
				EnvVars: []string{"FILESEARCH_LOGFILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "warn",
				EnvVars: []string{"FILESEARCH_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a spinner with the number of directories read (stderr)",
			},
		},
		Action: func(c *cli.Context) error {
			internal.InitLogger(c.String("logfile"), c.String("log-level"))

			tokens := c.Args().Slice()
			if len(tokens) == 0 {
				line, err := readLine(os.Stdin)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				tokens = internal.Tokenize(line)
			}

			var opts []internal.SearcherOption
			if c.Bool("progress") {
				bar := progressbar.NewOptions(-1,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("searching"),
					progressbar.OptionSpinnerType(14),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
				defer bar.Finish()
				opts = append(opts, internal.WithDirectoryHook(func(string) { _ = bar.Add(1) }))
			}

			err := internal.RunCommand(tokens, internal.CommandConfig{
				Out:      os.Stdout,
				Err:      os.Stderr,
				Colored:  !c.Bool("no-color") && isatty.IsTerminal(os.Stdout.Fd()),
				Searcher: internal.NewDirectorySearcher(opts...),
			})
			if errors.Is(err, internal.ErrNoArguments) {
				return cli.Exit("", 1)
			}
			return err
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// readLine returns the first line of r; EOF without input is an empty line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
