// Comparison tool for validating diffseq output quality against other diff implementations
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/cmdutil/subcmd"
	"github.com/sirupsen/logrus"
)

const spec = `name: compare
summary: compare diffseq against go-diff and go-difflib
commands:
  - name: builtin
    summary: run the built-in comparison cases
  - name: files
    summary: compare two files line by line
    arguments:
      - <file-a>
      - <file-b>
`

type compareFlags struct {
	Color      bool   `subcmd:"color,false,force colored output"`
	Verbose    int    `subcmd:"v,0,higher values show more debugging output"`
	Algorithms string `subcmd:"algorithms,all,algorithms to run as a comma separated list or all"`
}

var cmdSet = subcmd.MustFromYAML(spec)

func init() {
	cmdSet.Set("builtin").MustRunnerAndFlags(builtin,
		subcmd.MustRegisteredFlagSet(&compareFlags{}))
	cmdSet.Set("files").MustRunnerAndFlags(files,
		subcmd.MustRegisteredFlagSet(&compareFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

func builtin(_ context.Context, values interface{}, _ []string) error {
	c, err := newComparer(values.(*compareFlags))
	if err != nil {
		return err
	}
	for _, tc := range builtinCases() {
		c.run(tc)
	}
	return nil
}

func files(_ context.Context, values interface{}, args []string) error {
	c, err := newComparer(values.(*compareFlags))
	if err != nil {
		return err
	}
	a, err := readLines(args[0])
	if err != nil {
		return err
	}
	b, err := readLines(args[1])
	if err != nil {
		return err
	}
	c.logger.WithFields(logrus.Fields{"a": args[0], "b": args[1]}).Debug("read input files")
	c.run(testCase{name: args[0] + " vs " + args[1], a: a, b: b})
	return nil
}

// readLines returns the lines of a file without their line endings.
func readLines(name string) ([]string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", name, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if len(text) == 0 {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// Algorithms that can be compared.
const (
	algDiffseq = "diffseq"
	algGoDiff  = "go-diff"
	algDifflib = "difflib"
)

func parseAlgorithms(list string) (map[string]bool, error) {
	all := map[string]bool{algDiffseq: true, algGoDiff: true, algDifflib: true}
	if list == "" || list == "all" {
		return all, nil
	}
	selected := map[string]bool{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if !all[name] {
			return nil, fmt.Errorf("unknown algorithm %q, expected one of %v, %v or %v",
				name, algDiffseq, algGoDiff, algDifflib)
		}
		selected[name] = true
	}
	return selected, nil
}

// newLogger returns a logger writing to stderr at info level, or debug
// level once verbose is positive. Debug output includes the decisions made
// by diffseq's preprocessing and postprocessing.
func newLogger(verbose int) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	if verbose > 0 {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
