package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dacharyc/diffseq"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/pmezard/go-difflib/difflib"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
)

// detailLimit is the largest input whose diffseq ops are printed.
const detailLimit = 20

type testCase struct {
	name string
	a, b []string
}

type comparer struct {
	out        io.Writer
	logger     *logrus.Logger
	algorithms map[string]bool
	colors     palette
}

type palette struct {
	equal, delete, insert func(string) string
}

func plainPalette() palette {
	same := func(s string) string { return s }
	return palette{equal: same, delete: same, insert: same}
}

func ansiPalette() palette {
	return palette{
		equal:  ansi.ColorFunc("default"),
		delete: ansi.ColorFunc("red"),
		insert: ansi.ColorFunc("green"),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newComparer(fv *compareFlags) (*comparer, error) {
	algorithms, err := parseAlgorithms(fv.Algorithms)
	if err != nil {
		return nil, err
	}
	c := &comparer{
		out:        os.Stdout,
		logger:     newLogger(fv.Verbose),
		algorithms: algorithms,
		colors:     plainPalette(),
	}
	if fv.Color || isTerminal(os.Stdout) {
		c.colors = ansiPalette()
	}
	return c, nil
}

func (c *comparer) run(tc testCase) {
	fmt.Fprintf(c.out, "\n=== %s ===\n", tc.name)
	fmt.Fprintf(c.out, "A: %d elements, B: %d elements\n", len(tc.a), len(tc.b))

	var ops []diffseq.DiffOp
	if c.algorithms[algDiffseq] {
		start := time.Now()
		ops = diffseq.Diff(tc.a, tc.b, diffseq.WithLogger(c.logger))
		c.report(algDiffseq, time.Since(start), analyzeOps(ops))
	}

	if c.algorithms[algGoDiff] {
		start := time.Now()
		diffs := lineDiff(tc.a, tc.b)
		c.report(algGoDiff, time.Since(start), analyzeGoDiff(diffs))
	}

	if c.algorithms[algDifflib] {
		start := time.Now()
		codes := difflib.NewMatcher(tc.a, tc.b).GetOpCodes()
		c.report(algDifflib, time.Since(start), analyzeOpCodes(codes))
	}

	if ops != nil && len(tc.a) <= detailLimit {
		fmt.Fprintln(c.out, "\ndiffseq output:")
		c.printOps(tc, ops)
	}
}

func (c *comparer) report(name string, elapsed time.Duration, s diffStats) {
	fmt.Fprintf(c.out, "\n%-8s %v\n", name+":", elapsed)
	fmt.Fprintf(c.out, "  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
		s.total, s.equal, s.delete, s.insert)
	fmt.Fprintf(c.out, "  Change regions: %d\n", s.changeRegions)
	c.logger.WithFields(logrus.Fields{
		"algorithm": name,
		"elapsed":   elapsed,
		"edits":     s.edits,
	}).Debug("compared")
}

func (c *comparer) printOps(tc testCase, ops []diffseq.DiffOp) {
	for _, op := range ops {
		switch op.Type {
		case diffseq.Equal:
			fmt.Fprintln(c.out, c.colors.equal(fmt.Sprintf("  = %v", tc.a[op.AStart:op.AEnd])))
		case diffseq.Delete:
			fmt.Fprintln(c.out, c.colors.delete(fmt.Sprintf("  - %v", tc.a[op.AStart:op.AEnd])))
		case diffseq.Insert:
			fmt.Fprintln(c.out, c.colors.insert(fmt.Sprintf("  + %v", tc.b[op.BStart:op.BEnd])))
		}
	}
}

// lineDiff runs go-diff in line mode so that each element is one unit.
func lineDiff(a, b []string) []godiff.Diff {
	dmp := godiff.New()
	aText := joinLines(a)
	bText := joinLines(b)
	aChars, bChars, lines := dmp.DiffLinesToChars(aText, bText)
	return dmp.DiffCharsToLines(dmp.DiffMain(aChars, bChars, false), lines)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

type diffStats struct {
	total, equal, delete, insert int
	changeRegions                int
	edits                        int // deleted plus inserted elements
}

// add records one operation. Consecutive non-equal operations form a
// single change region.
func (s *diffStats) add(equal, deleted, inserted int, inChange *bool) {
	s.total++
	if equal > 0 {
		s.equal++
		*inChange = false
		return
	}
	if deleted > 0 {
		s.delete++
	}
	if inserted > 0 {
		s.insert++
	}
	s.edits += deleted + inserted
	if !*inChange {
		s.changeRegions++
		*inChange = true
	}
}

func analyzeOps(ops []diffseq.DiffOp) diffStats {
	var s diffStats
	inChange := false
	for _, op := range ops {
		switch op.Type {
		case diffseq.Equal:
			s.add(op.AEnd-op.AStart, 0, 0, &inChange)
		case diffseq.Delete:
			s.add(0, op.AEnd-op.AStart, 0, &inChange)
		case diffseq.Insert:
			s.add(0, 0, op.BEnd-op.BStart, &inChange)
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	inChange := false
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		switch d.Type {
		case godiff.DiffEqual:
			s.add(n, 0, 0, &inChange)
		case godiff.DiffDelete:
			s.add(0, n, 0, &inChange)
		case godiff.DiffInsert:
			s.add(0, 0, n, &inChange)
		}
	}
	return s
}

// analyzeOpCodes counts difflib opcodes. A replace is a delete and an
// insert within one change region.
func analyzeOpCodes(codes []difflib.OpCode) diffStats {
	var s diffStats
	inChange := false
	for _, c := range codes {
		switch c.Tag {
		case 'e':
			s.add(c.I2-c.I1, 0, 0, &inChange)
		case 'd':
			s.add(0, c.I2-c.I1, 0, &inChange)
		case 'i':
			s.add(0, 0, c.J2-c.J1, &inChange)
		case 'r':
			s.add(0, c.I2-c.I1, c.J2-c.J1, &inChange)
		}
	}
	return s
}
