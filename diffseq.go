// Package diffseq finds the longest common subsequence of two sequences
// with the Myers O(ND) algorithm, using divide-and-conquer bidirectional
// search so that memory stays linear in the edit distance.
//
// The engine, FindCommonSubsequences, works on index spaces only: callers
// supply the lengths of both sequences and a predicate comparing items by
// index, and receive the maximal runs of common items in order.
//
// Diff and DiffElements build an edit script on top of the engine and add:
//   - Preprocessing: Filters out high-frequency elements that cause spurious matches
//   - Postprocessing: Shifts diff boundaries for more readable output
package diffseq

import (
	"io"

	"github.com/sirupsen/logrus"
)

// OpType identifies the type of edit operation.
type OpType int

const (
	// Equal means the elements are unchanged.
	Equal OpType = iota
	// Insert means elements were added to B that are not in A.
	Insert
	// Delete means elements were removed from A that are not in B.
	Delete
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// DiffOp represents a single edit operation with index ranges.
type DiffOp struct {
	Type   OpType
	AStart int // start index in sequence A (inclusive)
	AEnd   int // end index in sequence A (exclusive)
	BStart int // start index in sequence B (inclusive)
	BEnd   int // end index in sequence B (exclusive)
}

// options holds configuration for building an edit script.
type options struct {
	preprocessing  bool
	postprocessing bool
	logger         logrus.FieldLogger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &options{
		preprocessing:  true,
		postprocessing: true,
		logger:         logger,
	}
}

// Option configures diff behavior.
type Option func(*options)

// WithPreprocessing enables or disables confusing element filtering.
// Default: true.
func WithPreprocessing(enabled bool) Option {
	return func(o *options) {
		o.preprocessing = enabled
	}
}

// WithPostprocessing enables or disables boundary shifting.
// Default: true.
func WithPostprocessing(enabled bool) Option {
	return func(o *options) {
		o.postprocessing = enabled
	}
}

// WithLogger sets the logger used to report preprocessing and
// postprocessing decisions at debug level. Default: output is discarded.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Diff compares two string slices and returns edit operations.
func Diff(a, b []string, opts ...Option) []DiffOp {
	return DiffElements(toElements(a), toElements(b), opts...)
}

// DiffElements compares arbitrary Element slices.
//
// Applying the Equal and Insert operations in order reproduces b. The
// returned script is minimal unless preprocessing discards elements that
// could have matched.
func DiffElements(a, b []Element, opts ...Option) []DiffOp {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Handle trivial cases
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 {
		return []DiffOp{{Type: Insert, AStart: 0, AEnd: 0, BStart: 0, BEnd: len(b)}}
	}
	if len(b) == 0 {
		return []DiffOp{{Type: Delete, AStart: 0, AEnd: len(a), BStart: 0, BEnd: 0}}
	}

	fa, fb := a, b
	var mapping *indexMapping
	if o.preprocessing {
		fa, fb, mapping = filterConfusingElements(a, b)
		if mapping != nil {
			o.logger.WithFields(logrus.Fields{
				"a":         len(a),
				"b":         len(b),
				"aFiltered": len(fa),
				"bFiltered": len(fb),
			}).Debug("diffseq: filtered confusing elements")
		}
	}

	runs := mustCommonSubsequences(fa, fb)

	if mapping != nil {
		runs = extendRuns(mapping.mapRuns(runs), a, b)
	}

	if o.postprocessing {
		var shifted int
		runs, shifted = shiftBoundaries(runs, a, b)
		if shifted > 0 {
			o.logger.WithField("shifted", shifted).Debug("diffseq: shifted change boundaries")
		}
	}

	return buildOps(runs, len(a), len(b))
}

// mustCommonSubsequences runs the engine over two element slices. The
// arguments are always valid here, so an error is an engine bug.
func mustCommonSubsequences(a, b []Element) []Subsequence {
	runs, err := CommonSubsequences(len(a), len(b), elementsCommon(a, b))
	if err != nil {
		panic(err)
	}
	return runs
}
