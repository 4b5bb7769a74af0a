package diffseq

// IsCommonFunc reports whether item aIndex of sequence A and item bIndex of
// sequence B are to be treated as identical. It is only called with valid
// indexes and must be free of side effects that affect its result.
type IsCommonFunc func(aIndex, bIndex int) bool

// FoundSubsequenceFunc receives one maximal run of nCommon common items
// starting at aCommon in A and bCommon in B.
type FoundSubsequenceFunc func(nCommon, aCommon, bCommon int)

// Subsequence is a run of common items reported by the engine.
type Subsequence struct {
	Count  int // number of common items, at least 1
	AStart int // start index in sequence A (inclusive)
	BStart int // start index in sequence B (inclusive)
}

// AEnd returns the exclusive end of the run in sequence A.
func (s Subsequence) AEnd() int { return s.AStart + s.Count }

// BEnd returns the exclusive end of the run in sequence B.
func (s Subsequence) BEnd() int { return s.BStart + s.Count }

// FindCommonSubsequences finds a longest common subsequence of sequences A
// and B, of lengths aLength and bLength, using the Myers O(ND) algorithm
// with divide-and-conquer bidirectional search.
//
// The sequences are only accessed through isCommon. Each maximal run of
// common items is passed to foundSubsequence, in strictly increasing order
// of both indexes. Items of A between runs are deletions and items of B
// between runs are insertions.
//
// Arguments are validated before any callback is invoked: a negative
// length or a nil callback returns an error matching ErrInvalidArgument.
// An error matching ErrNoOverlap indicates a bug in the engine. Panics in
// either callback propagate to the caller; runs already reported stand.
func FindCommonSubsequences(aLength, bLength int, isCommon IsCommonFunc, foundSubsequence FoundSubsequenceFunc) error {
	if err := validateArgs(aLength, bLength, isCommon, foundSubsequence); err != nil {
		return err
	}

	nCommonF := countCommonItemsF(0, aLength, 0, bLength, isCommon)
	if nCommonF != 0 {
		foundSubsequence(nCommonF, 0, 0)
	}
	if aLength == nCommonF && bLength == nCommonF {
		return nil
	}

	aStart := nCommonF
	bStart := nCommonF
	nCommonR := countCommonItemsR(aStart, aLength-1, bStart, bLength-1, isCommon)
	aEnd := aLength - nCommonR
	bEnd := bLength - nCommonR

	// Divide only if both sequences have items between the common prefix
	// and suffix; otherwise the middle is all insertions or all deletions.
	nCommonFR := nCommonF + nCommonR
	if aLength != nCommonFR && bLength != nCommonFR {
		e := newEngine(isCommon, foundSubsequence, min(aEnd-aStart, bEnd-bStart))
		if err := e.findSubsequences(0, aStart, aEnd, bStart, bEnd, false); err != nil {
			return err
		}
	}

	if nCommonR != 0 {
		foundSubsequence(nCommonR, aEnd, bEnd)
	}
	return nil
}

// CommonSubsequences is like FindCommonSubsequences but returns the runs
// rather than passing them to a callback.
func CommonSubsequences(aLength, bLength int, isCommon IsCommonFunc) ([]Subsequence, error) {
	var runs []Subsequence
	err := FindCommonSubsequences(aLength, bLength, isCommon, func(nCommon, aCommon, bCommon int) {
		runs = append(runs, Subsequence{Count: nCommon, AStart: aCommon, BStart: bCommon})
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
