package diffseq

// division holds the result of dividing a sub-problem at its middle change.
// It describes the interval preceding the middle change, up to two common
// runs adjacent to it, and the interval following it.
type division struct {
	nChangePreceding int // edits within the preceding interval
	aEndPreceding    int // exclusive end of the preceding interval in A
	bEndPreceding    int // exclusive end of the preceding interval in B

	nCommonPreceding int // length of the common run ending at the middle change
	aCommonPreceding int
	bCommonPreceding int

	nCommonFollowing int // length of the common run starting after the middle change
	aCommonFollowing int
	bCommonFollowing int

	nChangeFollowing int // edits within the following interval
	aStartFollowing  int // start of the following interval in A
	bStartFollowing  int // start of the following interval in B
}

// callbacks pairs the predicate and sink for one orientation of the input.
type callbacks struct {
	isCommon         IsCommonFunc
	foundSubsequence FoundSubsequenceFunc
}

// engine holds the state shared by every recursive division of one
// top-level call.
type engine struct {
	oriented [2]callbacks // as supplied, and with A and B transposed

	// Frontier arrays sized for the shorter side of the unresolved region.
	// Every sub-problem is no larger, so they are reused without growing.
	aIndexesF []int
	aIndexesR []int
}

func newEngine(isCommon IsCommonFunc, foundSubsequence FoundSubsequenceFunc, maxLength int) *engine {
	buf := make([]int, 2*(maxLength+1))
	return &engine{
		oriented: [2]callbacks{
			{isCommon: isCommon, foundSubsequence: foundSubsequence},
			{
				isCommon: func(bIndex, aIndex int) bool {
					return isCommon(aIndex, bIndex)
				},
				foundSubsequence: func(nCommon, bCommon, aCommon int) {
					foundSubsequence(nCommon, aCommon, bCommon)
				},
			},
		},
		aIndexesF: buf[:maxLength+1 : maxLength+1],
		aIndexesR: buf[maxLength+1:],
	}
}

// divide finds the middle change of a[aStart:aEnd] and b[bStart:bEnd] by
// extending forward and reverse paths until they overlap. nChange is the
// number of edits already known for the sub-problem, or 0 if unknown.
//
// a must be no longer than b, and the sub-problem must not begin or end
// with common items.
func (e *engine) divide(nChange, aStart, aEnd, bStart, bEnd int, isCommon IsCommonFunc) (division, error) {
	bF := bStart - aStart
	bR := bEnd - aEnd
	aLength := aEnd - aStart
	bLength := bEnd - bStart

	// Edits have the same parity as the delta, which decides whether
	// overlap is checked on forward or reverse steps.
	baDeltaLength := bLength - aLength

	iMaxF := aLength
	iMaxR := aLength

	aIndexesF, aIndexesR := e.aIndexesF, e.aIndexesR
	aIndexesF[0] = aStart - 1
	aIndexesR[0] = aEnd

	if nChange == 0 {
		nChange = baDeltaLength
	}

	if baDeltaLength%2 == 0 {
		// The number of changes in paths from the start and the end is
		// the same: d forward, d reverse.
		dMin := nChange / 2
		dMax := (aLength + bLength) / 2
		for d := 1; d <= dMax; d++ {
			iMaxF = extendPathsF(d, aEnd, bEnd, bF, isCommon, aIndexesF, iMaxF)
			if d < dMin {
				iMaxR = extendPathsR(d, aStart, bStart, bR, isCommon, aIndexesR, iMaxR)
			} else if div, ok := extendOverlappablePathsR(d, aStart, aEnd, bStart, bEnd, isCommon,
				aIndexesF, iMaxF, aIndexesR, iMaxR); ok {
				return div, nil
			}
		}
	} else {
		// The number of changes in paths from the start is one more than
		// from the end: d forward, d-1 reverse.
		dMin := (nChange + 1) / 2
		dMax := (aLength + bLength + 1) / 2

		d := 1
		iMaxF = extendPathsF(d, aEnd, bEnd, bF, isCommon, aIndexesF, iMaxF)
		for d++; d <= dMax; d++ {
			iMaxR = extendPathsR(d-1, aStart, bStart, bR, isCommon, aIndexesR, iMaxR)
			if d < dMin {
				iMaxF = extendPathsF(d, aEnd, bEnd, bF, isCommon, aIndexesF, iMaxF)
			} else if div, ok := extendOverlappablePathsF(d, aStart, aEnd, bStart, bEnd, isCommon,
				aIndexesF, iMaxF, aIndexesR, iMaxR); ok {
				return div, nil
			}
		}
	}
	return division{}, noOverlap(aStart, aEnd, bStart, bEnd)
}

// findSubsequences divides a[aStart:aEnd] and b[bStart:bEnd] and recurses
// into the preceding and following intervals, reporting common runs in
// order. transposed records whether a and b are swapped relative to the
// caller's orientation.
func (e *engine) findSubsequences(nChange, aStart, aEnd, bStart, bEnd int, transposed bool) error {
	if bEnd-bStart < aEnd-aStart {
		transposed = !transposed
		aStart, bStart = bStart, aStart
		aEnd, bEnd = bEnd, aEnd
	}
	cb := e.oriented[0]
	if transposed {
		cb = e.oriented[1]
	}

	div, err := e.divide(nChange, aStart, aEnd, bStart, bEnd, cb.isCommon)
	if err != nil {
		return err
	}

	if aStart < div.aEndPreceding && bStart < div.bEndPreceding {
		if err := e.findSubsequences(div.nChangePreceding, aStart, div.aEndPreceding, bStart, div.bEndPreceding, transposed); err != nil {
			return err
		}
	}

	if div.nCommonPreceding != 0 {
		cb.foundSubsequence(div.nCommonPreceding, div.aCommonPreceding, div.bCommonPreceding)
	}
	if div.nCommonFollowing != 0 {
		cb.foundSubsequence(div.nCommonFollowing, div.aCommonFollowing, div.bCommonFollowing)
	}

	if div.aStartFollowing < aEnd && div.bStartFollowing < bEnd {
		return e.findSubsequences(div.nChangeFollowing, div.aStartFollowing, aEnd, div.bStartFollowing, bEnd, transposed)
	}
	return nil
}
