package diffseq

import (
	"strings"
)

// Boundary shifting preferences (higher = more preferred)
const (
	// blankLineBonus is the score bonus for keeping a blank line as a separator
	blankLineBonus = 10
	// startOfLineBonus is added when a change starts at the beginning of content
	startOfLineBonus = 3
	// endOfLineBonus is added when a change ends at the end of content
	endOfLineBonus = 3
	// punctuationBonus is added when boundary is at punctuation
	punctuationBonus = 2
)

// shiftBoundaries adjusts the placement of pure insertions and deletions
// for readability. A block of changed items that sits between two runs can
// often slide forward or backward over equal items without changing the
// number of edits; the position with the best scoreBoundary wins, and ties
// keep the current placement. It returns the adjusted runs and the number
// of blocks that moved.
func shiftBoundaries(runs []Subsequence, a, b []Element) ([]Subsequence, int) {
	if len(runs) == 0 {
		return runs, 0
	}

	// Empty runs at both ends put a run on each side of every gap.
	rs := make([]Subsequence, 0, len(runs)+2)
	rs = append(rs, Subsequence{})
	rs = append(rs, runs...)
	rs = append(rs, Subsequence{AStart: len(a), BStart: len(b)})

	shifted := 0
	for i := 1; i < len(rs); i++ {
		prev, next := &rs[i-1], &rs[i]
		aGap := next.AStart - prev.AEnd()
		bGap := next.BStart - prev.BEnd()

		var s int
		switch {
		case aGap > 0 && bGap == 0:
			s = bestShift(prev, next, prev.AEnd(), next.AStart, a)
		case bGap > 0 && aGap == 0:
			s = bestShift(prev, next, prev.BEnd(), next.BStart, b)
		}
		if s == 0 {
			continue
		}
		prev.Count += s
		next.AStart += s
		next.BStart += s
		next.Count -= s
		shifted++
	}

	// The end runs stay empty unless a block slid over them.
	return mergeRuns(rs), shifted
}

// bestShift returns how far the changed block [start, end) of seq, lying
// between runs prev and next, should move. A forward shift of s moves the
// first s pairs of next onto the end of prev; a backward shift moves the
// last pairs of prev onto the start of next. The block content must repeat
// for the moved pairs to stay common.
func bestShift(prev, next *Subsequence, start, end int, seq []Element) int {
	maxForward := 0
	for maxForward < next.Count && seq[start+maxForward].Equal(seq[end+maxForward]) {
		maxForward++
	}

	maxBackward := 0
	for maxBackward < prev.Count && seq[end-1-maxBackward].Equal(seq[start-1-maxBackward]) {
		maxBackward++
	}

	if maxForward == 0 && maxBackward == 0 {
		return 0
	}

	best := 0
	bestScore := scoreBoundary(start, end, seq)

	for shift := 1; shift <= maxForward; shift++ {
		if score := scoreBoundary(start+shift, end+shift, seq); score > bestScore {
			bestScore = score
			best = shift
		}
	}

	for shift := 1; shift <= maxBackward; shift++ {
		if score := scoreBoundary(start-shift, end-shift, seq); score > bestScore {
			bestScore = score
			best = -shift
		}
	}

	return best
}

// scoreBoundary scores a boundary position based on readability heuristics.
// Higher scores indicate better boundary positions.
func scoreBoundary(start, end int, elems []Element) int {
	score := 0

	// Bonus for blank lines around the change region
	if start > 0 && isBlank(elems[start-1]) {
		score += blankLineBonus
	}
	if end < len(elems) && isBlank(elems[end]) {
		score += blankLineBonus
	}

	if start == 0 {
		score += startOfLineBonus
	}
	if end == len(elems) {
		score += endOfLineBonus
	}

	if start > 0 && endsWithPunctuation(elems[start-1]) {
		score += punctuationBonus
	}
	if end < len(elems) && startsWithPunctuation(elems[end]) {
		score += punctuationBonus
	}

	return score
}

// isBlank checks if an element represents blank/whitespace content.
func isBlank(e Element) bool {
	s, ok := e.(StringElement)
	if !ok {
		return false
	}
	return strings.TrimSpace(string(s)) == ""
}

// endsWithPunctuation checks if an element ends with sentence punctuation.
func endsWithPunctuation(e Element) bool {
	s, ok := e.(StringElement)
	if !ok {
		return false
	}
	str := strings.TrimSpace(string(s))
	if len(str) == 0 {
		return false
	}
	return strings.ContainsRune(".!?:;", rune(str[len(str)-1]))
}

// startsWithPunctuation checks if an element starts with a list, heading
// or quote marker.
func startsWithPunctuation(e Element) bool {
	s, ok := e.(StringElement)
	if !ok {
		return false
	}
	str := strings.TrimSpace(string(s))
	if len(str) == 0 {
		return false
	}
	return strings.ContainsRune("-*#>", rune(str[0]))
}
