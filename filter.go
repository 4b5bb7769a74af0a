package diffseq

// Preprocessing implementation based on concepts from:
// - Neil Fraser's "Diff Strategies" (https://neil.fraser.name/writing/diff/)
//   Describes filtering high-frequency elements that make poor alignment anchors.
// - imara-diff (Apache-2.0): https://github.com/pascalkuthe/imara-diff

// indexMapping tracks how filtered indices map back to original indices.
type indexMapping struct {
	aToOrig []int // filtered A index -> original A index
	bToOrig []int // filtered B index -> original B index
}

// mapRuns converts runs over the filtered sequences back to original
// indices. A run is split wherever the original indices of its items are
// not consecutive in either sequence.
func (m *indexMapping) mapRuns(runs []Subsequence) []Subsequence {
	if m == nil {
		return runs
	}

	result := make([]Subsequence, 0, len(runs))
	for _, r := range runs {
		start := 0
		for t := 1; t <= r.Count; t++ {
			if t < r.Count &&
				m.aToOrig[r.AStart+t] == m.aToOrig[r.AStart+t-1]+1 &&
				m.bToOrig[r.BStart+t] == m.bToOrig[r.BStart+t-1]+1 {
				continue
			}
			result = append(result, Subsequence{
				Count:  t - start,
				AStart: m.aToOrig[r.AStart+start],
				BStart: m.bToOrig[r.BStart+start],
			})
			start = t
		}
	}
	return mergeRuns(result)
}

// extendRuns grows each run over equal items that filtering removed from
// either side of it, without crossing into a neighboring run.
func extendRuns(runs []Subsequence, a, b []Element) []Subsequence {
	if len(runs) == 0 {
		return runs
	}

	result := make([]Subsequence, len(runs))
	copy(result, runs)

	aLimit, bLimit := 0, 0
	for i := range result {
		r := &result[i]
		for r.AStart > aLimit && r.BStart > bLimit && a[r.AStart-1].Equal(b[r.BStart-1]) {
			r.AStart--
			r.BStart--
			r.Count++
		}

		aNext, bNext := len(a), len(b)
		if i+1 < len(result) {
			aNext, bNext = result[i+1].AStart, result[i+1].BStart
		}
		for r.AEnd() < aNext && r.BEnd() < bNext && a[r.AEnd()].Equal(b[r.BEnd()]) {
			r.Count++
		}
		aLimit, bLimit = r.AEnd(), r.BEnd()
	}
	return mergeRuns(result)
}

// elementClass indicates how an element should be treated during filtering.
type elementClass int

const (
	// keep: useful as anchor (reasonable frequency in both sequences)
	keep elementClass = iota
	// discard: definitely changed (no matches in other sequence)
	discard
	// provisional: high frequency, poor anchor but keep at boundaries
	provisional
)

// filterThreshold returns the combined frequency above which an element is
// a poor anchor.
func filterThreshold(n, m int) int {
	return max(8, 5+(n+m)/64)
}

// classify assigns a class to each element of seq given the frequencies of
// hashes in seq (own) and in the other sequence.
func classify(seq []Element, own, other map[uint64]int, threshold int) ([]elementClass, int) {
	classes := make([]elementClass, len(seq))
	kept := 0
	for i, e := range seq {
		h := e.Hash()
		switch {
		case other[h] == 0:
			classes[i] = discard
		case own[h]+other[h] > threshold:
			classes[i] = provisional
		default:
			classes[i] = keep
			kept++
		}
	}
	return classes, kept
}

func frequencies(seq []Element) map[uint64]int {
	freq := make(map[uint64]int, len(seq))
	for _, e := range seq {
		freq[e.Hash()]++
	}
	return freq
}

// filterConfusingElements removes elements that cannot match and
// high-frequency elements that cause spurious matches. It returns the
// filtered sequences and a mapping to convert indices back, or the inputs
// and a nil mapping when filtering would not help.
func filterConfusingElements(a, b []Element) ([]Element, []Element, *indexMapping) {
	if len(a) == 0 || len(b) == 0 {
		return a, b, nil
	}

	aFreq := frequencies(a)
	bFreq := frequencies(b)
	threshold := filterThreshold(len(a), len(b))

	aClass, aKept := classify(a, aFreq, bFreq, threshold)
	bClass, bKept := classify(b, bFreq, aFreq, threshold)

	// Skip filtering when most elements are good anchors.
	if aKept+bKept > (len(a)+len(b))*3/4 {
		return a, b, nil
	}

	filteredA, aToOrig := filterSequence(a, aClass)
	filteredB, bToOrig := filterSequence(b, bClass)

	if len(filteredA) == 0 && len(filteredB) == 0 {
		return a, b, nil
	}

	return filteredA, filteredB, &indexMapping{aToOrig: aToOrig, bToOrig: bToOrig}
}

// filterSequence filters a sequence based on element classes.
// Provisional elements are kept only next to a keep element.
func filterSequence(elems []Element, classes []elementClass) ([]Element, []int) {
	result := make([]Element, 0, len(elems))
	toOrig := make([]int, 0, len(elems))

	for i, class := range classes {
		switch class {
		case keep:
		case provisional:
			prevKeep := i > 0 && classes[i-1] == keep
			nextKeep := i < len(classes)-1 && classes[i+1] == keep
			if !prevKeep && !nextKeep {
				continue
			}
		default:
			continue
		}
		result = append(result, elems[i])
		toOrig = append(toOrig, i)
	}

	return result, toOrig
}
