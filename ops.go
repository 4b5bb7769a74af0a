package diffseq

// buildOps converts common runs over sequences of length n and m into
// edit operations. The items between consecutive runs become a Delete
// followed by an Insert.
func buildOps(runs []Subsequence, n, m int) []DiffOp {
	var ops []DiffOp
	i, j := 0, 0

	gap := func(aEnd, bEnd int) {
		if i < aEnd {
			ops = append(ops, DiffOp{Type: Delete, AStart: i, AEnd: aEnd, BStart: j, BEnd: j})
		}
		if j < bEnd {
			ops = append(ops, DiffOp{Type: Insert, AStart: aEnd, AEnd: aEnd, BStart: j, BEnd: bEnd})
		}
	}

	for _, r := range runs {
		gap(r.AStart, r.BStart)
		ops = append(ops, DiffOp{
			Type:   Equal,
			AStart: r.AStart,
			AEnd:   r.AEnd(),
			BStart: r.BStart,
			BEnd:   r.BEnd(),
		})
		i, j = r.AEnd(), r.BEnd()
	}
	gap(n, m)

	return ops
}

// mergeRuns drops empty runs and joins runs that are contiguous in both
// sequences.
func mergeRuns(runs []Subsequence) []Subsequence {
	if len(runs) == 0 {
		return runs
	}

	result := make([]Subsequence, 0, len(runs))
	for _, r := range runs {
		if r.Count == 0 {
			continue
		}
		if n := len(result); n > 0 {
			last := &result[n-1]
			if last.AEnd() == r.AStart && last.BEnd() == r.BStart {
				last.Count += r.Count
				continue
			}
		}
		result = append(result, r)
	}
	return result
}
