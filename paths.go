package diffseq

// Path extension for the bidirectional search.
//
// Algorithm source: Myers 1986, "An O(ND) Difference Algorithm and Its Variations"
// http://www.xmailserver.org/diff2.pdf
//
// Frontier arrays are indexed by position along the diagonals reached so
// far, not by diagonal number: slot i of the forward array holds the last
// index into A reached on diagonal k = -d + 2i, slot i of the reverse array
// the first index into A reached on diagonal k = d - 2i. Indexes into B are
// derived from the diagonal, so only A indexes are stored.

// countCommonItemsF returns the number of common items walking forward from
// (aIndex, bIndex), stopping at aEnd or bEnd.
func countCommonItemsF(aIndex, aEnd, bIndex, bEnd int, isCommon IsCommonFunc) int {
	nCommon := 0
	for aIndex < aEnd && bIndex < bEnd && isCommon(aIndex, bIndex) {
		aIndex++
		bIndex++
		nCommon++
	}
	return nCommon
}

// countCommonItemsR returns the number of common items walking backward from
// (aIndex, bIndex), stopping before aStart or bStart.
func countCommonItemsR(aStart, aIndex, bStart, bIndex int, isCommon IsCommonFunc) int {
	nCommon := 0
	for aStart <= aIndex && bStart <= bIndex && isCommon(aIndex, bIndex) {
		aIndex--
		bIndex--
		nCommon++
	}
	return nCommon
}

// extendPathsF extends the forward paths from d-1 to d changes. It returns
// the new maximum slot index, which shrinks once paths reach the end of A.
func extendPathsF(d, aEnd, bEnd, bF int, isCommon IsCommonFunc, aIndexesF []int, iMaxF int) int {
	kF := -d
	aFirst := aIndexesF[0]
	aIndexPrev1 := aFirst
	aIndexesF[0] += countCommonItemsF(aFirst+1, aEnd, bF+aFirst-kF+1, bEnd, isCommon)

	nF := min(d, iMaxF)
	for iF, kF := 1, kF+2; iF <= nF; iF, kF = iF+1, kF+2 {
		if iF != d && aIndexPrev1 < aIndexesF[iF] {
			// Insert from B: same A index on the next diagonal.
			aFirst = aIndexesF[iF]
		} else {
			// Delete from A.
			aFirst = aIndexPrev1 + 1
			if aEnd <= aFirst {
				return iF - 1
			}
		}
		aIndexPrev1 = aIndexesF[iF]
		aIndexesF[iF] = aFirst + countCommonItemsF(aFirst+1, aEnd, bF+aFirst-kF+1, bEnd, isCommon)
	}
	return iMaxF
}

// extendPathsR extends the reverse paths from d-1 to d changes. It returns
// the new maximum slot index, which shrinks once paths reach the start of A.
func extendPathsR(d, aStart, bStart, bR int, isCommon IsCommonFunc, aIndexesR []int, iMaxR int) int {
	kR := d
	aFirst := aIndexesR[0]
	aIndexPrev1 := aFirst
	aIndexesR[0] -= countCommonItemsR(aStart, aFirst-1, bStart, bR+aFirst-kR-1, isCommon)

	nR := min(d, iMaxR)
	for iR, kR := 1, kR-2; iR <= nR; iR, kR = iR+1, kR-2 {
		if iR != d && aIndexesR[iR] < aIndexPrev1 {
			aFirst = aIndexesR[iR]
		} else {
			aFirst = aIndexPrev1 - 1
			if aFirst < aStart {
				return iR - 1
			}
		}
		aIndexPrev1 = aIndexesR[iR]
		aIndexesR[iR] = aFirst - countCommonItemsR(aStart, aFirst-1, bStart, bR+aFirst-kR-1, isCommon)
	}
	return iMaxR
}

// extendOverlappablePathsF extends the forward paths to d changes and
// reports the division of the sub-problem at the first forward path that
// overlaps a reverse path of d-1 changes. Used when the length delta is odd.
func extendOverlappablePathsF(
	d, aStart, aEnd, bStart, bEnd int,
	isCommon IsCommonFunc,
	aIndexesF []int, iMaxF int,
	aIndexesR []int, iMaxR int,
) (division, bool) {
	bF := bStart - aStart
	baDeltaLength := (bEnd - bStart) - (aEnd - aStart)

	// Diagonals on which a forward path can meet a reverse path.
	kMinOverlapF := -baDeltaLength - (d - 1)
	kMaxOverlapF := -baDeltaLength + (d - 1)

	aIndexPrev1 := 0
	nF := min(d, iMaxF)
	for iF, kF := 0, -d; iF <= nF; iF, kF = iF+1, kF+2 {
		insert := iF == 0 || (iF != d && aIndexPrev1 < aIndexesF[iF])
		aLastPrev := aIndexPrev1
		if insert {
			aLastPrev = aIndexesF[iF]
		}
		aFirst := aLastPrev + 1
		if insert {
			aFirst = aLastPrev
		}

		bFirst := bF + aFirst - kF
		nCommonF := countCommonItemsF(aFirst+1, aEnd, bFirst+1, bEnd, isCommon)
		aLast := aFirst + nCommonF

		aIndexPrev1 = aIndexesF[iF]
		aIndexesF[iF] = aLast

		if kF < kMinOverlapF || kMaxOverlapF < kF {
			continue
		}
		iR := (d - 1 - (kF + baDeltaLength)) / 2
		if iR > iMaxR || aLast < aIndexesR[iR]-1 {
			continue
		}

		// The last point of the previous path segment is on an adjacent
		// diagonal. Intervals preceding the middle change cannot end with
		// common items, so walk back along the diagonal of common items.
		bLastPrev := bF + aLastPrev - (kF - 1)
		if insert {
			bLastPrev = bF + aLastPrev - (kF + 1)
		}
		nCommonR := countCommonItemsR(aStart, aLastPrev, bStart, bLastPrev, isCommon)
		aEndPreceding := aLastPrev - nCommonR + 1
		bEndPreceding := bLastPrev - nCommonR + 1

		div := division{
			nChangePreceding: d - 1,
			aEndPreceding:    aEndPreceding,
			bEndPreceding:    bEndPreceding,
			nCommonPreceding: nCommonR,
			nCommonFollowing: nCommonF,
			nChangeFollowing: d - 1,
		}
		if d-1 == aEndPreceding+bEndPreceding-aStart-bStart {
			// All preceding changes are in the preceding interval.
			div.aEndPreceding = aStart
			div.bEndPreceding = bStart
		}
		if nCommonR != 0 {
			div.aCommonPreceding = aEndPreceding
			div.bCommonPreceding = bEndPreceding
		}
		if nCommonF != 0 {
			div.aCommonFollowing = aFirst + 1
			div.bCommonFollowing = bFirst + 1
		}

		aStartFollowing := aLast + 1
		bStartFollowing := bFirst + nCommonF + 1
		if d-1 == aEnd+bEnd-aStartFollowing-bStartFollowing {
			div.aStartFollowing = aEnd
			div.bStartFollowing = bEnd
		} else {
			div.aStartFollowing = aStartFollowing
			div.bStartFollowing = bStartFollowing
		}
		return div, true
	}
	return division{}, false
}

// extendOverlappablePathsR extends the reverse paths to d changes and
// reports the division of the sub-problem at the first reverse path that
// overlaps a forward path of d changes. Used when the length delta is even.
func extendOverlappablePathsR(
	d, aStart, aEnd, bStart, bEnd int,
	isCommon IsCommonFunc,
	aIndexesF []int, iMaxF int,
	aIndexesR []int, iMaxR int,
) (division, bool) {
	bR := bEnd - aEnd
	baDeltaLength := (bEnd - bStart) - (aEnd - aStart)

	kMinOverlapR := baDeltaLength - d
	kMaxOverlapR := baDeltaLength + d

	aIndexPrev1 := 0
	nR := min(d, iMaxR)
	for iR, kR := 0, d; iR <= nR; iR, kR = iR+1, kR-2 {
		insert := iR == 0 || (iR != d && aIndexesR[iR] < aIndexPrev1)
		aLastPrev := aIndexPrev1
		if insert {
			aLastPrev = aIndexesR[iR]
		}
		aFirst := aLastPrev - 1
		if insert {
			aFirst = aLastPrev
		}

		bFirst := bR + aFirst - kR
		nCommonR := countCommonItemsR(aStart, aFirst-1, bStart, bFirst-1, isCommon)
		aLast := aFirst - nCommonR

		aIndexPrev1 = aIndexesR[iR]
		aIndexesR[iR] = aLast

		if kR < kMinOverlapR || kMaxOverlapR < kR {
			continue
		}
		iF := (d + (kR - baDeltaLength)) / 2
		if iF > iMaxF || aIndexesF[iF] < aLast-1 {
			continue
		}

		bLast := bFirst - nCommonR
		div := division{
			nChangePreceding: d,
			aEndPreceding:    aLast,
			bEndPreceding:    bLast,
			nCommonPreceding: nCommonR,
			nChangeFollowing: d - 1,
		}
		if d == aLast+bLast-aStart-bStart {
			// All preceding changes are in the preceding interval.
			div.aEndPreceding = aStart
			div.bEndPreceding = bStart
		}
		if nCommonR != 0 {
			div.aCommonPreceding = aLast
			div.bCommonPreceding = bLast
		}

		if d == 1 {
			// There is no previous path segment.
			div.aStartFollowing = aEnd
			div.bStartFollowing = bEnd
			return div, true
		}

		// The last point of the previous path segment is on an adjacent
		// diagonal. Intervals following the middle change cannot start with
		// common items, so walk forward along the diagonal of common items.
		bLastPrev := bR + aLastPrev - (kR + 1)
		if insert {
			bLastPrev = bR + aLastPrev - (kR - 1)
		}
		nCommonF := countCommonItemsF(aLastPrev, aEnd, bLastPrev, bEnd, isCommon)
		div.nCommonFollowing = nCommonF
		if nCommonF != 0 {
			div.aCommonFollowing = aLastPrev
			div.bCommonFollowing = bLastPrev
		}

		aStartFollowing := aLastPrev + nCommonF
		bStartFollowing := bLastPrev + nCommonF
		if d-1 == aEnd+bEnd-aStartFollowing-bStartFollowing {
			div.aStartFollowing = aEnd
			div.bStartFollowing = bEnd
		} else {
			div.aStartFollowing = aStartFollowing
			div.bStartFollowing = bStartFollowing
		}
		return div, true
	}
	return division{}, false
}
