package diffseq

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidArgument is returned, before any callback runs, when a
	// length is negative or too large or a callback is nil.
	ErrInvalidArgument = errors.New("diffseq: invalid argument")

	// ErrNoOverlap is returned when the bidirectional search exhausts the
	// maximum edit distance of a sub-problem without the forward and reverse
	// paths meeting. It indicates a bug in the engine, not a caller error.
	ErrNoOverlap = errors.New("diffseq: no overlap")
)

// maxSafeLength is the largest length accepted for either sequence.
const maxSafeLength = 1<<53 - 1

func validateLength(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s value %d is a negative integer", ErrInvalidArgument, name, n)
	}
	if int64(n) > maxSafeLength {
		return fmt.Errorf("%w: %s value %d is not a safe integer", ErrInvalidArgument, name, n)
	}
	return nil
}

func validateArgs(aLength, bLength int, isCommon IsCommonFunc, foundSubsequence FoundSubsequenceFunc) error {
	errs := &errors.M{}
	errs.Append(validateLength("aLength", aLength))
	errs.Append(validateLength("bLength", bLength))
	if isCommon == nil {
		errs.Append(fmt.Errorf("%w: isCommon is nil", ErrInvalidArgument))
	}
	if foundSubsequence == nil {
		errs.Append(fmt.Errorf("%w: foundSubsequence is nil", ErrInvalidArgument))
	}
	return errs.Err()
}

func noOverlap(aStart, aEnd, bStart, bEnd int) error {
	return fmt.Errorf("%w: aStart=%d aEnd=%d bStart=%d bEnd=%d", ErrNoOverlap, aStart, aEnd, bStart, bEnd)
}
