package rdft1d

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the DFT engine.
var (
	// ErrInvalidLength is returned when n < 1 at construction. A buffer
	// shorter than offset+n at transform time is reported as
	// ErrLengthMismatch, which wraps ErrInvalidLength.
	ErrInvalidLength = errors.New("rdft1d: invalid transform length")

	// ErrTooLarge reports a length beyond the indexable range of the buffer
	// type. Buffers here are int-indexed with no large-array backing store,
	// and no code path in this package returns it.
	ErrTooLarge = errors.New("rdft1d: length exceeds indexable range")

	// ErrNotRepresentable is returned at construction when n is so large
	// that the Bluestein padded length n_blue would overflow.
	ErrNotRepresentable = errors.New("rdft1d: length not representable by this engine")

	// ErrInternal is returned when a chunked worker task fails. Unlike the
	// legacy behavior of logging and continuing, this engine always
	// surfaces the failure to the caller.
	ErrInternal = errors.New("rdft1d: internal worker failure")

	// ErrNilBuffer is returned when a nil buffer is passed to a transform.
	ErrNilBuffer = errors.New("rdft1d: nil buffer")

	// ErrLengthMismatch is returned when the buffer is too short for the
	// requested offset and transform length (or the offset is negative).
	// It wraps ErrInvalidLength, so errors.Is(err, ErrInvalidLength) holds.
	ErrLengthMismatch = fmt.Errorf("%w: buffer too short for offset and length", ErrInvalidLength)
)
