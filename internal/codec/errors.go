// Package codec defines the error taxonomy shared by the compressor's core
// packages (bitio, codetree, streamcodec). It holds no codec state of its
// own.
package codec

import (
	"errors"
	"fmt"
)

// ErrTruncatedStream is returned when the bit source is exhausted at a point
// where more bits were required: in the padding header, mid-integer,
// mid-octet, or mid-tree. Running out of payload bits mid-descent is
// reported as ErrPayloadOverrun instead.
var ErrTruncatedStream = errors.New("compressor: truncated stream")

// ErrMalformedTree is returned when a tree header violates the shape
// grammar. Reserved for future tag extensions; the current grammar cannot
// produce this error on its own.
var ErrMalformedTree = errors.New("compressor: malformed tree")

// ErrPayloadOverrun is returned when the decoder has consumed every declared
// payload bit but is still mid-descent inside the code tree.
var ErrPayloadOverrun = errors.New("compressor: payload overrun")

// Wrap attaches context to a sentinel error while preserving it for
// errors.Is / errors.As.
func Wrap(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, cause)
}
