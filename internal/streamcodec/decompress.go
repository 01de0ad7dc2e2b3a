package streamcodec

import (
	"github.com/scigolib/compressor/internal/bitio"
	"github.com/scigolib/compressor/internal/codec"
	"github.com/scigolib/compressor/internal/codetree"
)

// Decompress reverses Compress: it reads the padding count, rebuilds the
// code tree, and replays codes from the remaining payload bits until they
// are exhausted. The decoder state machine is ReadPadding -> ReadTree ->
// ReadPayload -> Done.
func Decompress(data []byte) ([]byte, error) {
	r := bitio.NewReaderFromBytes(data)

	padding, err := readPadding(r)
	if err != nil {
		return nil, codec.Wrap("read padding", err)
	}

	tree, err := codetree.FromBits(r, byteCodec{})
	if err != nil {
		return nil, codec.Wrap("read tree", err)
	}

	totalBits := len(data) * 8
	remaining := totalBits - padding - r.Pos()
	if remaining < 0 {
		return nil, codec.Wrap("compute payload length", codec.ErrTruncatedStream)
	}

	payload, err := r.Take(remaining)
	if err != nil {
		return nil, codec.Wrap("take payload bits", err)
	}

	out := make([]byte, 0, remaining/8)
	for payload.Remaining() > 0 {
		v, ok := tree.GetLeaf(payload)
		if !ok {
			return nil, codec.Wrap("decode payload", codec.ErrPayloadOverrun)
		}
		out = append(out, *v)
	}

	return out, nil
}

// readPadding consumes the three header bits and reassembles the padding
// count, bit 0 the least significant.
func readPadding(r *bitio.Reader) (int, error) {
	padding := 0
	for i := 0; i < headerPaddingBits; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if b {
			padding |= 1 << uint(i)
		}
	}
	return padding, nil
}
