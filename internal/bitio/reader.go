package bitio

import (
	"errors"

	"github.com/scigolib/compressor/internal/codec"
)

// ErrZeroValue is returned by WriteUvarint when asked to encode the value
// zero, which this self-delimiting format cannot represent.
var ErrZeroValue = errors.New("bitio: self-delimiting integer undefined for 0")

// Reader consumes bits sequentially from a fixed bit sequence.
type Reader struct {
	bits []bool
	pos  int
}

// NewReader wraps an existing bit sequence for sequential consumption.
func NewReader(bits []bool) *Reader {
	return &Reader{bits: bits}
}

// NewReaderFromBytes unpacks data LSB-first into a bit sequence and returns
// a Reader over all of it, padding included; callers that know the padding
// count should stop reading that many bits early.
func NewReaderFromBytes(data []byte) *Reader {
	out := make([]bool, len(data)*8)
	for i := range data {
		for j := 0; j < 8; j++ {
			out[i*8+j] = (data[i]>>uint(j))&1 == 1
		}
	}
	return NewReader(out)
}

// ReadBit consumes and returns the next bit, or codec.ErrTruncatedStream if
// the source is exhausted.
func (r *Reader) ReadBit() (bool, error) {
	if r.pos >= len(r.bits) {
		return false, codec.ErrTruncatedStream
	}
	b := r.bits[r.pos]
	r.pos++
	return b, nil
}

// ReadOctet consumes 8 bits, most significant bit first, and assembles them
// into a byte.
func (r *Reader) ReadOctet() (byte, error) {
	var v byte
	for i := 0; i < 8; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, codec.Wrap("read octet", err)
		}
		v <<= 1
		if b {
			v |= 1
		}
	}
	return v, nil
}

// ReadUvarint decodes a self-delimiting unsigned integer: it consumes bits
// until the first true (the unary length terminator), then the remaining
// low bits of the value.
func (r *Reader) ReadUvarint() (uint64, error) {
	length := 1
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, codec.Wrap("read uvarint length prefix", err)
		}
		if b {
			break
		}
		length++
	}
	if length == 1 {
		return 1, nil
	}
	n := uint64(1)
	for i := 0; i < length-1; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return 0, codec.Wrap("read uvarint payload", err)
		}
		n <<= 1
		if b {
			n |= 1
		}
	}
	return n, nil
}

// Remaining reports how many bits are left unconsumed.
func (r *Reader) Remaining() int {
	return len(r.bits) - r.pos
}

// Pos reports the number of bits already consumed.
func (r *Reader) Pos() int {
	return r.pos
}

// Take carves off the next n bits as an independent Reader and advances
// past them, without exposing them to further reads through r. Used by the
// stream decoder to bound payload decoding to exactly the declared number
// of remaining bits, excluding trailing padding.
func (r *Reader) Take(n int) (*Reader, error) {
	if n < 0 || r.pos+n > len(r.bits) {
		return nil, codec.ErrTruncatedStream
	}
	sub := NewReader(r.bits[r.pos : r.pos+n])
	r.pos += n
	return sub, nil
}
