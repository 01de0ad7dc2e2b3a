package streamcodec

import (
	"github.com/scigolib/compressor/internal/bitio"
)

// byteCodec serialises a codetree leaf payload as a single MSB-first octet.
type byteCodec struct{}

func (byteCodec) Encode(w *bitio.Writer, v byte) {
	w.WriteOctet(v)
}

func (byteCodec) Decode(r *bitio.Reader) (byte, error) {
	return r.ReadOctet()
}
