// Package compressor provides a pure Go implementation of a byte-oriented
// lossless compressor and decompressor. Each distinct byte value in the
// input is assigned a variable-length binary code derived from a binary
// tree built by a greedy, deliberately suboptimal heuristic; the tree
// itself travels in the compressed stream's header so decompression needs
// no side information beyond the compressed bytes themselves.
package compressor

import "github.com/scigolib/compressor/internal/streamcodec"

// Compress encodes data into a self-describing compressed artifact. Input
// may be empty; the result always decodes back to exactly the same bytes.
func Compress(data []byte) []byte {
	return streamcodec.Compress(data)
}

// Decompress reverses Compress. It returns an error if data is not a valid
// artifact produced by Compress — truncated, or otherwise malformed.
func Decompress(data []byte) ([]byte, error) {
	return streamcodec.Decompress(data)
}
