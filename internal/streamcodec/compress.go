// Package streamcodec orchestrates full compression and decompression: it
// counts frequencies, materialises a code table from a codetree.Tree, emits
// the header with its padding patch-up, and emits the payload; then
// reverses all of it. Nothing here blocks or performs I/O — it transforms
// one in-memory byte buffer into another.
package streamcodec

import (
	"github.com/scigolib/compressor/internal/bitio"
	"github.com/scigolib/compressor/internal/codetree"
	"github.com/scigolib/compressor/internal/treebuilder"
)

// headerPaddingBits is the number of placeholder bits reserved at the start
// of every artifact for the padding count.
const headerPaddingBits = 3

// Compress builds a self-describing compressed artifact from data. Empty
// input produces the minimum valid artifact: a one-leaf placeholder tree
// and no payload.
func Compress(data []byte) []byte {
	tree := buildByteTree(data)
	table := codeTable(tree)

	w := bitio.NewWriter()
	for i := 0; i < headerPaddingBits; i++ {
		w.WriteBit(false)
	}
	codetree.SaveBits(tree, w, byteCodec{})

	for _, b := range data {
		w.WriteBits(table[b])
	}

	out, padding := w.Bytes()
	out[0] = patchPaddingByte(out[0], padding)
	return out
}

// buildByteTree constructs the byte-keyed code tree for data, applying two
// edge-case fixes:
//
//   - empty input has no frequency table, so a one-leaf placeholder tree
//     (byte 0, never referenced by any payload bit) is used instead;
//   - a single distinct byte would otherwise produce a one-leaf tree whose
//     code is the empty route, which the decoder cannot make progress on
//     for a non-empty payload. The encoder promotes it to a two-leaf tree
//     carrying the same byte on both leaves, so every occurrence still
//     costs exactly one bit.
func buildByteTree(data []byte) *codetree.Tree[byte] {
	freqs := treebuilder.CountUses(data)

	if len(freqs) == 0 {
		return codetree.New[byte](0)
	}

	freqTree := treebuilder.BuildTree(freqs)
	if freqTree.NumLeaves() == 1 {
		freqTree.AddLeaf(freqs[0], bitio.NewReader([]bool{true}))
	}

	return codetree.MapValues(freqTree, func(f treebuilder.Freq) byte { return f.Byte })
}

// codeTable flattens a byte-keyed tree's leaves into a byte->route map. If
// the tree carries the same byte on more than one leaf (the single-symbol
// promotion above), the last leaf encountered wins; decoding either route
// still yields the same byte, so the choice has no effect on correctness.
func codeTable(tree *codetree.Tree[byte]) map[byte][]bool {
	table := make(map[byte][]bool)
	for _, leaf := range tree.Leaves() {
		table[leaf.Value] = leaf.Route
	}
	return table
}

// patchPaddingByte overwrites the low 3 bits of the artifact's first byte
// (LSB-first) with the padding count, leaving the rest of the byte
// untouched.
func patchPaddingByte(first byte, padding int) byte {
	first &^= 0x07
	first |= byte(padding) & 0x07
	return first
}
