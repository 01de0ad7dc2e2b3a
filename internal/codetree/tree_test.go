package codetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/compressor/internal/bitio"
)

// byteCodec is a minimal PayloadCodec[byte] used only by these tests; the
// real one-octet-per-leaf codec used by the compressor lives in streamcodec.
type byteCodec struct{}

func (byteCodec) Encode(w *bitio.Writer, v byte) { w.WriteOctet(v) }
func (byteCodec) Decode(r *bitio.Reader) (byte, error) {
	return r.ReadOctet()
}

// TestLeaves_CanonicalTree builds a 5-leaf tree shaped like so:
//
//	        O
//	      _/ \_
//	     O     O
//	    / \   / \
//	   1   O 4   5
//	      / \
//	     2   3
func TestLeaves_CanonicalTree(t *testing.T) {
	tree := New[byte](3)
	// Build via explicit route sequences so the final shape matches
	// ((1,(2,3)),(4,5)) exactly.
	seqs := [][]bool{
		{true},
		{false, false},
		{false, true, false},
		{true, true},
	}
	vals := []byte{4, 1, 2, 5}
	for i, v := range vals {
		_, ok := tree.AddLeaf(v, bitio.NewReader(seqs[i]))
		require.True(t, ok)
	}

	got := tree.Leaves()
	require.Len(t, got, 5)

	want := []Leaf[byte]{
		{Value: 1, Route: []bool{false, false}},
		{Value: 2, Route: []bool{false, true, false}},
		{Value: 3, Route: []bool{false, true, true}},
		{Value: 4, Route: []bool{true, false}},
		{Value: 5, Route: []bool{true, true}},
	}
	assert.Equal(t, want, got)
}

func buildCanonical(t *testing.T) *Tree[byte] {
	t.Helper()
	tree := New[byte](3)
	seqs := [][]bool{
		{true},
		{false, false},
		{false, true, false},
		{true, true},
	}
	vals := []byte{4, 1, 2, 5}
	for i, v := range vals {
		_, ok := tree.AddLeaf(v, bitio.NewReader(seqs[i]))
		require.True(t, ok)
	}
	return tree
}

func TestGetLeaf_CanonicalTree(t *testing.T) {
	tree := buildCanonical(t)

	r1 := bitio.NewReader([]bool{false, true, false})
	v, ok := tree.GetLeaf(r1)
	require.True(t, ok)
	assert.Equal(t, byte(2), *v)
	assert.Equal(t, 0, r1.Remaining())

	r2 := bitio.NewReader([]bool{false, false, false})
	v, ok = tree.GetLeaf(r2)
	require.True(t, ok)
	assert.Equal(t, byte(1), *v)
	assert.Equal(t, 1, r2.Remaining())

	r3 := bitio.NewReader([]bool{false, true})
	_, ok = tree.GetLeaf(r3)
	assert.False(t, ok)
}

func TestAddLeaf_GrowsLeafCount(t *testing.T) {
	tree := New[byte](0)
	routes := [][]bool{
		{true},
		{false, false},
		{false, true, false},
		{true, true},
	}
	for i, route := range routes {
		_, ok := tree.AddLeaf(byte(i+1), bitio.NewReader(route))
		require.True(t, ok)
	}
	assert.Equal(t, len(routes)+1, tree.NumLeaves())
	assert.Len(t, tree.Leaves(), len(routes)+1)
}

func TestAddLeaf_ExhaustedSourceFails(t *testing.T) {
	tree := New[byte](0)
	_, ok := tree.AddLeaf(1, bitio.NewReader(nil))
	assert.False(t, ok)
	assert.Equal(t, 1, tree.NumLeaves())
}

func TestMapValues(t *testing.T) {
	tree := buildCanonical(t)
	mapped := MapValues(tree, func(b byte) int16 { return int16(b) + 3 })

	want := []int16{4, 5, 6, 7, 8}
	got := mapped.Leaves()
	require.Len(t, got, len(want))
	for i, leaf := range got {
		assert.Equal(t, want[i], leaf.Value)
	}
}

func TestSaveBits_FromBits_RoundTrip(t *testing.T) {
	tree := buildCanonical(t)

	w := bitio.NewWriter()
	SaveBits(tree, w, byteCodec{})

	r := bitio.NewReader(w.Bits())
	loaded, err := FromBits(r, byteCodec{})
	require.NoError(t, err)

	want := tree.Leaves()
	got := loaded.Leaves()
	assert.Equal(t, want, got)
}

func TestSaveBits_OneLeafTree(t *testing.T) {
	tree := New[byte](42)
	w := bitio.NewWriter()
	SaveBits(tree, w, byteCodec{})
	assert.Len(t, w.Bits(), 9) // 1 tag bit + 8 payload bits

	loaded, err := FromBits(bitio.NewReader(w.Bits()), byteCodec{})
	require.NoError(t, err)
	assert.Equal(t, tree.Leaves(), loaded.Leaves())
}
