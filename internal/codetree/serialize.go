package codetree

import "github.com/scigolib/compressor/internal/bitio"

// PayloadCodec serialises and deserialises a tree's leaf payload. The tree
// shape itself is encoded generically by SaveBits/FromBits; only the leaf
// value needs a type-specific codec, supplied explicitly since Go generics
// carry no per-type method dispatch.
type PayloadCodec[T any] interface {
	Encode(w *bitio.Writer, v T)
	Decode(r *bitio.Reader) (T, error)
}

// SaveBits emits the tree's bit-level encoding: a pre-order traversal where
// each node contributes one tag bit (false=branch, true=leaf), branches are
// followed by their left then right subtree, and leaves are followed by
// their payload's own encoding.
func SaveBits[T any](t *Tree[T], w *bitio.Writer, pc PayloadCodec[T]) {
	saveNode(t, t.root, w, pc)
}

func saveNode[T any](t *Tree[T], idx int, w *bitio.Writer, pc PayloadCodec[T]) {
	nd := t.nodes[idx]
	if nd.isLeaf {
		w.WriteBit(true)
		pc.Encode(w, nd.value)
		return
	}
	w.WriteBit(false)
	saveNode(t, nd.left, w, pc)
	saveNode(t, nd.right, w, pc)
}

// FromBits parses a tree previously produced by SaveBits.
func FromBits[T any](r *bitio.Reader, pc PayloadCodec[T]) (*Tree[T], error) {
	t := &Tree[T]{}
	root, err := loadNode(t, r, pc)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func loadNode[T any](t *Tree[T], r *bitio.Reader, pc PayloadCodec[T]) (int, error) {
	tag, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	if tag {
		v, err := pc.Decode(r)
		if err != nil {
			return 0, err
		}
		t.nodes = append(t.nodes, node[T]{isLeaf: true, value: v})
		return len(t.nodes) - 1, nil
	}

	left, err := loadNode(t, r, pc)
	if err != nil {
		return 0, err
	}
	right, err := loadNode(t, r, pc)
	if err != nil {
		return 0, err
	}
	t.nodes = append(t.nodes, node[T]{left: left, right: right})
	return len(t.nodes) - 1, nil
}
