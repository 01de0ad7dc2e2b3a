// Package treebuilder turns byte-frequency statistics into a codetree.Tree
// shaped to reduce total coded length under a greedy, deliberately
// suboptimal heuristic documented here. It is not Huffman's algorithm. The
// tree travels in the artifact header, so decoding does not depend on which
// heuristic built it.
package treebuilder

import (
	"sort"

	"github.com/scigolib/compressor/internal/bitio"
	"github.com/scigolib/compressor/internal/codetree"
)

// Freq pairs a byte with how many times it occurred.
type Freq struct {
	Count int
	Byte  byte
}

// CountUses scans data once and returns one Freq per distinct byte value,
// sorted descending by (Count, Byte) — the frequency table order
// consumed by BuildTree. Empty input yields a nil slice.
func CountUses(data []byte) []Freq {
	if len(data) == 0 {
		return nil
	}

	counts := make(map[byte]int)
	for _, b := range data {
		counts[b]++
	}

	freqs := make([]Freq, 0, len(counts))
	for b, c := range counts {
		freqs = append(freqs, Freq{Count: c, Byte: b})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Byte > freqs[j].Byte
	})
	return freqs
}

// BuildTree grows a codetree.Tree[Freq] from a non-empty, sorted frequency
// table using the greedy heuristic: the first entry becomes the root leaf;
// each subsequent entry is scored against every existing leaf as
//
//	score = existingLeafCount + routeLength(existingLeaf) * nextCount
//
// and is inserted as the LEFT sibling of whichever leaf scores lowest
// (ties broken by Leaves()'s left-to-right order).
//
// BuildTree panics if freqs is empty; callers are responsible for handling
// the empty-input case before calling it.
func BuildTree(freqs []Freq) *codetree.Tree[Freq] {
	if len(freqs) == 0 {
		panic("treebuilder: BuildTree called with no frequencies")
	}

	tree := codetree.New(freqs[0])

	for _, next := range freqs[1:] {
		leaves := tree.Leaves()

		bestIdx := 0
		bestScore := leaves[0].Value.Count + len(leaves[0].Route)*next.Count
		for i := 1; i < len(leaves); i++ {
			score := leaves[i].Value.Count + len(leaves[i].Route)*next.Count
			if score < bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		route := append(append([]bool{}, leaves[bestIdx].Route...), false)
		_, ok := tree.AddLeaf(next, bitio.NewReader(route))
		if !ok {
			panic("treebuilder: route to selected leaf was rejected by AddLeaf")
		}
	}

	return tree
}
