/*
Package triesort derives a lexicographically sorted vocabulary order from a
trie, along with a CountInfo per trie node describing exactly which
sorted-order interval that node's subtree covers.

This is possible because github.com/ModelTC/general-sam/trie.Trie walks its
children in natural alphabet order: a depth-first traversal numbers each
node with the half-open range of sorted vocabulary positions whose paths
pass through it, in O(total trie size).
*/
package triesort

import (
	"golang.org/x/exp/constraints"

	"github.com/ModelTC/general-sam/internal/collections/priorityqueue"
	"github.com/ModelTC/general-sam/trie"
)

// CountInfo is a half-open interval [TotCntLower, TotCntUpper) into the
// sorted vocabulary, together with the number of vocabulary entries
// (StrCnt) it contains.
type CountInfo struct {
	StrCnt      int
	TotCntLower int
	TotCntUpper int
}

// SortResult bundles the trie, each input's terminal node, the CountInfo
// computed per trie node and per input string, and the sorted-order
// permutation and its inverse.
type SortResult[A constraints.Ordered] struct {
	Trie             *trie.Trie[A]
	NodeIDs          []int
	CntInfoOnNodes   []CountInfo
	CntInfoOnStrings []CountInfo
	Order            []int
	Rank             []int
}

// Sort computes a SortResult for a trie t whose i-th input terminates at
// trie node nodeIDs[i].
func Sort[A constraints.Ordered](t *trie.Trie[A], nodeIDs []int) SortResult[A] {
	cntInfoOnNodes := make([]CountInfo, t.NumNodes())
	for _, n := range nodeIDs {
		cntInfoOnNodes[n].StrCnt++
	}

	tot := 0
	t.DFS(func(n, parent int) {
		cntInfoOnNodes[n].TotCntLower = tot
		tot += cntInfoOnNodes[n].StrCnt
	}, func(n int) {
		cntInfoOnNodes[n].TotCntUpper = tot
	})

	cntInfoOnStrings := make([]CountInfo, len(nodeIDs))
	for i, n := range nodeIDs {
		cntInfoOnStrings[i] = cntInfoOnNodes[n]
	}

	order := make([]int, len(nodeIDs))
	heap := priorityqueue.New[int, int]()
	for i, ci := range cntInfoOnStrings {
		heap.Push(ci.TotCntLower, i)
	}
	for i := range order {
		v, _ := heap.Pop()
		order[i] = v
	}

	rank := make([]int, len(nodeIDs))
	for k, i := range order {
		rank[i] = k
	}

	return SortResult[A]{
		Trie:             t,
		NodeIDs:          nodeIDs,
		CntInfoOnNodes:   cntInfoOnNodes,
		CntInfoOnStrings: cntInfoOnStrings,
		Order:            order,
		Rank:             rank,
	}
}
