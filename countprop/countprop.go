/*
Package countprop maps each vocabulary entry's accept state in a GSAM built
from the reversed vocabulary to a triesort.CountInfo, then propagates those
intervals up the suffix-link tree in reverse topological order so that
every GSAM state ends up knowing the smallest contiguous sorted-vocabulary
interval containing every entry for which the state's longest string is a
prefix.
*/
package countprop

import (
	"golang.org/x/exp/constraints"

	"github.com/ModelTC/general-sam/gsam"
	"github.com/ModelTC/general-sam/triesort"
)

// debugAsserts gates the monotonicity verification described as a
// "debug/test mode" step. It is on, so every call of Propagate runs the
// check, including the one made by vocabprefix when it builds an automaton.
const debugAsserts = true

// Propagate computes, for each state of samRev (a GSAM built from the
// reversed vocabulary), the CountInfo of the sorted-vocabulary interval
// whose entries have that state's longest string as a prefix. The result
// is indexed by SAM state id; a nil entry means no vocabulary entry begins
// with that state's string.
//
// vocabRev[i] must be the reversed form of the i-th vocabulary entry, and
// sortRes must be the triesort.SortResult computed over the (forward,
// unreversed) vocabulary.
func Propagate[A constraints.Ordered](
	samRev *gsam.GSAM[A],
	vocabRev [][]A,
	sortRes triesort.SortResult[A],
) []*triesort.CountInfo {
	cntInfo := make([]*triesort.CountInfo, samRev.NumNodes())

	for i, rev := range vocabRev {
		state := samRev.RootState()
		state.Feed(rev)
		ci := sortRes.CntInfoOnStrings[i]
		ci.StrCnt = 1
		cntInfo[state.NodeID()] = &ci
	}

	order := samRev.TopoOrder()
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		state := samRev.GetState(id)
		if state.IsRoot() {
			continue
		}
		cur := cntInfo[id]
		if cur == nil {
			continue
		}
		linkID := state.SuffixParentID()
		link := cntInfo[linkID]
		if link == nil {
			merged := *cur
			cntInfo[linkID] = &merged
			continue
		}
		link.StrCnt += cur.StrCnt
		if cur.TotCntLower < link.TotCntLower {
			link.TotCntLower = cur.TotCntLower
		}
		if cur.TotCntUpper > link.TotCntUpper {
			link.TotCntUpper = cur.TotCntUpper
		}
	}

	if debugAsserts {
		for id := 0; id < samRev.NumNodes(); id++ {
			state := samRev.GetState(id)
			if state.IsNil() || state.IsRoot() || cntInfo[id] == nil {
				continue
			}
			link := cntInfo[state.SuffixParentID()]
			cur := cntInfo[id]
			if link == nil || link.TotCntLower > cur.TotCntLower || link.TotCntUpper < cur.TotCntUpper {
				panic("countprop: suffix-link monotonicity violated")
			}
		}
	}

	return cntInfo
}
