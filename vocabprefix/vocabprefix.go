/*
Package vocabprefix is the token-healing facade: it builds a reversed-
vocabulary trie and the generalized suffix automaton over it, and keeps
that automaton, the CountInfo propagated onto every automaton state, and
the sorted-vocabulary order, so that a caller streaming tokens in reverse
order (prepending them to a running query) can recover the contiguous
sorted-vocabulary range whose entries the query is currently a prefix of.
The tries and the rest of the sort result are not kept after construction.

Construction is the only place this package does real work; the resulting
PrefixAutomaton and every table it owns are immutable afterwards, so any
number of gsam.State handles obtained from RootState may be fed
concurrently, each from at most one goroutine at a time.
*/
package vocabprefix

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/ModelTC/general-sam/countprop"
	"github.com/ModelTC/general-sam/gsam"
	"github.com/ModelTC/general-sam/internal/collections/set"
	"github.com/ModelTC/general-sam/trie"
	"github.com/ModelTC/general-sam/triesort"
)

var (
	// ErrInvalidEncoding is returned when a vocabulary entry is not valid UTF-8.
	ErrInvalidEncoding = errors.New("vocabprefix: invalid utf-8 encoding")
	// ErrEmptyVocabulary is returned when the vocabulary has no entries.
	ErrEmptyVocabulary = errors.New("vocabprefix: empty vocabulary")
	// ErrDuplicateEntry is returned when the (coerced) vocabulary contains a
	// repeated entry. This module requires a deduplicated vocabulary rather
	// than guessing whether duplicate seeding should sum or replace
	// CountInfo (see the GSAM seeding step in countprop).
	ErrDuplicateEntry = errors.New("vocabprefix: duplicate vocabulary entry")
)

// PrefixAutomaton is the generic core of the facade, over alphabet A. Use
// NewByteAutomaton or NewSymbolAutomaton to build one.
type PrefixAutomaton[A constraints.Ordered] struct {
	samRev  *gsam.GSAM[A]
	cntInfo []*triesort.CountInfo
	order   []int
}

func build[A constraints.Ordered](vocab [][]A) (*PrefixAutomaton[A], error) {
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	seen := set.New[string]()
	for _, entry := range vocab {
		key := fmt.Sprint(entry)
		if seen.Contain(key) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEntry, entry)
		}
		seen.Insert(key)
	}

	fwd := trie.New[A]()
	nodeIDs := make([]int, len(vocab))
	for i, entry := range vocab {
		nodeIDs[i] = fwd.Insert(entry)
	}
	sortRes := triesort.Sort(fwd, nodeIDs)

	vocabRev := make([][]A, len(vocab))
	revTrie := trie.New[A]()
	for i, entry := range vocab {
		rev := make([]A, len(entry))
		for j, a := range entry {
			rev[len(entry)-1-j] = a
		}
		vocabRev[i] = rev
		revTrie.Insert(rev)
	}

	samRev := gsam.BuildFromTrie(revTrie)
	cntInfo := countprop.Propagate(samRev, vocabRev, sortRes)

	return &PrefixAutomaton[A]{
		samRev:  samRev,
		cntInfo: cntInfo,
		order:   sortRes.Order,
	}, nil
}

// NewByteAutomaton builds a PrefixAutomaton over raw UTF-8 bytes. Each
// vocab entry is required to already be valid UTF-8.
func NewByteAutomaton(vocab []string) (*PrefixAutomaton[byte], error) {
	seqs := make([][]byte, len(vocab))
	for i, s := range vocab {
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidEncoding, i)
		}
		seqs[i] = []byte(s)
	}
	return build(seqs)
}

// NewSymbolAutomaton builds a PrefixAutomaton over Unicode codepoints
// (runes). Each vocab entry is required to already be valid UTF-8.
func NewSymbolAutomaton(vocab []string) (*PrefixAutomaton[rune], error) {
	seqs := make([][]rune, len(vocab))
	for i, s := range vocab {
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidEncoding, i)
		}
		seqs[i] = []rune(s)
	}
	return build(seqs)
}

// RootState returns a handle to the root of the underlying (reversed)
// automaton — the starting point for a fresh query.
func (p *PrefixAutomaton[A]) RootState() gsam.State[A] {
	return p.samRev.RootState()
}

// PrependFeed logically prepends token to state's running query: it
// reverses token and feeds its symbols into state, then returns the
// CountInfo now attached to state's position, or nil if the current
// (forward) query is not a prefix of any vocabulary entry. Once state goes
// nil, further calls leave it nil and keep returning nil.
func (p *PrefixAutomaton[A]) PrependFeed(state *gsam.State[A], token []A) *triesort.CountInfo {
	rev := make([]A, len(token))
	for i, a := range token {
		rev[len(token)-1-i] = a
	}
	state.Feed(rev)
	if state.IsNil() {
		return nil
	}
	return p.cntInfo[state.NodeID()]
}

// Order returns the permutation mapping sorted-vocabulary position to
// original vocabulary index.
func (p *PrefixAutomaton[A]) Order() []int {
	return p.order
}

// OrderSlice returns the vocabulary indices covered by ci's
// [TotCntLower, TotCntUpper) interval — exactly the entries beginning with
// the query that produced ci. Returns nil if ci is nil.
func (p *PrefixAutomaton[A]) OrderSlice(ci *triesort.CountInfo) []int {
	if ci == nil {
		return nil
	}
	return p.order[ci.TotCntLower:ci.TotCntUpper]
}
