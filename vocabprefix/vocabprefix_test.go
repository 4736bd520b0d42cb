package vocabprefix

import (
	"errors"
	"testing"

	"github.com/ModelTC/general-sam/triesort"
)

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func wantCI(t *testing.T, got *triesort.CountInfo, strCnt, lower, upper int) {
	t.Helper()
	if got == nil || got.StrCnt != strCnt || got.TotCntLower != lower || got.TotCntUpper != upper {
		t.Fatalf("got %+v, want {%d %d %d}", got, strCnt, lower, upper)
	}
}

func TestEmptyVocabularyRejected(t *testing.T) {
	if _, err := NewSymbolAutomaton(nil); err != ErrEmptyVocabulary {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
	if _, err := NewByteAutomaton([]string{}); err != ErrEmptyVocabulary {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestDuplicateVocabularyRejected(t *testing.T) {
	if _, err := NewSymbolAutomaton([]string{"a", "b", "a"}); err == nil {
		t.Fatalf("expected an error for duplicate entries")
	}
}

func TestInvalidEncodingRejected(t *testing.T) {
	bad := string([]byte{0xff, 0xfe})
	if _, err := NewByteAutomaton([]string{bad}); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
	if _, err := NewSymbolAutomaton([]string{bad}); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

// prefix query over a simple ascii vocabulary
func TestSimpleTokenHealing(t *testing.T) {
	vocab := []string{"bb", "ca", "ab", "c", "aa", "bbaa", "a", "cc", "b"}
	pa, err := NewSymbolAutomaton(vocab)
	if err != nil {
		t.Fatalf("NewSymbolAutomaton: %v", err)
	}

	state := pa.RootState()
	ci := pa.PrependFeed(&state, []rune("a"))
	wantCI(t, ci, 3, 0, 3)

	ci = pa.PrependFeed(&state, []rune("b"))
	if ci != nil {
		t.Fatalf("query 'ba': expected nil CountInfo, got %+v", ci)
	}
	if state.IsNil() {
		t.Fatalf("query 'ba' should not be nil: it is a substring of 'bbaa'")
	}
}

// multi-byte vocabulary, mixing single-rune and word-level prepends, then a
// second query from a fresh root over the same automaton
func TestChineseTokenHealing(t *testing.T) {
	vocab := []string{"歌曲", "聆听歌曲", "播放歌曲", "歌词", "查看歌词"}
	pa, err := NewSymbolAutomaton(vocab)
	if err != nil {
		t.Fatalf("NewSymbolAutomaton: %v", err)
	}

	state := pa.RootState()
	ci := pa.PrependFeed(&state, []rune("歌"))
	wantCI(t, ci, 2, 2, 4)
	if got, want := pa.OrderSlice(ci), []int{0, 3}; !sameInts(got, want) {
		t.Fatalf("order slice for '歌': got %v, want %v", got, want)
	}

	ci = pa.PrependFeed(&state, []rune("听"))
	if ci != nil {
		t.Fatalf("query '听歌': expected nil, got %+v", ci)
	}
	if state.IsNil() {
		t.Fatalf("query '听歌' should not be nil")
	}

	ci = pa.PrependFeed(&state, []rune("聆"))
	wantCI(t, ci, 1, 4, 5)

	ci = pa.PrependFeed(&state, []rune("一起"))
	if ci != nil {
		t.Fatalf("query '一起聆听歌': expected nil, got %+v", ci)
	}
	if !state.IsNil() {
		t.Fatalf("query '一起聆听歌' should be nil: no vocabulary entry contains it")
	}

	fresh := pa.RootState()
	ci = pa.PrependFeed(&fresh, []rune("歌词"))
	wantCI(t, ci, 1, 3, 4)

	ci = pa.PrependFeed(&fresh, []rune("查看"))
	wantCI(t, ci, 1, 1, 2)

	ci = pa.PrependFeed(&fresh, []rune("来"))
	if ci != nil {
		t.Fatalf("query '来查看歌词': expected nil, got %+v", ci)
	}
}

// byte-level healing must land on the same result regardless of how the
// 3-byte UTF-8 encoding of the single vocabulary entry is chunked, so long
// as the chunks are prepended in an order that reconstructs it
func TestUTF8ByteLevelTokenHealing(t *testing.T) {
	want := []byte("䨻")
	if len(want) != 3 {
		t.Fatalf("expected a 3-byte UTF-8 encoding, got %d bytes", len(want))
	}

	// Each grouping is a list of forward byte-slices of want, given in the
	// order they must be prepend-fed (rightmost chunk of the string first)
	// so that the reconstructed query ends up equal to want.
	groupings := map[string][][]byte{
		"whole string at once": {want[0:3]},
		"byte by byte":         {want[2:3], want[1:2], want[0:1]},
		"first byte, then last two": {
			want[1:3], want[0:1],
		},
		"first two, then last byte": {
			want[2:3], want[0:2],
		},
	}

	for name, chunks := range groupings {
		t.Run(name, func(t *testing.T) {
			pa, err := NewByteAutomaton([]string{"䨻"})
			if err != nil {
				t.Fatalf("NewByteAutomaton: %v", err)
			}
			state := pa.RootState()

			var ci *triesort.CountInfo
			for _, chunk := range chunks {
				ci = pa.PrependFeed(&state, chunk)
			}
			wantCI(t, ci, 1, 0, 1)
		})
	}
}

func TestOrderMatchesSortedVocabulary(t *testing.T) {
	vocab := []string{"歌曲", "聆听歌曲", "播放歌曲", "歌词", "查看歌词"}
	pa, err := NewSymbolAutomaton(vocab)
	if err != nil {
		t.Fatalf("NewSymbolAutomaton: %v", err)
	}

	sorted := make([]string, len(vocab))
	for rank, idx := range pa.Order() {
		sorted[rank] = vocab[idx]
	}
	want := []string{"播放歌曲", "查看歌词", "歌曲", "歌词", "聆听歌曲"}
	for i, w := range want {
		if sorted[i] != w {
			t.Fatalf("order[%d]: got %q, want %q (full: %v)", i, sorted[i], w, sorted)
		}
	}
}
