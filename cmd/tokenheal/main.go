// Command tokenheal is an interactive demo of the token-healing facade: it
// loads a vocabulary file, builds a vocabprefix.PrefixAutomaton over it, and
// lets the user prepend tokens one at a time to a running query, showing
// the live CountInfo and the sorted-vocabulary slice it names.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ModelTC/general-sam/config"
	"github.com/ModelTC/general-sam/gsam"
	"github.com/ModelTC/general-sam/internal/collections/deque"
	"github.com/ModelTC/general-sam/internal/lib/logger/sl"
	"github.com/ModelTC/general-sam/vocabprefix"

	"github.com/jroimartin/gocui"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const historyLimit = 64

func main() {
	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	vocab, err := loadVocab(cfg.VocabPath)
	if err != nil {
		log.Error("failed to load vocabulary", "error", sl.Err(err), "path", cfg.VocabPath)
		os.Exit(1)
	}
	log.Info("loaded vocabulary", "entries", len(vocab), "alphabet", cfg.Alphabet)

	demo, err := newDemo(cfg.Alphabet, vocab, cfg.MaxResults)
	if err != nil {
		log.Error("failed to build automaton", "error", sl.Err(err))
		os.Exit(1)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Error("failed to create gui", "error", sl.Err(err))
		os.Exit(1)
	}
	defer g.Close()

	ui := &tui{log: log, demo: demo, gui: g}
	g.Cursor = true
	g.SetManagerFunc(ui.layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Error("failed to set keybinding", "error", sl.Err(err))
	}
	if err := g.SetKeybinding("prepend", gocui.KeyEnter, gocui.ModNone, ui.onPrepend); err != nil {
		log.Error("failed to set keybinding", "error", sl.Err(err))
	}
	if err := g.SetKeybinding("", gocui.KeyCtrlR, gocui.ModNone, ui.onReset); err != nil {
		log.Error("failed to set keybinding", "error", sl.Err(err))
	}

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Error("gui loop exited with an error", "error", sl.Err(err))
	}
}

// demo wraps whichever concrete PrefixAutomaton alphabet was configured
// behind a single string-oriented interface, so the TUI layer doesn't need
// to care whether it is working over bytes or symbols.
type demo struct {
	maxResults int
	healer     healer
}

type healer interface {
	reset()
	prepend(token string) (strCnt, lower, upper int, live, has bool)
	candidates(lower, upper int) []string
}

func newDemo(alphabet string, vocab []string, maxResults int) (*demo, error) {
	var h healer
	switch alphabet {
	case "byte":
		pa, err := vocabprefix.NewByteAutomaton(vocab)
		if err != nil {
			return nil, err
		}
		h = &byteHealer{vocab: vocab, pa: pa, state: pa.RootState()}
	default:
		pa, err := vocabprefix.NewSymbolAutomaton(vocab)
		if err != nil {
			return nil, err
		}
		h = &symbolHealer{vocab: vocab, pa: pa, state: pa.RootState()}
	}
	return &demo{maxResults: maxResults, healer: h}, nil
}

type byteHealer struct {
	vocab []string
	pa    *vocabprefix.PrefixAutomaton[byte]
	state gsam.State[byte]
}

func (h *byteHealer) reset() { h.state = h.pa.RootState() }

func (h *byteHealer) prepend(token string) (int, int, int, bool, bool) {
	ci := h.pa.PrependFeed(&h.state, []byte(token))
	if ci == nil {
		return 0, 0, 0, !h.state.IsNil(), false
	}
	return ci.StrCnt, ci.TotCntLower, ci.TotCntUpper, true, true
}

func (h *byteHealer) candidates(lower, upper int) []string {
	order := h.pa.Order()
	out := make([]string, 0, upper-lower)
	for _, idx := range order[lower:upper] {
		out = append(out, h.vocab[idx])
	}
	return out
}

type symbolHealer struct {
	vocab []string
	pa    *vocabprefix.PrefixAutomaton[rune]
	state gsam.State[rune]
}

func (h *symbolHealer) reset() { h.state = h.pa.RootState() }

func (h *symbolHealer) prepend(token string) (int, int, int, bool, bool) {
	ci := h.pa.PrependFeed(&h.state, []rune(token))
	if ci == nil {
		return 0, 0, 0, !h.state.IsNil(), false
	}
	return ci.StrCnt, ci.TotCntLower, ci.TotCntUpper, true, true
}

func (h *symbolHealer) candidates(lower, upper int) []string {
	order := h.pa.Order()
	out := make([]string, 0, upper-lower)
	for _, idx := range order[lower:upper] {
		out = append(out, h.vocab[idx])
	}
	return out
}

// tui is the gocui-backed view over a demo: a "prepend" input, a bounded
// history of the tokens fed so far, and an "output" view of the live query
// and its CountInfo.
type tui struct {
	log     *slog.Logger
	demo    *demo
	gui     *gocui.Gui
	history *deque.Deque[string]
	query   string
}

func (t *tui) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX < 20 || maxY < 8 {
		return fmt.Errorf("terminal window is too small")
	}

	if v, err := g.SetView("history", 0, 0, maxX/3, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Prepended tokens"
		v.Wrap = true
	}

	if v, err := g.SetView("prepend", maxX/3+1, 0, maxX-1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Editable = true
		v.Title = "Prepend token (Enter), Ctrl-R reset, Ctrl-C quit"
		_, _ = g.SetCurrentView("prepend")
	}

	if v, err := g.SetView("output", maxX/3+1, 3, maxX-1, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Result"
		v.Wrap = true
	}

	return nil
}

func (t *tui) onPrepend(g *gocui.Gui, v *gocui.View) error {
	token := strings.TrimSpace(v.Buffer())
	v.Clear()
	v.SetCursor(0, 0)
	if token == "" {
		return nil
	}

	if t.history == nil {
		t.history = deque.New[string]()
	}
	if t.history.Size() >= historyLimit {
		_, _ = t.history.PollFirst()
	}
	t.history.OfferLast(token)
	t.query = token + t.query

	strCnt, lower, upper, live, has := t.demo.healer.prepend(token)

	historyView, err := g.View("history")
	if err != nil {
		return err
	}
	historyView.Clear()
	for _, tok := range t.history.ToSlice() {
		fmt.Fprintln(historyView, tok)
	}

	outputView, err := g.View("output")
	if err != nil {
		return err
	}
	outputView.Clear()
	fmt.Fprintf(outputView, "query: %q\nlive: %v\n", t.query, live)
	if !has {
		fmt.Fprintln(outputView, "no vocabulary entry begins with this query")
		return nil
	}
	fmt.Fprintf(outputView, "str_cnt=%d lower=%d upper=%d\n\ncandidates:\n", strCnt, lower, upper)
	for i, c := range t.demo.healer.candidates(lower, upper) {
		if i >= t.demo.maxResults {
			fmt.Fprintln(outputView, "...")
			break
		}
		fmt.Fprintln(outputView, c)
	}
	return nil
}

func (t *tui) onReset(g *gocui.Gui, v *gocui.View) error {
	t.demo.healer.reset()
	t.query = ""
	t.history = deque.New[string]()
	for _, name := range []string{"history", "output"} {
		if view, err := g.View(name); err == nil {
			view.Clear()
		}
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func loadVocab(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vocab []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		vocab = append(vocab, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vocab, nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
