package selector

import (
	"errors"
	"os"
	"sort"

	"github.com/JackWReid/lsel/internal/terminal"
)

// ErrNoEntries is returned when Select is called with an empty entry list.
var ErrNoEntries = errors.New("no entries to select from")

// Term is the terminal capability surface the selector drives. The concrete
// implementation is terminal.Terminal; tests substitute a scripted fake.
type Term interface {
	ReadKey() (terminal.Key, error)
	Size() (width, height int)
	SigwinchChan() <-chan os.Signal
	WriteString(s string) error
	Flush() error
	Restore()
}

// Result is the outcome of one selection session. A cancelled session and a
// confirmed session with nothing selected both carry no indices, but the two
// remain distinguishable through Confirmed.
type Result struct {
	Confirmed bool
	Indices   []int // 0-based indices into the caller's entry list, ascending
}

// Selector holds the state of one interactive session: the display strings,
// the cursor, the selection set, and the scroll position.
type Selector struct {
	entries   []string
	term      Term
	cursor    int // 1-based; row 0 is the header and never selectable
	selected  map[int]struct{}
	scrollTop int
	cleaned   bool
}

// Select runs an interactive session over entries on the controlling tty and
// returns the user's choice. The entries are displayed verbatim, one per row,
// index-aligned with the returned indices.
func Select(entries []string) (Result, error) {
	if len(entries) == 0 {
		return Result{}, ErrNoEntries
	}
	t, err := terminal.New()
	if err != nil {
		return Result{}, err
	}
	return newSelector(entries, t).run()
}

func newSelector(entries []string, t Term) *Selector {
	return &Selector{
		entries:  entries,
		term:     t,
		cursor:   1,
		selected: make(map[int]struct{}),
	}
}

// run is the blocking read-evaluate-render loop. It owns the terminal until
// the user confirms or quits, or until a terminal read/write fails.
func (s *Selector) run() (Result, error) {
	defer s.cleanup()

	if err := s.render(); err != nil {
		return Result{}, err
	}

	for {
		// Apply a pending resize before blocking on the next key.
		select {
		case <-s.term.SigwinchChan():
			if err := s.render(); err != nil {
				return Result{}, err
			}
			continue
		default:
		}

		key, err := s.term.ReadKey()
		if err != nil {
			return Result{}, err
		}

		switch key.Type {
		case terminal.KeyLeft:
			s.cleanup()
			return Result{}, nil
		case terminal.KeyUp:
			s.MoveUp()
		case terminal.KeyDown:
			s.MoveDown()
		case terminal.KeyRight:
			s.Toggle()
		case terminal.KeyEnter:
			res := Result{Confirmed: true, Indices: s.Selection()}
			s.cleanup()
			return res, nil
		case terminal.KeyRune:
			switch key.Rune {
			case 'q', 'h':
				s.cleanup()
				return Result{}, nil
			case 'k':
				s.MoveUp()
			case 'j':
				s.MoveDown()
			case 'l':
				s.Toggle()
			case 'a':
				s.SelectAll()
			case 'n':
				s.SelectNone()
			}
		}

		if err := s.render(); err != nil {
			return Result{}, err
		}
	}
}

// cleanup restores the terminal for the next shell prompt: colours reset,
// screen cleared, cursor shown at the top-left, cooked mode back. It runs
// exactly once per session, on every exit path.
func (s *Selector) cleanup() {
	if s.cleaned {
		return
	}
	s.cleaned = true

	s.term.WriteString(fgReset + bgReset + clearAll + cursorTo(1) + showCursor)
	s.term.Flush()
	s.term.Restore()
}

// MoveDown moves the cursor down one entry. Past the last entry it wraps to
// the first.
func (s *Selector) MoveDown() {
	s.cursor++
	if s.cursor == len(s.entries)+1 {
		s.goTop()
	}
}

// MoveUp moves the cursor up one entry. Above the first entry it wraps to
// the last.
func (s *Selector) MoveUp() {
	s.cursor--
	if s.cursor < 1 {
		s.goBottom()
	}
}

func (s *Selector) goTop()    { s.cursor = 1 }
func (s *Selector) goBottom() { s.cursor = len(s.entries) }

// Toggle flips the selected state of the entry under the cursor, then
// advances the cursor so a held key tags a run of entries.
func (s *Selector) Toggle() {
	idx := s.cursor - 1
	if _, ok := s.selected[idx]; ok {
		delete(s.selected, idx)
	} else {
		s.selected[idx] = struct{}{}
	}
	s.MoveDown()
}

// SelectAll marks every entry as selected.
func (s *Selector) SelectAll() {
	for idx := range s.entries {
		s.selected[idx] = struct{}{}
	}
}

// SelectNone clears the selection.
func (s *Selector) SelectNone() {
	clear(s.selected)
}

// Selection returns the selected entry indices in ascending order, or nil
// when nothing is selected.
func (s *Selector) Selection() []int {
	if len(s.selected) == 0 {
		return nil
	}
	indices := make([]int, 0, len(s.selected))
	for idx := range s.selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}
