package selector

import (
	"fmt"
	"strings"
)

const (
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	fgBlack    = "\x1b[30m"
	bgWhite    = "\x1b[47m"
	fgReset    = "\x1b[39m"
	bgReset    = "\x1b[49m"
)

func cursorTo(row int) string {
	return fmt.Sprintf("\x1b[%d;1H", row)
}

// render redraws the full screen from current state: clear, hide the cursor,
// write each visible line at its absolute row, flush once.
func (s *Selector) render() error {
	content := s.frame()
	_, height := s.term.Size()
	visible := s.window(content, height-1)

	var buf strings.Builder
	buf.WriteString(clearAll)
	buf.WriteString(cursorTo(1))
	buf.WriteString(hideCursor)
	for i, line := range visible {
		buf.WriteString(cursorTo(i + 1))
		buf.WriteString(line)
	}

	if err := s.term.WriteString(buf.String()); err != nil {
		return err
	}
	return s.term.Flush()
}

// frame assembles the header plus one line per entry, with the cursor marker
// and selection highlighting applied. Selected entries and the header use the
// inverted colour pair.
func (s *Selector) frame() []string {
	lines := make([]string, 0, len(s.entries)+1)
	lines = append(lines, s.headerLine())
	for idx, entry := range s.entries {
		marker := ' '
		if idx+1 == s.cursor {
			marker = '>'
		}
		if _, ok := s.selected[idx]; ok {
			lines = append(lines, fmt.Sprintf("%s%s%c %s%s%s",
				fgBlack, bgWhite, marker, entry, fgReset, bgReset))
		} else {
			lines = append(lines, fmt.Sprintf("%s%s%c %s",
				fgReset, bgReset, marker, entry))
		}
	}
	return lines
}

func (s *Selector) headerLine() string {
	return fmt.Sprintf("%s%s (%d selected / %d total)  [l/right:select  enter:run selection  q/h/left:quit  a:select all  n:deselect all] ",
		fgBlack, bgWhite, len(s.selected), len(s.entries))
}

// window returns the slice of content visible at the current scroll position,
// adjusting scrollTop so the cursor line stays on screen. When the cursor
// moves to or above the top of the window the view snaps back to the start
// rather than scrolling minimally, so wrapping from the last entry to the
// first jumps the view to the top. That is intended.
func (s *Selector) window(content []string, maxRows int) []string {
	if maxRows < 1 {
		maxRows = 1
	}

	cur := s.cursor + 1
	if cur <= s.scrollTop {
		s.scrollTop = 0
	} else if cur-s.scrollTop > maxRows {
		s.scrollTop = cur - maxRows
	}

	end := s.scrollTop + min(maxRows, len(content))
	if end > len(content) {
		end = len(content)
	}
	return content[s.scrollTop:end]
}
