package terminal

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// Fallback dimensions used when the size query fails mid-session.
const (
	fallbackWidth  = 120
	fallbackHeight = 40
)

// Terminal owns the raw-mode controlling tty for one selection session.
// It reads keys from and draws to /dev/tty directly, so the selector stays
// usable with stdin piped and stdout redirected.
type Terminal struct {
	tty      *os.File
	fd       int
	oldState *term.State
	out      *bufio.Writer
	sigwinch chan os.Signal
	restored bool
}

func New() (*Terminal, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	fd := int(tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		tty.Close()
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	t := &Terminal{
		tty:      tty,
		fd:       fd,
		oldState: oldState,
		out:      bufio.NewWriter(tty),
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Size queries the current terminal dimensions. The terminal may have been
// resized since the last call, so callers re-query on every render.
func (t *Terminal) Size() (width, height int) {
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// WriteString buffers s for the next Flush.
func (t *Terminal) WriteString(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

// Flush writes all buffered output to the tty in one go.
func (t *Terminal) Flush() error {
	return t.out.Flush()
}

// Restore returns the tty to cooked mode and releases it. Safe to call more
// than once; only the first call does anything.
func (t *Terminal) Restore() {
	if t.restored {
		return
	}
	t.restored = true

	if t.oldState != nil {
		term.Restore(t.fd, t.oldState)
	}
	signal.Stop(t.sigwinch)
	t.tty.Close()
}

// ReadKey reads a single keypress from the tty in raw mode.
// Returns a Key struct describing the input.
func (t *Terminal) ReadKey() (Key, error) {
	buf := make([]byte, 6)
	n, err := t.tty.Read(buf)
	if err != nil {
		return Key{}, err
	}
	return parseKey(buf[:n]), nil
}

// Key types.
const (
	KeyRune    = iota // Normal printable character
	KeyEscape         // Escape key (standalone)
	KeyEnter          // Enter/Return
	KeyUp             // Arrow up
	KeyDown           // Arrow down
	KeyLeft           // Arrow left
	KeyRight          // Arrow right
	KeyHome           // Home
	KeyEnd            // End
	KeyUnknown        // Unrecognised sequence
)

type Key struct {
	Type int
	Rune rune
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single byte.
	if len(buf) == 1 {
		b := buf[0]
		switch {
		case b == 27:
			return Key{Type: KeyEscape}
		case b == 13:
			return Key{Type: KeyEnter}
		case b >= 32 && b < 127:
			return Key{Type: KeyRune, Rune: rune(b)}
		default:
			return Key{Type: KeyUnknown}
		}
	}

	// Escape sequences.
	if buf[0] == 27 && len(buf) >= 3 && buf[1] == '[' {
		// CSI 3-byte sequences.
		switch buf[2] {
		case 'A':
			return Key{Type: KeyUp}
		case 'B':
			return Key{Type: KeyDown}
		case 'C':
			return Key{Type: KeyRight}
		case 'D':
			return Key{Type: KeyLeft}
		case 'H':
			return Key{Type: KeyHome}
		case 'F':
			return Key{Type: KeyEnd}
		}

		// CSI 4-byte sequences: ESC [ <n> ~
		if len(buf) >= 4 && buf[3] == '~' {
			switch buf[2] {
			case '1':
				return Key{Type: KeyHome}
			case '4':
				return Key{Type: KeyEnd}
			}
		}
	}

	// Multi-byte UTF-8 character.
	r := decodeUTF8(buf)
	if r >= 32 {
		return Key{Type: KeyRune, Rune: r}
	}

	return Key{Type: KeyUnknown}
}

func decodeUTF8(buf []byte) rune {
	if len(buf) == 0 {
		return 0
	}
	// Simple UTF-8 decode for 1–4 byte sequences.
	b := buf[0]
	switch {
	case b < 0x80:
		return rune(b)
	case b < 0xC0:
		return 0xFFFD
	case b < 0xE0 && len(buf) >= 2:
		return rune(b&0x1F)<<6 | rune(buf[1]&0x3F)
	case b < 0xF0 && len(buf) >= 3:
		return rune(b&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case b < 0xF8 && len(buf) >= 4:
		return rune(b&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	}
	return 0xFFFD
}
