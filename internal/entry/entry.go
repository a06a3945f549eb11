package entry

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// idSeparator splits an identifier prefix from the entry text.
const idSeparator = "::"

// Entry is one candidate line. Text is what the selector displays; ID is the
// optional identifier prefix printed instead of the text in ids mode.
type Entry struct {
	ID   string
	Text string
}

// Read collects entries from r, one per line. Lines are trimmed of
// surrounding whitespace and blank lines are dropped.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return lines, nil
}

// Parse splits an "identifier::text" line at the first separator. A line
// without the separator is normalised to plain text with an empty identifier
// rather than rejected.
func Parse(line string) Entry {
	id, text, ok := strings.Cut(line, idSeparator)
	if !ok {
		return Entry{Text: line}
	}
	return Entry{ID: id, Text: text}
}

// DisplayLines builds the strings the selector shows, index-aligned with
// entries. With numbered set, each line carries a 1-based ordinal zero-padded
// to the width of the largest.
func DisplayLines(entries []Entry, numbered bool) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		if numbered {
			lines[i] = fmt.Sprintf(" %s %s", padNum(i+1, len(entries)), e.Text)
		} else {
			lines[i] = e.Text
		}
	}
	return lines
}

// padNum renders n zero-padded to the decimal width of max.
func padNum(n, max int) string {
	width := len(strconv.Itoa(max))
	return fmt.Sprintf("%0*d", width, n)
}
