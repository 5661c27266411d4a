// internal/words/words.go
//
// Provides word list management for the game engines.
//
// Responsibilities:
//   - Load the target word list from a file, or fall back to the embedded default.
//   - Normalize entries (trim, uppercase) and keep only alphabetic words of the
//     configured length.
//   - Report where the list came from and how many words it holds.
//
// Constraints:
//   • Words must be exactly `length` letters (A–Z after uppercasing).
//   • Duplicates are dropped; first occurrence wins.
//   • Lists are immutable once loaded; Words returns a copy.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordhub/assets"
)

// EmbeddedSource is reported by List.Source for the built-in list.
const EmbeddedSource = "embedded"

// ErrEmpty is returned when no valid word survives filtering.
var ErrEmpty = errors.New("words: list is empty")

// List is a normalized word list.
type List struct {
	words  []string
	length int
	source string
	// skipped counts lines rejected by the filter.
	skipped int
}

// Load reads a word list. An empty path selects the embedded default list.
func Load(path string, length int) (*List, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", length)
	}

	var (
		lines  []string
		source = EmbeddedSource
		err    error
	)
	if path == "" {
		lines, err = assets.DefaultWords()
	} else {
		source = path
		lines, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", source, err)
	}

	l := FromLines(lines, length)
	l.source = source
	if len(l.words) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words in %s", ErrEmpty, length, source)
	}
	return l, nil
}

// FromLines builds a List from raw lines without touching the filesystem.
func FromLines(lines []string, length int) *List {
	l := &List{length: length, source: "memory"}
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		w := strings.ToUpper(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != length || !isAlpha(w) {
			l.skipped++
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Words returns a copy of the words in load order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Length returns the letters per word.
func (l *List) Length() int { return l.length }

// Source returns the file path or EmbeddedSource.
func (l *List) Source() string { return l.source }

// Skipped returns how many lines were rejected for length or characters.
func (l *List) Skipped() int { return l.skipped }

