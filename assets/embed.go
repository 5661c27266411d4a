// Package assets embeds the default word list shipped with the binary.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordsName is the embedded word list file name.
const DefaultWordsName = "words.txt"

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultWords returns the raw lines of the embedded word list.
func DefaultWords() ([]string, error) {
	return readLines(DefaultWordsName)
}
