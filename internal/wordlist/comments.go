// Package wordlist generates the markdown list of Tali Forth 2 native
// words from the header comments in native_words.asm and the py65mon
// label map produced during assembly.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Marker prefixes the two header comment lines above each native word:
//
//	; ## COLD ( -- ) "Reset the Forth system"
//	; ## "cold"  tested  Tali Forth
const Marker = "; ## "

// ExtractMarkerLines collects every marker-prefixed line from the
// assembly source, trimmed, in file order. Pairing the lines up is the
// report generator's job.
func ExtractMarkerLines(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, Marker) {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	return lines, nil
}
