package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"
)

// Default input locations, relative to the repository top level. The
// Makefile runs the tool from there.
const (
	DefaultSource = "native_words.asm"
	DefaultLabels = "docs/py65mon-labelmap.txt"
)

// ErrOddMarkerCount reports a source file whose marker lines cannot be
// paired up. Every native word needs exactly two header lines.
var ErrOddMarkerCount = errors.New("found odd number of marker lines")

// statusTested is the only status that counts as tested; any other
// spelling is reported in the not-tested tally.
const statusTested = "tested"

// Options configures a report run.
type Options struct {
	Source string
	Labels string
}

// Row holds one native word's table entry.
type Row struct {
	Name   string
	Word   string
	Source string
	Size   int
	Status string
}

// Generate runs the full pipeline: extract the marker lines from the
// assembly source, pair them up, resolve every word's size from the label
// map and write the markdown report to w. All rows are built before any
// output is written, so a failed symbol lookup yields an error and no
// report instead of a truncated table.
func Generate(opts Options, w io.Writer) error {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Labels == "" {
		opts.Labels = DefaultLabels
	}

	lines, err := ExtractMarkerLines(opts.Source)
	if err != nil {
		return err
	}
	if len(lines)%2 != 0 {
		return fmt.Errorf("%w in %s", ErrOddMarkerCount, opts.Source)
	}

	symbols, err := LoadSymbols(opts.Labels)
	if err != nil {
		return err
	}

	notTested := 0
	rows := make([]Row, 0, len(lines)/2)

	for i := 0; i < len(lines); i += 2 {
		row, err := buildRow(lines[i], lines[i+1], symbols)
		if err != nil {
			return err
		}
		if row.Status != statusTested {
			notTested++
		}
		rows = append(rows, row)
	}

	return writeReport(w, filepath.Base(opts.Source), rows, notTested)
}

// buildRow turns one header comment pair into a table row. The first
// line carries the formal name, the second the quoted Forth word, the
// test status and the source attribution:
//
//	; ## COLD ( -- ) "Reset the Forth system"
//	; ## "cold"  tested  Tali Forth
func buildRow(fl, sl string, symbols SymbolTable) (Row, error) {
	l1 := strings.Fields(markerContent(fl))
	if len(l1) == 0 {
		return Row{}, fmt.Errorf("malformed header line %q", fl)
	}
	name := l1[0]

	// The attribution may contain spaces, so the second line splits into
	// at most three fields.
	l2 := splitFields(markerContent(sl), 3)
	if len(l2) < 3 {
		return Row{}, fmt.Errorf("malformed header line %q", sl)
	}

	size, err := symbols.Size(strings.ToLower(name))
	if err != nil {
		return Row{}, fmt.Errorf("word %s: %w", name, err)
	}

	return Row{
		Name:   name,
		Word:   unquote(l2[0]),
		Source: l2[2],
		Size:   size,
		Status: l2[1],
	}, nil
}

// unquote strips the surrounding quote characters from the alias.
// Exactly one character comes off each side, so words that contain a
// quote themselves, like dot-quote, keep it.
func unquote(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}

// markerContent returns everything after the marker prefix. Extracted
// lines are whitespace-trimmed, so a header with no content ends up
// shorter than the marker itself.
func markerContent(s string) string {
	if len(s) <= len(Marker) {
		return ""
	}
	return s[len(Marker):]
}

// splitFields splits s on runs of whitespace into at most n fields. The
// last field keeps its internal spacing.
func splitFields(s string, n int) []string {
	var fields []string
	s = strings.TrimSpace(s)
	for len(fields) < n-1 {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}
		fields = append(fields, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	if s != "" {
		fields = append(fields, s)
	}
	return fields
}

func writeReport(w io.Writer, sourceName string, rows []Row, notTested int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Tali Forth 2 native words")
	fmt.Fprintln(bw, "This file is automatically generated by a script in `tools`.")
	fmt.Fprintln(bw, "Note these are not all the words in Tali Forth 2, the high-level")
	fmt.Fprintln(bw, "and user-defined words coded in Forth are in `forth_code`.")
	fmt.Fprintln(bw, "The size in bytes includes any underflow checks, but not the")
	fmt.Fprintln(bw, "RTS instruction at the end of each word.")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "| NAME | FORTH WORD | SOURCE | BYTES | STATUS |")
	fmt.Fprintln(bw, "| :--- | :--------- | :---   | ----: | :----  |")

	for _, row := range rows {
		status := row.Status
		if status == statusTested {
			status = "**" + status + "**"
		}
		fmt.Fprintf(bw, "| %s | `%s` | %s | %d | %s |\n",
			row.Name, row.Word, row.Source, row.Size, status)
	}

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Found **%d** native words in `%s`.\n", len(rows), sourceName)
	fmt.Fprintf(bw, "Of those, **%d** are not marked as \"tested\".\n", notTested)
	fmt.Fprintln(bw)

	return bw.Flush()
}
