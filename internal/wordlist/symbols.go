package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Label prefixes emitted for each native word: xt_ marks the execution
// token at the start of the code, z_ marks the end.
const (
	startPrefix = "xt_"
	endPrefix   = "z_"
)

// SymbolTable maps xt_ and z_ labels to their absolute addresses.
type SymbolTable map[string]int

// SymbolNotFoundError reports a native word whose start or end label is
// missing from the label map.
type SymbolNotFoundError struct {
	Label string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol %q not found in label map", e.Label)
}

// LoadSymbols reads a py65mon label map and indexes the addresses of all
// labels carrying a recognized prefix. Lines are of the form
//
//	$0000 | cp                      | definitions.asm:90
//
// and are split on whitespace, so the pipes land in fields of their own.
// Lines without a recognized label are skipped without comment.
func LoadSymbols(path string) (SymbolTable, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open label map: %w", err)
	}
	defer func() { _ = f.Close() }()

	table := SymbolTable{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		label := fields[2]
		if !strings.HasPrefix(label, startPrefix) && !strings.HasPrefix(label, endPrefix) {
			continue
		}

		addr, err := strconv.ParseInt(strings.TrimPrefix(fields[0], "$"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("parse address for label %q: %w", label, err)
		}

		table[label] = int(addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read label map: %w", err)
	}

	return table, nil
}

// Size returns the compiled size in bytes of the native word with the
// given lowercased name, subtracting the start address from the end
// address. Both labels must be present in the table.
func (t SymbolTable) Size(name string) (int, error) {
	start, ok := t[startPrefix+name]
	if !ok {
		return 0, &SymbolNotFoundError{Label: startPrefix + name}
	}
	end, ok := t[endPrefix+name]
	if !ok {
		return 0, &SymbolNotFoundError{Label: endPrefix + name}
	}
	if end < start {
		return 0, fmt.Errorf("label map inconsistent: %s%s at $%04X lies below %s%s at $%04X",
			endPrefix, name, end, startPrefix, name, start)
	}
	return end - start, nil
}
