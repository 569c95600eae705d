// Package inventory reads newline-delimited item name exports. Exports
// carry a single header line; the rest is one item name per line, raw,
// possibly repeated.
package inventory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns the item names from r in file order, header line dropped,
// blanks skipped, duplicates collapsed to their first occurrence.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var names []string
	seen := make(map[string]bool)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("inventory: scan: %w", err)
	}
	return names, nil
}

// ReadFile reads an item name export from disk.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("inventory: open %q: %w", path, err)
	}
	defer f.Close()
	names, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("inventory: read %q: %w", path, err)
	}
	return names, nil
}
