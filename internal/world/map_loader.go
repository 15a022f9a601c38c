package world

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseGrid builds a grid from glyph rows ('#', '.', 'X', 'D').
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map contains no rows")
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("map row 1 is empty")
	}
	grid := NewGrid(width, len(rows))

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("line %d has inconsistent width: expected %d, got %d", y+1, width, len(row))
		}
		for x := 0; x < width; x++ {
			kind, ok := cellKindFromGlyph(row[x])
			if !ok {
				return nil, fmt.Errorf("line %d column %d: unknown glyph %q", y+1, x+1, row[x])
			}
			grid.Cells[y][x] = kind
		}
	}
	return grid, nil
}

// LoadGrid reads a map file. Blank lines and lines starting with "//" are
// skipped.
func LoadGrid(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer file.Close()

	var rows []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}

	grid, err := ParseGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", path, err)
	}
	return grid, nil
}
