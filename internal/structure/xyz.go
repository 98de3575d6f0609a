// Package structure resolves calculation folders to structure identities so
// near-duplicate folders collapse to one representative per chemical
// structure. Identity comes from the molecular topology when the geometry is
// readable and from a normalized folder name otherwise; every folder always
// gets a key.
package structure

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Atom is one element symbol with cartesian coordinates in angstrom.
type Atom struct {
	Symbol  string
	X, Y, Z float64
}

var errEmptyGeometry = errors.New("geometry file holds no atoms")

// ReadXYZ parses an XYZ geometry file. Malformed coordinate lines are
// skipped; the declared atom count on the first line is not trusted.
func ReadXYZ(path string) ([]Atom, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geometry: %w", err)
	}
	defer file.Close()

	var atoms []Atom
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if line <= 2 {
			// Atom count and comment header.
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		z, errZ := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		atoms = append(atoms, Atom{Symbol: normalizeSymbol(fields[0]), X: x, Y: y, Z: z})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	if len(atoms) == 0 {
		return nil, errEmptyGeometry
	}
	return atoms, nil
}

func normalizeSymbol(raw string) string {
	symbol := strings.TrimSpace(raw)
	if symbol == "" {
		return symbol
	}
	symbol = strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
	return symbol
}
