package worldmap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for cardinality failures, checked after a full scan.
var (
	// ErrEmptyMap is returned when the input contains no rows.
	ErrEmptyMap = errors.New("worldmap: map is empty")

	// ErrNoDoctor is returned when no 'D' tile is present.
	ErrNoDoctor = errors.New("worldmap: map has no Doctor spawn ('D')")

	// ErrNoDaleks is returned when no 'A' tile is present.
	ErrNoDaleks = errors.New("worldmap: map has no Dalek spawns ('A')")
)

// RaggedRowError reports a row whose length differs from the first row.
type RaggedRowError struct {
	Row  int // offending row index, zero-based
	Want int // length of the first row
	Got  int // length of the offending row
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("worldmap: row %d has length %d, want %d", e.Row, e.Got, e.Want)
}

// UnknownTileError reports a character outside the tile alphabet.
type UnknownTileError struct {
	Row  int
	Col  int
	Char rune
}

func (e *UnknownTileError) Error() string {
	return fmt.Sprintf("worldmap: unknown tile %q at (%d,%d)", e.Char, e.Row, e.Col)
}

// DuplicateDoctorError reports more than one 'D' tile. Coords lists
// every Doctor spawn found, in reading order.
type DuplicateDoctorError struct {
	Coords []Coord
}

func (e *DuplicateDoctorError) Error() string {
	locs := make([]string, len(e.Coords))
	for i, c := range e.Coords {
		locs[i] = c.String()
	}
	return fmt.Sprintf("worldmap: map has %d Doctor spawns at %s, want exactly one",
		len(e.Coords), strings.Join(locs, ", "))
}

// Parse parses a complete map text blob into a WorldLayout.
// Trailing newlines are ignored; line endings may be LF or CRLF.
func Parse(text string) (*WorldLayout, error) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyMap
	}
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines parses a map given as a sequence of rows.
//
// The scan is a single pass in reading order. Structural and lexical
// problems (ragged rows, unknown characters) abort the scan at the
// first offending cell; the spawn-count invariants are only checked
// once the whole grid has scanned cleanly.
func ParseLines(lines []string) (*WorldLayout, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrEmptyMap
	}

	layout := &WorldLayout{
		Width:  width,
		Height: len(lines),
		Walls:  make(map[Coord]struct{}),
	}
	var doctors []Coord

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, &RaggedRowError{Row: row, Want: width, Got: len(runes)}
		}
		for col, ch := range runes {
			tile, ok := ClassifyTile(ch)
			if !ok {
				return nil, &UnknownTileError{Row: row, Col: col, Char: ch}
			}
			at := C(row, col)
			switch tile {
			case TileWall:
				layout.Walls[at] = struct{}{}
			case TileScrap:
				layout.Scrap = append(layout.Scrap, at)
			case TileDalek:
				layout.Daleks = append(layout.Daleks, at)
			case TileDoctor:
				doctors = append(doctors, at)
			}
		}
	}

	switch {
	case len(doctors) == 0:
		return nil, ErrNoDoctor
	case len(doctors) > 1:
		return nil, &DuplicateDoctorError{Coords: doctors}
	}
	if len(layout.Daleks) == 0 {
		return nil, ErrNoDaleks
	}

	layout.Doctor = doctors[0]
	return layout, nil
}
