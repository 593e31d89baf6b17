package worldmap

import (
	"fmt"
	"strings"
)

// Coord is a zero-indexed grid coordinate. Row increases downward,
// Col increases rightward.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// WorldLayout is the validated result of parsing a map: grid dimensions
// plus the initial position of every entity. It is constructed once per
// game session, never mutated afterwards, and therefore safe to share
// across goroutines without synchronization.
type WorldLayout struct {
	Width  int
	Height int

	// Walls is the set of collidable cells.
	Walls map[Coord]struct{}

	// Scrap holds scrap pile cells in reading order.
	Scrap []Coord

	// Daleks holds Dalek spawn points in reading order
	// (top-to-bottom, left-to-right).
	Daleks []Coord

	// Doctor is the single player spawn point.
	Doctor Coord
}

// InBounds reports whether the coordinate lies inside the grid.
func (w *WorldLayout) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < w.Height && c.Col >= 0 && c.Col < w.Width
}

// IsWall reports whether the cell is a wall.
func (w *WorldLayout) IsWall(c Coord) bool {
	_, ok := w.Walls[c]
	return ok
}

// TileAt returns the tile occupying a cell in the original map text.
func (w *WorldLayout) TileAt(c Coord) Tile {
	if w.IsWall(c) {
		return TileWall
	}
	if c == w.Doctor {
		return TileDoctor
	}
	for _, d := range w.Daleks {
		if d == c {
			return TileDalek
		}
	}
	for _, s := range w.Scrap {
		if s == c {
			return TileScrap
		}
	}
	return TileFloor
}

// FloorCount returns the number of empty cells. Together with walls,
// scrap, daleks and the doctor it accounts for every cell of the grid.
func (w *WorldLayout) FloorCount() int {
	return w.Width*w.Height - len(w.Walls) - len(w.Scrap) - len(w.Daleks) - 1
}

// Serialize renders the layout back to canonical map text. Parsing the
// result yields a layout equal to the receiver.
func (w *WorldLayout) Serialize() string {
	rows := make([][]rune, w.Height)
	for r := range rows {
		rows[r] = make([]rune, w.Width)
		for c := range rows[r] {
			rows[r][c] = CharFloor
		}
	}
	for c := range w.Walls {
		rows[c.Row][c.Col] = CharWall
	}
	for _, c := range w.Scrap {
		rows[c.Row][c.Col] = CharScrap
	}
	for _, c := range w.Daleks {
		rows[c.Row][c.Col] = CharDalek
	}
	rows[w.Doctor.Row][w.Doctor.Col] = CharDoctor

	var sb strings.Builder
	sb.Grow(w.Height * (w.Width + 1))
	for r, row := range rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Equal reports whether two layouts describe the same world.
func (w *WorldLayout) Equal(other *WorldLayout) bool {
	if w.Width != other.Width || w.Height != other.Height {
		return false
	}
	if w.Doctor != other.Doctor {
		return false
	}
	if len(w.Walls) != len(other.Walls) {
		return false
	}
	for c := range w.Walls {
		if _, ok := other.Walls[c]; !ok {
			return false
		}
	}
	if len(w.Scrap) != len(other.Scrap) || len(w.Daleks) != len(other.Daleks) {
		return false
	}
	for i, c := range w.Scrap {
		if other.Scrap[i] != c {
			return false
		}
	}
	for i, c := range w.Daleks {
		if other.Daleks[i] != c {
			return false
		}
	}
	return true
}
