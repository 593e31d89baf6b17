// Package worldmap defines the Dalek map text format: the tile alphabet
// and the loader that turns raw map text into a validated WorldLayout.
//
// A map file is exactly the grid, one row per line, no headers:
//
//	*******
//	*.A...*
//	*..#..*
//	*...D.*
//	*******
//
// '.' is the designated empty tile; a space is accepted as an alias on
// input so hand-edited maps with trailing blanks still load.
package worldmap

// Tile is a single cell kind in a map. The alphabet is closed; the
// loader rejects anything outside it.
type Tile uint8

const (
	TileFloor Tile = iota // '.' walkable ground
	TileWall              // '*' collidable obstacle
	TileScrap             // '#' scrap pile, lethal to Daleks
	TileDalek             // 'A' Dalek spawn point
	TileDoctor            // 'D' the Doctor's spawn point
)

// Tile characters as they appear in map files.
const (
	CharFloor  = '.'
	CharWall   = '*'
	CharScrap  = '#'
	CharDalek  = 'A'
	CharDoctor = 'D'
)

// ClassifyTile maps a map-file character to its Tile. The second return
// is false for characters outside the alphabet.
func ClassifyTile(ch rune) (Tile, bool) {
	switch ch {
	case CharFloor, ' ':
		return TileFloor, true
	case CharWall:
		return TileWall, true
	case CharScrap:
		return TileScrap, true
	case CharDalek:
		return TileDalek, true
	case CharDoctor:
		return TileDoctor, true
	default:
		return TileFloor, false
	}
}

// Char returns the canonical map-file character for a tile.
func (t Tile) Char() rune {
	switch t {
	case TileWall:
		return CharWall
	case TileScrap:
		return CharScrap
	case TileDalek:
		return CharDalek
	case TileDoctor:
		return CharDoctor
	default:
		return CharFloor
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileScrap:
		return "scrap"
	case TileDalek:
		return "dalek"
	case TileDoctor:
		return "doctor"
	default:
		return "unknown"
	}
}
