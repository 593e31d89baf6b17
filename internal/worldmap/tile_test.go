package worldmap

import "testing"

func TestClassifyTile(t *testing.T) {
	tests := []struct {
		ch   rune
		tile Tile
		ok   bool
	}{
		{'.', TileFloor, true},
		{' ', TileFloor, true},
		{'*', TileWall, true},
		{'#', TileScrap, true},
		{'A', TileDalek, true},
		{'D', TileDoctor, true},
		{'X', TileFloor, false},
		{'a', TileFloor, false},
		{'d', TileFloor, false},
		{'0', TileFloor, false},
	}

	for _, tc := range tests {
		tile, ok := ClassifyTile(tc.ch)
		if ok != tc.ok {
			t.Errorf("ClassifyTile(%q) ok = %v, expected %v", tc.ch, ok, tc.ok)
			continue
		}
		if ok && tile != tc.tile {
			t.Errorf("ClassifyTile(%q) = %v, expected %v", tc.ch, tile, tc.tile)
		}
	}
}

func TestTileCharRoundTrip(t *testing.T) {
	for _, tile := range []Tile{TileFloor, TileWall, TileScrap, TileDalek, TileDoctor} {
		back, ok := ClassifyTile(tile.Char())
		if !ok || back != tile {
			t.Errorf("ClassifyTile(%v.Char()) = %v, %v; expected the same tile", tile, back, ok)
		}
	}
}
