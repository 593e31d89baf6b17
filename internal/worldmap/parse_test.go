package worldmap

import (
	"errors"
	"testing"
)

func TestParseSmallMap(t *testing.T) {
	layout, err := Parse("D*\nA.")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if layout.Width != 2 || layout.Height != 2 {
		t.Errorf("Dimensions = %dx%d, expected 2x2", layout.Width, layout.Height)
	}
	if layout.Doctor != C(0, 0) {
		t.Errorf("Doctor = %v, expected (0,0)", layout.Doctor)
	}
	if !layout.IsWall(C(0, 1)) {
		t.Error("Expected wall at (0,1)")
	}
	if len(layout.Walls) != 1 {
		t.Errorf("Wall count = %d, expected 1", len(layout.Walls))
	}
	if len(layout.Daleks) != 1 || layout.Daleks[0] != C(1, 0) {
		t.Errorf("Daleks = %v, expected [(1,0)]", layout.Daleks)
	}
}

func TestParseReadingOrder(t *testing.T) {
	layout, err := Parse("A.A\n.D.\nA.A")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := []Coord{C(0, 0), C(0, 2), C(2, 0), C(2, 2)}
	if len(layout.Daleks) != len(want) {
		t.Fatalf("Dalek count = %d, expected %d", len(layout.Daleks), len(want))
	}
	for i, c := range want {
		if layout.Daleks[i] != c {
			t.Errorf("Daleks[%d] = %v, expected %v (reading order)", i, layout.Daleks[i], c)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty input",
			input: "",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrEmptyMap) {
					t.Errorf("expected ErrEmptyMap, got %v", err)
				}
			},
		},
		{
			name:  "only newlines",
			input: "\n\n",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrEmptyMap) {
					t.Errorf("expected ErrEmptyMap, got %v", err)
				}
			},
		},
		{
			name:  "missing doctor",
			input: "A*\n..",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrNoDoctor) {
					t.Errorf("expected ErrNoDoctor, got %v", err)
				}
			},
		},
		{
			name:  "no daleks",
			input: "D*\n..",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrNoDaleks) {
					t.Errorf("expected ErrNoDaleks, got %v", err)
				}
			},
		},
		{
			name:  "duplicate doctor",
			input: "DA\n.D",
			check: func(t *testing.T, err error) {
				var dup *DuplicateDoctorError
				if !errors.As(err, &dup) {
					t.Fatalf("expected DuplicateDoctorError, got %v", err)
				}
				if len(dup.Coords) != 2 || dup.Coords[0] != C(0, 0) || dup.Coords[1] != C(1, 1) {
					t.Errorf("Coords = %v, expected [(0,0) (1,1)]", dup.Coords)
				}
			},
		},
		{
			name:  "ragged row",
			input: "D*\nA",
			check: func(t *testing.T, err error) {
				var ragged *RaggedRowError
				if !errors.As(err, &ragged) {
					t.Fatalf("expected RaggedRowError, got %v", err)
				}
				if ragged.Row != 1 {
					t.Errorf("Row = %d, expected 1", ragged.Row)
				}
				if ragged.Want != 2 || ragged.Got != 1 {
					t.Errorf("Want/Got = %d/%d, expected 2/1", ragged.Want, ragged.Got)
				}
			},
		},
		{
			name:  "unknown tile",
			input: "D*\nAX",
			check: func(t *testing.T, err error) {
				var unknown *UnknownTileError
				if !errors.As(err, &unknown) {
					t.Fatalf("expected UnknownTileError, got %v", err)
				}
				if unknown.Row != 1 || unknown.Col != 1 || unknown.Char != 'X' {
					t.Errorf("got (%d,%d) %q, expected (1,1) 'X'", unknown.Row, unknown.Col, unknown.Char)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			tc.check(t, err)
		})
	}
}

func TestStructuralErrorsWinOverCardinality(t *testing.T) {
	// No doctor AND an unknown character: the lexical error surfaces
	// because it is detected during the scan.
	_, err := Parse("A?\n..")
	var unknown *UnknownTileError
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownTileError to short-circuit, got %v", err)
	}
}

func TestParseDeterministic(t *testing.T) {
	const text = "*****\n*A.#*\n*.D.*\n*****\n"

	a, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !a.Equal(b) {
		t.Error("Parsing identical text twice should give equal layouts")
	}
}

func TestTileAccounting(t *testing.T) {
	layout, err := Parse("*****\n*A.#*\n*.D.*\n*****")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	total := len(layout.Walls) + len(layout.Scrap) + len(layout.Daleks) + 1 + layout.FloorCount()
	if total != layout.Width*layout.Height {
		t.Errorf("Tile accounting mismatch: %d cells classified, grid has %d",
			total, layout.Width*layout.Height)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	const text = "*******\n*.A.#.*\n*..D..*\n*.A...*\n*******"

	layout, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	reparsed, err := Parse(layout.Serialize())
	if err != nil {
		t.Fatalf("Parse(Serialize()) failed: %v", err)
	}

	if !layout.Equal(reparsed) {
		t.Errorf("Round trip changed the layout:\noriginal:\n%s\nreparsed:\n%s",
			layout.Serialize(), reparsed.Serialize())
	}
}

func TestSpaceIsFloorAlias(t *testing.T) {
	layout, err := Parse("D A\n.*.")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if layout.TileAt(C(0, 1)) != TileFloor {
		t.Error("Space should classify as floor")
	}
	// Serialization emits the canonical '.' in its place.
	if layout.Serialize() != "D.A\n.*." {
		t.Errorf("Serialize() = %q, expected canonical floor chars", layout.Serialize())
	}
}

func TestCRLFInput(t *testing.T) {
	layout, err := Parse("D*\r\nA.\r\n")
	if err != nil {
		t.Fatalf("Parse() with CRLF failed: %v", err)
	}
	if layout.Width != 2 || layout.Height != 2 {
		t.Errorf("Dimensions = %dx%d, expected 2x2", layout.Width, layout.Height)
	}
}

func TestDefaultMap(t *testing.T) {
	layout, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if len(layout.Daleks) == 0 {
		t.Error("Default map should have at least one Dalek")
	}
	if !layout.InBounds(layout.Doctor) {
		t.Error("Doctor spawn should be in bounds")
	}

	// Lazy parse is memoized; the same pointer comes back.
	again, err := Default()
	if err != nil {
		t.Fatalf("Default() second call failed: %v", err)
	}
	if layout != again {
		t.Error("Default() should return the memoized layout")
	}
}
