package game

import (
	"math/rand"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"

	"github.com/vhernadi/dalek/internal/config"
	"github.com/vhernadi/dalek/internal/core"
	"github.com/vhernadi/dalek/internal/worldmap"
)

// LayerDefault is the single simulation layer; the terminal renderer
// reads the world directly instead of using donburi renderers.
const LayerDefault decs.LayerID = 0

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{components: cs}
}

func (a *archetype) Spawn(e *decs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(LayerDefault, append(a.components, cs...)...))
}

var (
	archDoctor = newArchetype(
		TagDoctor,
		Position,
		Velocity,
		Glyph,
	)
	archDalek = newArchetype(
		TagDalek,
		Position,
		Velocity,
		Glyph,
	)
	archScrap = newArchetype(
		TagScrap,
		Position,
		Glyph,
	)
	archWall = newArchetype(
		TagWall,
		Position,
		Glyph,
	)
	archSession = newArchetype(
		Session,
	)
)

// CreateDoctor spawns the Doctor entity at the given cell.
func CreateDoctor(e *decs.ECS, at worldmap.Coord) *donburi.Entry {
	doctor := archDoctor.Spawn(e)
	Position.SetValue(doctor, PositionData{Row: at.Row, Col: at.Col})
	Glyph.SetValue(doctor, GlyphData{Rune: 'D', Color: uint8(core.ColorBrightGreen)})
	return doctor
}

// CreateDalek spawns a Dalek entity at the given cell.
func CreateDalek(e *decs.ECS, at worldmap.Coord) *donburi.Entry {
	dalek := archDalek.Spawn(e)
	Position.SetValue(dalek, PositionData{Row: at.Row, Col: at.Col})
	Glyph.SetValue(dalek, GlyphData{Rune: 'A', Color: uint8(core.ColorBrightRed)})
	return dalek
}

// CreateScrap spawns a scrap pile at the given cell.
func CreateScrap(e *decs.ECS, at worldmap.Coord) *donburi.Entry {
	scrap := archScrap.Spawn(e)
	Position.SetValue(scrap, PositionData{Row: at.Row, Col: at.Col})
	Glyph.SetValue(scrap, GlyphData{Rune: '#', Color: uint8(core.ColorGray)})
	return scrap
}

// CreateWall spawns a wall tile at the given cell.
func CreateWall(e *decs.ECS, at worldmap.Coord) *donburi.Entry {
	wall := archWall.Spawn(e)
	Position.SetValue(wall, PositionData{Row: at.Row, Col: at.Col})
	Glyph.SetValue(wall, GlyphData{Rune: '*', Color: uint8(core.ColorOrange)})
	return wall
}

// SeedWorld instantiates every entity a WorldLayout describes, plus the
// session singleton. This is the hand-off point between the map loader
// and the ECS: the layout is read, never retained mutably.
func SeedWorld(e *decs.ECS, layout *worldmap.WorldLayout, rules config.RulesConfig, rng *rand.Rand) {
	session := archSession.Spawn(e)
	Session.SetValue(session, SessionData{
		Layout:  layout,
		Rules:   rules,
		RNG:     rng,
		Outcome: OutcomePlaying,
	})

	for c := range layout.Walls {
		CreateWall(e, c)
	}
	for _, c := range layout.Scrap {
		CreateScrap(e, c)
	}
	for _, c := range layout.Daleks {
		CreateDalek(e, c)
	}
	CreateDoctor(e, layout.Doctor)
}
