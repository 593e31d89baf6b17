package game

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/vhernadi/dalek/internal/config"
	"github.com/vhernadi/dalek/internal/worldmap"
)

// PositionData is a grid position component.
type PositionData struct {
	Row int
	Col int
}

// Coord converts the position to a worldmap coordinate.
func (p PositionData) Coord() worldmap.Coord {
	return worldmap.C(p.Row, p.Col)
}

// VelocityData is the step a mover intends to take this turn.
type VelocityData struct {
	DRow int
	DCol int
}

// GlyphData is how an entity is drawn on the terminal grid.
type GlyphData struct {
	Rune  rune
	Color uint8
}

// Outcome tracks whether a session is still running.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// Intent is the Doctor's pending action for the current turn.
type Intent struct {
	Move     bool
	Teleport bool
	DRow     int
	DCol     int
}

// SessionData is the singleton component carrying per-session state
// shared by all systems: the board, rules, RNG and running totals.
type SessionData struct {
	Layout *worldmap.WorldLayout
	Rules  config.RulesConfig
	RNG    *rand.Rand

	Intent    Intent
	TurnTaken bool // set by the doctor system when the intent was legal

	Round         int
	Score         int
	DaleksDown    int
	TeleportsUsed int
	Outcome       Outcome
}

// Component types.
var (
	Position = donburi.NewComponentType[PositionData]()
	Velocity = donburi.NewComponentType[VelocityData]()
	Glyph    = donburi.NewComponentType[GlyphData]()
	Session  = donburi.NewComponentType[SessionData]()
)

// Entity tags.
var (
	TagDoctor = donburi.NewTag().SetName("Doctor")
	TagDalek  = donburi.NewTag().SetName("Dalek")
	TagScrap  = donburi.NewTag().SetName("Scrap")
	TagWall   = donburi.NewTag().SetName("Wall")
)
