package game

import (
	"fmt"
	"math/rand"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"

	"github.com/vhernadi/dalek/internal/config"
	"github.com/vhernadi/dalek/internal/core"
	"github.com/vhernadi/dalek/internal/registry"
	"github.com/vhernadi/dalek/internal/worldmap"
)

// Game implements the Dalek pursuit game on top of an ECS world.
// The simulation is turn-based: nothing moves until the Doctor acts.
type Game struct {
	ecs   *decs.ECS
	rules config.RulesConfig
	rng   *rand.Rand

	// Map state
	mapWidth   int
	mapHeight  int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty, set by the CLI before
// the platform creates the game.
var (
	rulesPath        string
	difficultyPreset string
)

// SetRulesPath sets the rules config file path.
func SetRulesPath(path string) {
	rulesPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Dalek game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dalek", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "dalek"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dalek"
}

// Reset initializes/restarts the game. An unparsable MapText falls back
// to the bundled default map; the menu validates player-supplied maps
// before they get here.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	layout, err := resolveLayout(cfg.MapText)
	if err != nil {
		layout, _ = worldmap.Default()
	}
	g.mapWidth = layout.Width
	g.mapHeight = layout.Height

	rules, err := config.LoadRules(rulesPath)
	if err != nil {
		rules = config.DefaultRules()
	}
	g.rules = config.ApplyPreset(rules, config.DifficultyPreset(difficultyPreset))

	g.ecs = decs.NewECS(donburi.NewWorld())
	g.ecs.AddSystem(UpdateDoctor)
	g.ecs.AddSystem(UpdateDaleks)
	g.ecs.AddSystem(UpdateObjective)
	SeedWorld(g.ecs, layout, g.rules, g.rng)

	requiredW := g.mapWidth + 2
	requiredH := g.mapHeight + g.hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	if !g.tooSmall {
		g.mapOffsetX = (g.screenW - g.mapWidth) / 2
		g.mapOffsetY = g.hudHeight
	}
}

// resolveLayout parses the supplied map text, or loads the bundled
// default when none was supplied.
func resolveLayout(text string) (*worldmap.WorldLayout, error) {
	if text == "" {
		return worldmap.Default()
	}
	return worldmap.Parse(text)
}

// Session exposes the session state for tests and the platform layer.
func (g *Game) Session() *SessionData {
	return sessionOf(g.ecs)
}

// World exposes the ECS for tests.
func (g *Game) World() donburi.World {
	return g.ecs.World
}

// Step consumes one input frame. Movement and teleport inputs become
// the Doctor's intent for the turn; ticks without input do nothing.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	session := sessionOf(g.ecs)

	if input.Has(core.ActionRestart) && session.Outcome != OutcomePlaying {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			MapText: session.Layout.Serialize(),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || session.Outcome != OutcomePlaying {
		return core.StepResult{State: g.State()}
	}

	intent := intentFrom(input)
	if intent.Move || intent.Teleport {
		session.Intent = intent
		g.ecs.Update()
	}

	return core.StepResult{State: g.State()}
}

// intentFrom maps pressed actions to a turn intent.
func intentFrom(input core.InputFrame) Intent {
	switch {
	case input.Has(core.ActionTeleport):
		return Intent{Teleport: true}
	case input.Has(core.ActionUp):
		return Intent{Move: true, DRow: -1}
	case input.Has(core.ActionDown):
		return Intent{Move: true, DRow: 1}
	case input.Has(core.ActionLeft):
		return Intent{Move: true, DCol: -1}
	case input.Has(core.ActionRight):
		return Intent{Move: true, DCol: 1}
	}
	return Intent{}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderEntities(dst)

	session := sessionOf(g.ecs)
	switch {
	case session.Outcome == OutcomeWon:
		g.renderOverlay(dst, "All Daleks destroyed!", fmt.Sprintf("Final Score: %d — press R to restart", session.Score))
	case session.Outcome == OutcomeLost:
		g.renderOverlay(dst, "Exterminated!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	session := sessionOf(g.ecs)

	teleports := "∞"
	if budget := g.rules.Teleport.Allowed; budget > 0 {
		teleports = fmt.Sprintf("%d/%d", budget-session.TeleportsUsed, budget)
	}
	hud := fmt.Sprintf(" Dalek — Score: %d  Round: %d  Destroyed: %d  Teleports: %s",
		session.Score, session.Round, session.DaleksDown, teleports)

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderEntities draws every positioned entity through its glyph.
func (g *Game) renderEntities(dst *core.Screen) {
	draw := func(entry *donburi.Entry) {
		pos := Position.Get(entry)
		glyph := Glyph.Get(entry)
		x := g.mapOffsetX + pos.Col
		y := g.mapOffsetY + pos.Row
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, glyph.Rune, core.Color(glyph.Color))
		}
	}

	// Doctor last so it wins the cell when a Dalek just caught it.
	TagWall.Each(g.ecs.World, draw)
	TagScrap.Each(g.ecs.World, draw)
	TagDalek.Each(g.ecs.World, draw)
	TagDoctor.Each(g.ecs.World, draw)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	session := sessionOf(g.ecs)
	return core.GameState{
		Score:      session.Score,
		Rounds:     session.Round,
		DaleksDown: session.DaleksDown,
		GameOver:   session.Outcome != OutcomePlaying,
		Won:        session.Outcome == OutcomeWon,
		Paused:     g.paused,
	}
}
