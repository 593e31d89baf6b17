package game

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/vhernadi/dalek/internal/core"
	"github.com/vhernadi/dalek/internal/worldmap"
)

func newTestGame(t *testing.T, mapText string, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
		MapText: mapText,
	})
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	input := core.NewInputFrame()
	input.Set(a)
	return g.Step(input)
}

func doctorAt(t *testing.T, g *Game) worldmap.Coord {
	t.Helper()
	entry, ok := TagDoctor.First(g.World())
	if !ok {
		t.Fatal("no doctor entity in world")
	}
	return Position.Get(entry).Coord()
}

func dalekSet(g *Game) map[worldmap.Coord]bool {
	set := make(map[worldmap.Coord]bool)
	TagDalek.Each(g.World(), func(entry *donburi.Entry) {
		set[Position.Get(entry).Coord()] = true
	})
	return set
}

func scrapSet(g *Game) map[worldmap.Coord]bool {
	set := make(map[worldmap.Coord]bool)
	TagScrap.Each(g.World(), func(entry *donburi.Entry) {
		set[Position.Get(entry).Coord()] = true
	})
	return set
}

func TestDoctorMovesAndDalekPursues(t *testing.T) {
	g := newTestGame(t, "D...A\n.....\n", 1)

	press(g, core.ActionRight)

	if got := doctorAt(t, g); got != worldmap.C(0, 1) {
		t.Errorf("doctor at %v, expected (0,1)", got)
	}
	if daleks := dalekSet(g); !daleks[worldmap.C(0, 3)] {
		t.Errorf("dalek positions %v, expected one at (0,3)", daleks)
	}

	session := g.Session()
	if session.Round != 1 {
		t.Errorf("Round = %d, expected 1", session.Round)
	}
	if session.Score != g.rules.Scoring.PerRound {
		t.Errorf("Score = %d, expected round bonus %d", session.Score, g.rules.Scoring.PerRound)
	}
}

func TestWallAndEdgeCancelTurn(t *testing.T) {
	g := newTestGame(t, "D*..A\n", 1)

	// Into a wall: turn not consumed, dalek must not move.
	press(g, core.ActionRight)
	if got := doctorAt(t, g); got != worldmap.C(0, 0) {
		t.Errorf("doctor at %v after wall bump, expected (0,0)", got)
	}
	if daleks := dalekSet(g); !daleks[worldmap.C(0, 4)] {
		t.Errorf("dalek moved on a cancelled turn: %v", daleks)
	}

	// Off the grid edge: same.
	press(g, core.ActionUp)
	if g.Session().Round != 0 {
		t.Errorf("Round = %d after two cancelled moves, expected 0", g.Session().Round)
	}
}

func TestScrapBlocksDoctor(t *testing.T) {
	g := newTestGame(t, "D#.A\n", 1)

	press(g, core.ActionRight)
	if got := doctorAt(t, g); got != worldmap.C(0, 0) {
		t.Errorf("doctor walked onto scrap: %v", got)
	}
	if g.Session().Round != 0 {
		t.Error("blocked move should not consume the turn")
	}
}

func TestDalekCrashLeavesScrap(t *testing.T) {
	g := newTestGame(t, "A....\n....D\nA....\n", 1)

	press(g, core.ActionLeft)

	if daleks := dalekSet(g); len(daleks) != 0 {
		t.Fatalf("daleks remaining after crash: %v", daleks)
	}
	if scrap := scrapSet(g); !scrap[worldmap.C(1, 1)] {
		t.Errorf("scrap piles %v, expected one at (1,1)", scrap)
	}

	session := g.Session()
	if session.DaleksDown != 2 {
		t.Errorf("DaleksDown = %d, expected 2", session.DaleksDown)
	}
	want := 2*g.rules.Scoring.PerDalek + g.rules.Scoring.PerRound
	if session.Score != want {
		t.Errorf("Score = %d, expected %d", session.Score, want)
	}
	if state := g.State(); !state.GameOver || !state.Won {
		t.Errorf("expected a won game, got %+v", state)
	}
}

func TestDalekDestroyedByScrap(t *testing.T) {
	g := newTestGame(t, "A#...D\n", 1)

	press(g, core.ActionLeft)

	if daleks := dalekSet(g); len(daleks) != 0 {
		t.Fatalf("dalek survived driving into scrap: %v", daleks)
	}
	session := g.Session()
	if session.DaleksDown != 1 {
		t.Errorf("DaleksDown = %d, expected 1", session.DaleksDown)
	}
	if !g.State().Won {
		t.Error("destroying the last dalek should win the game")
	}
}

func TestDalekCatchesDoctor(t *testing.T) {
	g := newTestGame(t, "A.D\n", 1)

	press(g, core.ActionLeft)

	if state := g.State(); !state.GameOver || state.Won {
		t.Errorf("expected a lost game, got %+v", state)
	}

	// The losing turn awards no survival bonus, and further moves are
	// ignored once the game is over.
	press(g, core.ActionLeft)
	if g.Session().Round != 0 {
		t.Errorf("Round = %d after game over, expected 0", g.Session().Round)
	}
}

// boxedDalekMap pens the single dalek behind walls so it can never
// reach the doctor, leaving teleport behavior isolated.
const boxedDalekMap = "D.........\n..........\n....***...\n....*A*...\n....***...\n"

func TestTeleportBudget(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := newTestGame(t, boxedDalekMap, 7)
	if g.rules.Teleport.Allowed != 3 {
		t.Fatalf("hard preset teleport budget = %d, expected 3", g.rules.Teleport.Allowed)
	}

	for i := 0; i < 3; i++ {
		press(g, core.ActionTeleport)
	}
	session := g.Session()
	if session.TeleportsUsed != 3 {
		t.Fatalf("TeleportsUsed = %d, expected 3", session.TeleportsUsed)
	}
	if session.Round != 3 {
		t.Errorf("Round = %d, each teleport should consume a turn", session.Round)
	}

	// Budget exhausted: no teleport, no turn.
	press(g, core.ActionTeleport)
	session = g.Session()
	if session.TeleportsUsed != 3 || session.Round != 3 {
		t.Errorf("exhausted budget still acted: used=%d round=%d", session.TeleportsUsed, session.Round)
	}
}

func TestTeleportDeterminism(t *testing.T) {
	g1 := newTestGame(t, boxedDalekMap, 99)
	g2 := newTestGame(t, boxedDalekMap, 99)

	press(g1, core.ActionTeleport)
	press(g2, core.ActionTeleport)

	p1, p2 := doctorAt(t, g1), doctorAt(t, g2)
	if p1 != p2 {
		t.Errorf("same seed teleported to %v and %v", p1, p2)
	}
	if p1 == worldmap.C(0, 0) {
		t.Error("teleport must leave the current cell")
	}
	layout := g1.Session().Layout
	if layout.IsWall(p1) || !layout.InBounds(p1) {
		t.Errorf("teleport landed on an illegal cell %v", p1)
	}
}

func TestOrthogonalPursuit(t *testing.T) {
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := newTestGame(t, "A....\n.....\n.....\n....D\n", 1)

	press(g, core.ActionLeft)

	// No diagonals on easy: the dalek closes the longer axis first.
	if daleks := dalekSet(g); !daleks[worldmap.C(1, 0)] {
		t.Errorf("dalek positions %v, expected one at (1,0)", daleks)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, "A.D\n", 1)

	press(g, core.ActionLeft)
	if !g.State().GameOver {
		t.Fatal("expected game over before restart")
	}

	press(g, core.ActionRestart)

	state := g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("restart did not reset the session: %+v", state)
	}
	if got := doctorAt(t, g); got != worldmap.C(0, 2) {
		t.Errorf("doctor at %v after restart, expected map position (0,2)", got)
	}
	if daleks := dalekSet(g); !daleks[worldmap.C(0, 0)] {
		t.Errorf("dalek positions %v after restart, expected one at (0,0)", daleks)
	}
}

func TestPauseBlocksTurns(t *testing.T) {
	g := newTestGame(t, "D...A\n", 1)

	press(g, core.ActionPause)
	press(g, core.ActionRight)
	if g.Session().Round != 0 {
		t.Error("paused game still took a turn")
	}

	press(g, core.ActionPause)
	press(g, core.ActionRight)
	if g.Session().Round != 1 {
		t.Error("unpaused game should take turns again")
	}
}

func TestRenderShowsEntities(t *testing.T) {
	g := newTestGame(t, "D...A\n.....\n", 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := map[rune]bool{}
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			found[screen.Get(x, y)] = true
		}
	}
	if !found['D'] || !found['A'] {
		t.Errorf("rendered screen missing entity glyphs:\n%s", screen.String())
	}
}
