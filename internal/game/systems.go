package game

import (
	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"

	"github.com/vhernadi/dalek/internal/core"
	"github.com/vhernadi/dalek/internal/worldmap"
)

// sessionOf returns the singleton session state. Panics if the world
// was not seeded; every system runs after SeedWorld.
func sessionOf(e *decs.ECS) *SessionData {
	entry, ok := Session.First(e.World)
	if !ok {
		panic("game: world has no session entity")
	}
	return Session.Get(entry)
}

// scrapCells returns the current scrap pile positions.
func scrapCells(e *decs.ECS) map[worldmap.Coord]struct{} {
	cells := make(map[worldmap.Coord]struct{})
	TagScrap.Each(e.World, func(entry *donburi.Entry) {
		cells[Position.Get(entry).Coord()] = struct{}{}
	})
	return cells
}

// dalekCells returns the current Dalek positions.
func dalekCells(e *decs.ECS) map[worldmap.Coord]struct{} {
	cells := make(map[worldmap.Coord]struct{})
	TagDalek.Each(e.World, func(entry *donburi.Entry) {
		cells[Position.Get(entry).Coord()] = struct{}{}
	})
	return cells
}

// UpdateDoctor resolves the Doctor's intent for this turn. A move into
// a wall, scrap pile or the grid edge is cancelled and does not consume
// the turn, matching the original game's cancel_move behavior.
func UpdateDoctor(e *decs.ECS) {
	session := sessionOf(e)
	session.TurnTaken = false
	if session.Outcome != OutcomePlaying {
		return
	}

	intent := session.Intent
	session.Intent = Intent{}
	if !intent.Move && !intent.Teleport {
		return
	}

	doctor, ok := TagDoctor.First(e.World)
	if !ok {
		return
	}
	pos := Position.Get(doctor)
	layout := session.Layout

	if intent.Teleport {
		budget := session.Rules.Teleport.Allowed
		if budget > 0 && session.TeleportsUsed >= budget {
			return
		}

		target, ok := randomFreeCell(e, session)
		if !ok {
			return
		}
		pos.Row, pos.Col = target.Row, target.Col
		session.TeleportsUsed++
		session.TurnTaken = true
		return
	}

	target := worldmap.C(pos.Row+intent.DRow, pos.Col+intent.DCol)
	if !layout.InBounds(target) || layout.IsWall(target) {
		return
	}
	if _, blocked := scrapCells(e)[target]; blocked {
		return
	}

	pos.Row, pos.Col = target.Row, target.Col
	session.TurnTaken = true
}

// randomFreeCell picks a uniformly random cell that is neither wall,
// scrap, Dalek nor the Doctor's current position. Candidate order is
// reading order, so the choice is deterministic for a given seed.
func randomFreeCell(e *decs.ECS, session *SessionData) (worldmap.Coord, bool) {
	layout := session.Layout
	scrap := scrapCells(e)
	daleks := dalekCells(e)

	doctor, _ := TagDoctor.First(e.World)
	current := Position.Get(doctor).Coord()

	var candidates []worldmap.Coord
	for row := 0; row < layout.Height; row++ {
		for col := 0; col < layout.Width; col++ {
			c := worldmap.C(row, col)
			if c == current || layout.IsWall(c) {
				continue
			}
			if _, ok := scrap[c]; ok {
				continue
			}
			if _, ok := daleks[c]; ok {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return worldmap.Coord{}, false
	}
	return candidates[session.RNG.Intn(len(candidates))], true
}

// UpdateDaleks runs the pursuit step: after a consumed Doctor turn each
// Dalek takes one step toward the Doctor, then crashes are resolved.
// Two Daleks meeting become a scrap pile; a Dalek entering scrap is
// destroyed; a Dalek reaching the Doctor ends the game.
func UpdateDaleks(e *decs.ECS) {
	session := sessionOf(e)
	if session.Outcome != OutcomePlaying || !session.TurnTaken {
		return
	}

	doctor, ok := TagDoctor.First(e.World)
	if !ok {
		return
	}
	doctorPos := Position.Get(doctor).Coord()
	layout := session.Layout
	scrap := scrapCells(e)

	// Final cell -> every Dalek ending the turn there, movers and
	// stationary alike, so a mover slamming into a parked Dalek is
	// still a crash.
	arrivals := make(map[worldmap.Coord][]*donburi.Entry)
	order := make([]worldmap.Coord, 0)

	TagDalek.Each(e.World, func(entry *donburi.Entry) {
		from := Position.Get(entry).Coord()
		to := pursuitStep(layout, from, doctorPos, session.Rules.Movement.DiagonalDaleks)
		Velocity.SetValue(entry, VelocityData{DRow: to.Row - from.Row, DCol: to.Col - from.Col})

		if _, seen := arrivals[to]; !seen {
			order = append(order, to)
		}
		arrivals[to] = append(arrivals[to], entry)
	})

	var destroyed []*donburi.Entry
	var newScrap []worldmap.Coord

	for _, cell := range order {
		entries := arrivals[cell]

		if _, lethal := scrap[cell]; lethal {
			destroyed = append(destroyed, entries...)
			continue
		}
		if len(entries) > 1 {
			// A crash on the Doctor's cell still exterminates.
			if cell == doctorPos {
				session.Outcome = OutcomeLost
			}
			destroyed = append(destroyed, entries...)
			if session.Rules.Scrap.Enabled {
				newScrap = append(newScrap, cell)
			}
			continue
		}

		pos := Position.Get(entries[0])
		pos.Row, pos.Col = cell.Row, cell.Col
		if cell == doctorPos {
			session.Outcome = OutcomeLost
		}
	}

	for _, entry := range destroyed {
		e.World.Remove(entry.Entity())
		session.DaleksDown++
		session.Score += session.Rules.Scoring.PerDalek
	}
	for _, cell := range newScrap {
		CreateScrap(e, cell)
	}
}

// pursuitStep returns the cell a Dalek moves to this turn. Daleks walk
// straight at the Doctor with no pathfinding; a wall in the way makes
// them fall back to a single-axis step, or stand still when boxed in.
func pursuitStep(layout *worldmap.WorldLayout, from, target worldmap.Coord, diagonal bool) worldmap.Coord {
	dRow := core.Sign(target.Row - from.Row)
	dCol := core.Sign(target.Col - from.Col)

	var candidates []worldmap.Coord
	if diagonal {
		candidates = append(candidates, worldmap.C(from.Row+dRow, from.Col+dCol))
		candidates = append(candidates, worldmap.C(from.Row+dRow, from.Col))
		candidates = append(candidates, worldmap.C(from.Row, from.Col+dCol))
	} else {
		// Close the longer axis first.
		if core.Abs(target.Row-from.Row) >= core.Abs(target.Col-from.Col) {
			candidates = append(candidates, worldmap.C(from.Row+dRow, from.Col))
			candidates = append(candidates, worldmap.C(from.Row, from.Col+dCol))
		} else {
			candidates = append(candidates, worldmap.C(from.Row, from.Col+dCol))
			candidates = append(candidates, worldmap.C(from.Row+dRow, from.Col))
		}
	}

	for _, c := range candidates {
		if c == from {
			continue
		}
		if layout.InBounds(c) && !layout.IsWall(c) {
			return c
		}
	}
	return from
}

// UpdateObjective closes out the turn: win when no Dalek remains, and
// award the survival bonus for a completed round.
func UpdateObjective(e *decs.ECS) {
	session := sessionOf(e)
	if !session.TurnTaken {
		return
	}

	if session.Outcome == OutcomePlaying {
		session.Round++
		session.Score += session.Rules.Scoring.PerRound

		remaining := 0
		TagDalek.Each(e.World, func(*donburi.Entry) {
			remaining++
		})
		if remaining == 0 {
			session.Outcome = OutcomeWon
		}
	}
}
