package beam

import "github.com/aockit/aoc"

// Simulation drives beams through a grid. It owns every beam it has seen, an
// index of how many beams currently sit at each position, and the worklist of
// beams still to be run.
type Simulation struct {
	Grid  *Grid
	Beams []*Beam

	at      map[aoc.Pt]int
	pending aoc.Queue[*Beam]
}

// NewSimulation returns a simulation over g that already knows about beams.
func NewSimulation(g *Grid, beams ...*Beam) *Simulation {
	s := &Simulation{
		Grid: g,
		at:   make(map[aoc.Pt]int),
	}
	for _, b := range beams {
		s.add(b)
	}
	return s
}

func (s *Simulation) add(b *Beam) {
	s.Beams = append(s.Beams, b)
	s.at[b.Pos]++
	s.pending.Push(b)
}

// Occupied reports whether any beam is currently at p.
func (s *Simulation) Occupied(p aoc.Pt) bool {
	return s.at[p] > 0
}

func (s *Simulation) moveTo(b *Beam, p aoc.Pt) {
	switch n := s.at[b.Pos]; {
	case n > 1:
		s.at[b.Pos]--
	case n == 1:
		delete(s.at, b.Pos)
	}
	b.Pos = p
	s.at[p]++
}

// place creates a beam at p unless one is already there or p is outside
// the grid. A beam placed on a splitter is ended at once without striking
// it.
func (s *Simulation) place(p aoc.Pt) *Beam {
	if !s.Grid.Rows.InBounds(p) || s.Occupied(p) {
		return nil
	}
	b := &Beam{Pos: p, Ended: s.Grid.isSplitter(p)}
	s.add(b)
	return b
}

// SpawnInitial places a beam directly below every starter and returns the
// beams it created.
func (s *Simulation) SpawnInitial() []*Beam {
	var out []*Beam
	for _, p := range s.Grid.Starters() {
		if b := s.place(p.Add(aoc.Down)); b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Advance moves b down one row. It is a no-op for an ended beam. A beam
// not yet known to s is tracked from its new position on.
//
// A beam ends when there is no row below it, when it moves past the end of
// the row below, or when it moves onto a splitter. Moving onto a splitter
// counts a split the first time that splitter is struck and places new beams
// on either side of it.
func (s *Simulation) Advance(b *Beam) {
	if b.Ended {
		return
	}
	g := s.Grid
	if b.Pos.Y+1 >= len(g.Rows) {
		b.Ended = true
		return
	}
	s.moveTo(b, b.Pos.Add(aoc.Down))

	c, ok := g.cell(b.Pos)
	if !ok {
		b.Ended = true
		return
	}
	if c.Kind != Splitter {
		return
	}
	b.Ended = true
	g.strike(b.Pos)
	s.place(b.Pos.Add(aoc.Left))
	s.place(b.Pos.Add(aoc.Right))
}

// Run drives every pending beam to the end, oldest first, including beams
// spawned along the way, and returns the grid's split count.
func (s *Simulation) Run() int {
	s.pending.While(func(b *Beam) bool {
		for !b.Ended {
			s.Advance(b)
		}
		return true
	})
	return s.Grid.Splits
}

// CountSplits builds a grid from lines, spawns the initial beams and runs
// them to completion.
func CountSplits(lines []string) int {
	s := NewSimulation(BuildGrid(lines))
	s.SpawnInitial()
	return s.Run()
}
