// Package beam simulates beams falling through a manifold of splitters.
//
// Beams start one row below each starter cell ('S') and move straight down.
// A beam that moves onto a splitter ('^') stops there and spawns new beams in
// the cells immediately left and right of the splitter.
package beam

import (
	"github.com/aockit/aoc"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// Kind is the role of a cell in the manifold.
type Kind uint8

const (
	Empty Kind = iota
	Starter
	Splitter
)

func (k Kind) String() string {
	switch k {
	case Starter:
		return "starter"
	case Splitter:
		return "splitter"
	}
	return "empty"
}

type Cell struct {
	Char rune
	Kind Kind
}

// NewCell classifies r. Anything other than 'S' or '^' is empty.
func NewCell(r rune) Cell {
	c := Cell{Char: r}
	switch r {
	case 'S':
		c.Kind = Starter
	case '^':
		c.Kind = Splitter
	}
	return c
}

// Grid is the manifold. Row 0 is a zero-width buffer row added by BuildGrid,
// so no starter sits on the topmost row.
type Grid struct {
	Rows aoc.Grid[Cell]

	// Splits is the number of distinct splitters struck so far.
	Splits  int
	counted map[aoc.Pt]bool
}

// NewGrid wraps rows as is, without adding the buffer row.
func NewGrid(rows aoc.Grid[Cell]) *Grid {
	return &Grid{
		Rows:    rows,
		counted: make(map[aoc.Pt]bool),
	}
}

// BuildGrid parses lines into a grid, one cell per character, below an
// empty row 0. Rows are not required to have equal length.
func BuildGrid(lines []string) *Grid {
	rows := append(aoc.Grid[Cell]{{}}, aoc.ParseGrid(lines, NewCell)...)
	return NewGrid(rows)
}

func (g *Grid) cell(p aoc.Pt) (Cell, bool) {
	return g.Rows.AtOk(p)
}

func (g *Grid) isSplitter(p aoc.Pt) bool {
	c, ok := g.cell(p)
	return ok && c.Kind == Splitter
}

// strike records a beam landing on the splitter at p. It reports whether
// this was the first strike there.
func (g *Grid) strike(p aoc.Pt) bool {
	if g.counted[p] {
		return false
	}
	g.counted[p] = true
	g.Splits++
	return true
}

// Starters returns the position of every starter cell, in row-major order.
func (g *Grid) Starters() []aoc.Pt {
	var out []aoc.Pt
	g.Rows.ForEach(func(p aoc.Pt, c Cell) {
		if c.Kind == Starter {
			out = append(out, p)
		}
	})
	return out
}

// Fingerprint hashes the cells of the grid, ignoring the split counter.
func (g *Grid) Fingerprint() deephash.Sum {
	return g.Rows.Hash()
}

// Timelines returns the number of distinct paths a single particle can take
// from the starters to the bottom of the grid, where every splitter sends
// the particle either left or right. A particle that starts or is sent onto
// a splitter stops there, as a placed beam does.
func (g *Grid) Timelines() int {
	counts := map[int]int{} // column -> paths arriving at the current row
	for y, row := range g.Rows {
		next := make(map[int]int, len(counts))
		for x, n := range counts {
			p := aoc.Pt{X: x, Y: y}
			c, ok := g.cell(p)
			if !ok {
				continue
			}
			if c.Kind != Splitter {
				next[x] += n
				continue
			}
			for _, d := range []aoc.Pt{aoc.Left, aoc.Right} {
				side := p.Add(d)
				if g.Rows.InBounds(side) && !g.isSplitter(side) {
					next[side.X] += n
				}
			}
		}
		for x, c := range row {
			below := aoc.Pt{X: x, Y: y + 1}
			if c.Kind == Starter && g.Rows.InBounds(below) && !g.isSplitter(below) {
				next[x]++
			}
		}
		counts = next
	}
	return aoc.Sum(maps.Values(counts)...)
}

// Beam is a single beam. Pos uses X for the column and Y for the row.
type Beam struct {
	Pos   aoc.Pt
	Ended bool
}
