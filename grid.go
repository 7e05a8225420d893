package aoc

import (
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major grid. Rows may have different lengths.
type Grid[T any] [][]T

// AtOk returns the value at p, or false if p is outside the grid. The X
// bound is the width of row p.Y, not of the first row.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// InBounds reports whether p names a cell of g.
func (g Grid[T]) InBounds(p Pt) bool {
	_, ok := g.AtOk(p)
	return ok
}

// ParseGrid builds a grid from lines, converting each rune with f. Trailing
// whitespace (including a stray '\r') is stripped from every line first.
func ParseGrid[T any](lines []string, f func(rune) T) Grid[T] {
	out := make(Grid[T], 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r\n")
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, f(r))
		}
		out = append(out, row)
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a deep hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

// Down, Left and Right are unit steps on a grid where Y grows downward.
var (
	Down  = Pt{0, 1}
	Left  = Pt{-1, 0}
	Right = Pt{1, 0}
)

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// SqDist returns the squared euclidean distance between a and b.
func (a Pt3[T]) SqDist(b Pt3[T]) T {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
