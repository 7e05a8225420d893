// Command aoc2025 solves the beam splitter and junction box puzzles.
//
// Inputs are read from inputs/day<N>input.txt (see -inputs and -config).
package main

import (
	_ "embed"
	"fmt"

	"github.com/aockit/aoc"
	"github.com/aockit/aoc/beam"
	"github.com/aockit/aoc/circuit"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed aoc2025.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s *solver) D7p1() any {
	g := beam.BuildGrid(s.RawLines())
	sim := beam.NewSimulation(g)
	started := sim.SpawnInitial()
	splits := sim.Run()
	s.Debugf("grid %v: %d starting beams, %d beams total", g.Fingerprint(), len(started), len(sim.Beams))
	return splits
}

// want=40
func (s *solver) D7p2() any {
	return beam.BuildGrid(s.RawLines()).Timelines()
}

type circuitReport struct {
	top     []int
	product int
}

func (r circuitReport) String() string {
	return fmt.Sprintf("%d (sizes %v)", r.product, r.top)
}

func (s *solver) network() *circuit.Network {
	return circuit.NewNetwork(aoc.MustGet(circuit.ParseBoxes(s.Lines())))
}

/*
want=40 (sizes [5 4 2])

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s *solver) D8p1() any {
	def := 1000
	if s.SampleMode {
		def = 10
	}
	n := s.network()
	n.ConnectShortest(s.IntParam("connections", def))
	s.Debugf("%d circuits", n.CountCircuits())
	return circuitReport{
		top:     n.TopSizes(3),
		product: aoc.MustGet(n.TopThreeProduct()),
	}
}

// want=25272
func (s *solver) D8p2() any {
	n := s.network()
	p, ok := n.ConnectAll()
	if !ok {
		return 0
	}
	a, b := n.Boxes[p.A], n.Boxes[p.B]
	s.Debug("last connection:", a, b)
	return a.X * b.X
}
