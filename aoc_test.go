package aoc

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=21

.......S.......
...............
.......^.......
*/`,
			want: sample{
				want: "21",
				input: `.......S.......
...............
.......^.......
`,
			},
		},
		{
			comment: `// want=40`,
			want:    sample{want: "40"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, want %+v", tt.comment, got, tt.want)
		}
	}
}

const solverSrc = `package main

/*
want=3

1
2
*/
func (s *solver) D1p1() any { return nil }

// want=2
func (s *solver) D1p2() any { return nil }

// no sample here
func (s *solver) D2p1() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(solverSrc))
	if len(got) != 2 {
		t.Fatalf("got %d samples, want 2: %+v", len(got), got)
	}
	if s := got["D1p1"]; s.want != "3" || s.input != "1\n2\n" {
		t.Errorf("D1p1 = %+v", s)
	}
	// Part 2 inherits part 1's input.
	if s := got["D1p2"]; s.want != "2" || s.input != "1\n2\n" {
		t.Errorf("D1p2 = %+v", s)
	}
}

type testSolver struct {
	*Puzzle
	lines []string
}

/*
want=3

a
b

c
*/
func (s *testSolver) D1p1() any {
	s.lines = s.Lines()
	return len(s.lines)
}

// want=7
func (s *testSolver) D1p2() any {
	return s.IntParam("n", 5)
}

func (s *testSolver) NotAPart() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	d, ok := days[1]
	if !ok || len(days) != 1 {
		t.Fatalf("days = %v", days)
	}
	if len(d.parts) != 2 || d.parts[0].Part != "1" || d.parts[1].Part != "2" {
		t.Fatalf("parts = %+v", d.parts)
	}
}

func TestRunDaySampleOnly(t *testing.T) {
	src := `package aoc

/*
want=3

a
b

c
*/
func (s *testSolver) D1p1() any { return nil }

// want=7
func (s *testSolver) D1p2() any { return nil }
`
	cfg, err := ParseConfig("test.hcl", []byte(`
day "1" {
  sample_n = 7
  n        = 1000
}
`))
	if err != nil {
		t.Fatal(err)
	}
	flagOnlySample = true
	defer func() { flagOnlySample = false }()

	slvr := &testSolver{}
	p := &Puzzle{cfg: cfg, samples: extractSamples([]byte(src))}
	var buf bytes.Buffer
	if !runDay(&buf, slvr, p, extractMethods(slvr)[1]) {
		t.Fatalf("runDay failed:\n%s", buf.String())
	}
	if got := strings.Count(buf.String(), "✅"); got != 2 {
		t.Errorf("got %d passing samples, want 2:\n%s", got, buf.String())
	}
	if len(slvr.lines) != 3 {
		t.Errorf("Lines = %q; blank lines should be dropped", slvr.lines)
	}
}

type rawSolver struct {
	*Puzzle
	raw, lines []string
}

func (s *rawSolver) D1p1() any {
	s.raw = s.RawLines()
	s.lines = s.Lines()
	return len(s.raw)
}

func TestRunDayRawLines(t *testing.T) {
	src := `package aoc

/*
want=4

..S..

..^..
.....
*/
func (s *rawSolver) D1p1() any { return nil }
`
	flagOnlySample = true
	defer func() { flagOnlySample = false }()

	slvr := &rawSolver{}
	p := &Puzzle{samples: extractSamples([]byte(src))}
	var buf bytes.Buffer
	if !runDay(&buf, slvr, p, extractMethods(slvr)[1]) {
		t.Fatalf("runDay failed:\n%s", buf.String())
	}
	want := []string{"..S..", "", "..^..", "....."}
	if strings.Join(slvr.raw, "|") != strings.Join(want, "|") {
		t.Errorf("RawLines = %q, want %q", slvr.raw, want)
	}
	if len(slvr.lines) != 3 {
		t.Errorf("Lines = %q, want the blank line dropped", slvr.lines)
	}
}

func TestGridAtOkRagged(t *testing.T) {
	g := ParseGrid([]string{"", "abc", "de\r", "f"}, func(r rune) rune { return r })
	tests := []struct {
		p    Pt
		want rune
		ok   bool
	}{
		{Pt{0, 0}, 0, false},
		{Pt{2, 1}, 'c', true},
		{Pt{2, 2}, 0, false},
		{Pt{1, 2}, 'e', true},
		{Pt{0, 3}, 'f', true},
		{Pt{1, 3}, 0, false},
		{Pt{-1, 1}, 0, false},
		{Pt{0, 4}, 0, false},
		{Pt{0, -1}, 0, false},
	}
	for _, tt := range tests {
		got, ok := g.AtOk(tt.p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AtOk(%v) = %q, %v; want %q, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGridHash(t *testing.T) {
	a := ParseGrid([]string{"ab", "c"}, func(r rune) rune { return r })
	b := ParseGrid([]string{"ab", "c"}, func(r rune) rune { return r })
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	b[1][0] = 'x'
	if a.Hash() == b.Hash() {
		t.Error("different grids hash the same")
	}
}

func TestReachableNodes(t *testing.T) {
	var g Graph[int]
	for i := 0; i < 6; i++ {
		g.AddNode(i)
	}
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(4, 5, 1)

	tests := []struct {
		from int
		want []int
	}{
		{0, []int{0, 1, 2}},
		{2, []int{0, 1, 2}},
		{3, []int{3}},
		{5, []int{4, 5}},
	}
	for _, tt := range tests {
		got := g.ReachableNodes(tt.from)
		if len(got) != len(tt.want) {
			t.Errorf("ReachableNodes(%d) = %v, want %v", tt.from, got, tt.want)
			continue
		}
		for _, n := range tt.want {
			if !got[n] {
				t.Errorf("ReachableNodes(%d) = %v, missing %d", tt.from, got, n)
			}
		}
	}
}

func TestQueueWhile(t *testing.T) {
	q := NewQueue(1, 2)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v < 3 {
			q.Push(v + 2)
		}
		return true
	})
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMath(t *testing.T) {
	if got := Product(5, 4, 2); got != 40 {
		t.Errorf("Product = %d, want 40", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("empty Product = %d, want 1", got)
	}
	if got := Sum(Int(" 1"), Int("2 "), 3); got != 6 {
		t.Errorf("Sum = %d, want 6", got)
	}
	if got := (Pt3Int{0, 0, 0}).SqDist(Pt3Int{1, 1, 1}); got != 3 {
		t.Errorf("SqDist = %d, want 3", got)
	}
}
