// Package circuit joins junction boxes into circuits, closest pairs first.
//
// Circuits are tracked with a disjoint-set forest over box indices (path
// compression, union by size). The connections that actually merged two
// circuits are also kept as a graph so a circuit's members can be listed.
package circuit

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/aockit/aoc"
)

// ErrInsufficientCircuits is returned when fewer circuits exist than an
// operation needs.
var ErrInsufficientCircuits = errors.New("circuit: insufficient circuits")

// Box is a junction box. ID is its coordinates as written in the input.
type Box struct {
	aoc.Pt3Int
	ID string
}

func NewBox(x, y, z int) Box {
	return Box{
		Pt3Int: aoc.Pt3Int{X: x, Y: y, Z: z},
		ID:     fmt.Sprintf("%d,%d,%d", x, y, z),
	}
}

func (b Box) String() string {
	return "Box(" + b.ID + ")"
}

// ParseBox parses a line of the form "x,y,z".
func ParseBox(line string) (Box, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 3 {
		return Box{}, fmt.Errorf("parsing box %q: want 3 coordinates, got %d", line, len(parts))
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Box{}, fmt.Errorf("parsing box %q: %w", line, err)
		}
		v[i] = n
	}
	return NewBox(v[0], v[1], v[2]), nil
}

// ParseBoxes parses one box per line, skipping blank lines.
func ParseBoxes(lines []string) ([]Box, error) {
	var boxes []Box
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := ParseBox(line)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// Pair is an unordered pair of boxes, by index. A < B.
type Pair struct {
	A, B   int
	SqDist int
}

// Dist returns the euclidean distance between the pair.
func (p Pair) Dist() float64 {
	return math.Sqrt(float64(p.SqDist))
}

// Network is a set of boxes and the circuits they form. Every box starts in
// a circuit of its own.
type Network struct {
	Boxes []Box

	parent   []int
	size     []int
	circuits int
	links    aoc.Graph[int]
	pairs    []Pair
}

func NewNetwork(boxes []Box) *Network {
	n := &Network{
		Boxes:    boxes,
		parent:   make([]int, len(boxes)),
		size:     make([]int, len(boxes)),
		circuits: len(boxes),
	}
	for i := range boxes {
		n.parent[i] = i
		n.size[i] = 1
		n.links.AddNode(i)
	}
	return n
}

// Circuit returns the id of the circuit box i belongs to. Two boxes are in
// the same circuit iff their ids are equal. Ids change as circuits merge.
func (n *Network) Circuit(i int) int {
	for n.parent[i] != i {
		n.parent[i] = n.parent[n.parent[i]]
		i = n.parent[i]
	}
	return i
}

func (n *Network) SameCircuit(a, b int) bool {
	return n.Circuit(a) == n.Circuit(b)
}

// union merges the circuits rooted at ra and rb, which must differ.
func (n *Network) union(ra, rb int) {
	if n.size[ra] < n.size[rb] {
		ra, rb = rb, ra
	}
	n.parent[rb] = ra
	n.size[ra] += n.size[rb]
	n.circuits--
}

// Connect joins boxes a and b. It reports false, and changes nothing, if
// they were already in the same circuit.
func (n *Network) Connect(a, b int) bool {
	ra, rb := n.Circuit(a), n.Circuit(b)
	if ra == rb {
		return false
	}
	n.union(ra, rb)
	n.links.AddEdge(a, b, n.Boxes[a].SqDist(n.Boxes[b].Pt3Int))
	return true
}

// Members returns the indices of the boxes in i's circuit, ascending.
func (n *Network) Members(i int) []int {
	out := make([]int, 0, n.size[n.Circuit(i)])
	for m := range n.links.ReachableNodes(i) {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Pairs returns every pair of boxes ordered by distance. Pairs at equal
// distance keep generation order: (0,1), (0,2), ..., (1,2), ...
func (n *Network) Pairs() []Pair {
	if n.pairs != nil || len(n.Boxes) < 2 {
		return n.pairs
	}
	k := len(n.Boxes)
	pairs := make([]Pair, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			pairs = append(pairs, Pair{
				A:      i,
				B:      j,
				SqDist: n.Boxes[i].SqDist(n.Boxes[j].Pt3Int),
			})
		}
	}
	slices.SortStableFunc(pairs, func(p, q Pair) int {
		return cmp.Compare(p.SqDist, q.SqDist)
	})
	n.pairs = pairs
	return pairs
}

// ConnectShortest connects the count closest pairs of boxes. Pairs already
// in the same circuit still use up one of the count.
func (n *Network) ConnectShortest(count int) {
	pairs := n.Pairs()
	count = min(max(count, 0), len(pairs))
	for _, p := range pairs[:count] {
		n.Connect(p.A, p.B)
	}
}

// ConnectAll connects pairs, closest first, until every box is in one
// circuit, and returns the pair that completed it. It reports false if no
// connection was needed.
func (n *Network) ConnectAll() (Pair, bool) {
	for _, p := range n.Pairs() {
		if n.circuits == 1 {
			break
		}
		if n.Connect(p.A, p.B) && n.circuits == 1 {
			return p, true
		}
	}
	return Pair{}, false
}

// CountCircuits returns the number of distinct circuits.
func (n *Network) CountCircuits() int {
	return n.circuits
}

// Sizes returns the size of every circuit, largest first.
func (n *Network) Sizes() []int {
	seen := make(map[int]bool, n.circuits)
	sizes := make([]int, 0, n.circuits)
	for i := range n.Boxes {
		r := n.Circuit(i)
		if seen[r] {
			continue
		}
		seen[r] = true
		sizes = append(sizes, n.size[r])
	}
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return sizes
}

// TopSizes returns the sizes of the k largest circuits, largest first. It
// returns fewer if there are fewer circuits.
func (n *Network) TopSizes(k int) []int {
	sizes := n.Sizes()
	return sizes[:min(max(k, 0), len(sizes))]
}

// TopThreeProduct returns the product of the sizes of the three largest
// circuits.
func (n *Network) TopThreeProduct() (int, error) {
	top := n.TopSizes(3)
	if len(top) < 3 {
		return 0, fmt.Errorf("%w: need 3, have %d", ErrInsufficientCircuits, len(top))
	}
	return aoc.Product(top...), nil
}
