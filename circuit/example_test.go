package circuit_test

import (
	"fmt"

	"github.com/aockit/aoc/circuit"
)

func ExampleNetwork_ConnectShortest() {
	boxes, err := circuit.ParseBoxes([]string{
		"0,0,0",
		"1,0,0",
		"5,0,0",
		"5,1,0",
		"20,20,20",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n := circuit.NewNetwork(boxes)
	n.ConnectShortest(2)
	fmt.Println(n.CountCircuits(), n.Sizes())
	fmt.Println(n.Members(3))

	product, err := n.TopThreeProduct()
	fmt.Println(product, err)
	// Output:
	// 3 [2 2 1]
	// [2 3]
	// 4 <nil>
}
