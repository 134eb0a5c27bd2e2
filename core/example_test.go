// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/mcdiver/core"
)

// ExampleGraph builds a three-junction pipe and lists each junction's exits.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddVertex(1, 0)
	_, _ = g.AddVertex(2, 5)
	_, _ = g.AddVertex(3, 0)
	_, _ = g.AddEdge(1, 2, 4)
	_, _ = g.AddEdge(2, 3, 7)

	for _, v := range g.Vertices() {
		fmt.Printf("%v coins=%d:", v, v.Coins())
		for _, e := range v.Exits() {
			w, _ := e.Other(v)
			fmt.Printf(" %v(%d)", w, e.Weight())
		}
		fmt.Println()
	}
	// Output:
	// v1 coins=0: v2(4)
	// v2 coins=5: v1(4) v3(7)
	// v3 coins=0: v2(7)
}
