package tree_test

import (
	"fmt"
	"strings"

	"github.com/billie-coop/grove/tree"
)

func Example() {
	root := tree.New("Richard Stark")
	ned := root.Push("Ned Stark")
	lyanna := root.Push("Lyanna Stark")
	_, _ = ned.PushChildren("Robb Stark", "Jon Snow")

	jon := ned.Find("Jon Snow")
	if err := jon.MoveTo(lyanna); err != nil {
		fmt.Println(err)
		return
	}
	jon.SetValue("Jon Targaryen")

	_ = root.Walk(func(n *tree.Node[string], depth int) error {
		fmt.Println(strings.Repeat("  ", depth) + n.Value())
		return nil
	})
	// Output:
	// Richard Stark
	//   Ned Stark
	//     Robb Stark
	//   Lyanna Stark
	//     Jon Targaryen
}

func ExampleNode_Lineage() {
	root := tree.New("root")
	leaf := root.PushVertical("a", "b", "c")

	lineage, _ := leaf.Lineage()
	depth, _ := leaf.Depth()
	fmt.Println(lineage, depth)
	// Output: [c b a] 3
}
