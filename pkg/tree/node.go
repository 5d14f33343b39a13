package tree

import "github.com/mattsolo1/grove-lists/pkg/models"

// Node is one item of a materialized outline forest.
type Node struct {
	Item     models.Item
	Parent   *Node
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Depth is the number of ancestors above the node.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Forest materializes the index as nested nodes starting from its roots.
// Items reachable from no root (for example an item two levels deeper than
// its predecessor) are not part of the forest.
func (x *Index) Forest() []*Node {
	var build func(i int, parent *Node) *Node
	build = func(i int, parent *Node) *Node {
		n := &Node{Item: x.items[i], Parent: parent}
		for _, c := range x.children[i] {
			n.Children = append(n.Children, build(c, n))
		}
		return n
	}

	forest := make([]*Node, 0, len(x.roots))
	for _, r := range x.roots {
		forest = append(forest, build(r, nil))
	}
	return forest
}

// Walk visits nodes depth first in line order. Returning false from fn skips
// the node's children.
func Walk(nodes []*Node, fn func(n *Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(n.Children, fn)
		}
	}
}
