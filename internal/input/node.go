package input

import (
	"github.com/ja-he/propedit/internal/control/action"
)

// Node is a node in a Tree.
// A node either has children or is a leaf holding an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// NewNode returns a new inner node without children.
func NewNode() *Node {
	return &Node{Children: make(map[Key]*Node)}
}

// NewLeaf returns a new leaf for the given action.
func NewLeaf(a action.Action) *Node {
	return &Node{Action: a}
}

// Child returns the child node for the given key, or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// GetHelp returns the help for all sequences below this node, keyed by the
// remainder of the sequence (the empty string for a leaf).
func (n *Node) GetHelp() Help {
	result := Help{}
	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}
	for k, child := range n.Children {
		for rest, explanation := range child.GetHelp() {
			result[ToConfigIdentifierString(k)+rest] = explanation
		}
	}
	return result
}
