package input

import (
	"fmt"

	"github.com/ja-he/propedit/internal/control/action"
)

// Tree is an input tree: key sequences, each terminating in an action.
// It implements SimpleInputProcessor.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g     -> first            "gg" -> first
//	+-e     -> last             "ge" -> last
//	j       -> next             "j"  -> next
type Tree struct {
	Root    *Node
	Current *Node
}

// ConstructInputTree constructs a Tree from mappings of keyspecs to actions.
// It fails for invalid keyspecs and for sequences that are prefixes of one
// another.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for keyspec, a := range spec {
		sequence, err := ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("error converting keyspec '%s' (%s)", keyspec, err.Error())
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped to '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			if current.Action != nil {
				return nil, fmt.Errorf("keyspec '%s' extends a shorter mapped sequence", keyspec)
			}
			last := i == len(sequence)-1
			next, ok := current.Children[key]
			switch {
			case !ok && last:
				next = NewLeaf(a)
			case !ok:
				next = NewNode()
			case last:
				return nil, fmt.Errorf("keyspec '%s' is mapped twice or prefixes another sequence", keyspec)
			}
			current.Children[key] = next
			current = next
		}
	}

	return &Tree{Root: root, Current: root}, nil
}

// EmptyTree returns a tree without any mappings.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{Root: root, Current: root}
}

// ProcessInput advances the tree by the given key, performing the action if a
// sequence is completed. An unknown key resets the partial sequence.
func (t *Tree) ProcessInput(k Key) bool {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns true while a sequence is partially entered.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// GetHelp returns the help for all mapped sequences.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}
