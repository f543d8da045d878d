package search

import "github.com/archichudinow/cs50ai/castgraph/graph"

// NoParent is the parent index of a root node.
const NoParent = -1

// Node is one explored point of the search tree. Nodes are values and are
// never modified after creation; Path must be treated as read-only.
type Node struct {
	// Index is the position of the node in its Tree.
	Index int

	// State is the person ID this node stands for.
	State string

	// Parent is the Tree index of the node that produced this one.
	Parent int

	// Edge is the credit that led from the parent to this node. It is the
	// zero Credit for the root.
	Edge graph.Credit

	// Path holds the credits from the root to this node.
	Path []graph.Credit
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Tree is the arena holding every node created by one search. Parent links
// are indices into the arena.
type Tree struct {
	nodes []Node
}

// Root adds a parentless node for state.
func (t *Tree) Root(state string) Node {
	n := Node{Index: len(t.nodes), State: state, Parent: NoParent}
	t.nodes = append(t.nodes, n)
	return n
}

// Child adds the node reached from parent through edge. The child gets its
// own copy of the parent's path so sibling branches never share storage.
func (t *Tree) Child(parent Node, edge graph.Credit) Node {
	path := make([]graph.Credit, len(parent.Path)+1)
	copy(path, parent.Path)
	path[len(parent.Path)] = edge

	n := Node{
		Index:  len(t.nodes),
		State:  edge.PersonID,
		Parent: parent.Index,
		Edge:   edge,
		Path:   path,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// Node returns the node stored at index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Ancestry returns the states from the root down to the node at index i by
// following parent links.
func (t *Tree) Ancestry(i int) []string {
	var states []string
	for n := t.Node(i); ; n = t.Node(n.Parent) {
		states = append(states, n.State)
		if n.IsRoot() {
			break
		}
	}
	for l, r := 0, len(states)-1; l < r; l, r = l+1, r-1 {
		states[l], states[r] = states[r], states[l]
	}
	return states
}
