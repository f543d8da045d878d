package search

import (
	"fmt"
	"strings"
)

// Discipline selects the order in which a frontier yields its nodes.
type Discipline int

const (
	// Queue yields the least recently added node (breadth-first).
	Queue Discipline = iota

	// Stack yields the most recently added node (depth-first). Paths found
	// with a stack are not guaranteed to be shortest.
	Stack
)

// String implements fmt.Stringer.
func (d Discipline) String() string {
	switch d {
	case Queue:
		return "queue"
	case Stack:
		return "stack"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// ParseDiscipline converts a discipline name into a Discipline.
func ParseDiscipline(name string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "queue", "bfs":
		return Queue, nil
	case "stack", "dfs":
		return Stack, nil
	default:
		return 0, fmt.Errorf("parse discipline %q: %w", name, ErrUnknownDiscipline)
	}
}

// Frontier is the open set of nodes that have been generated but not yet
// removed for expansion.
type Frontier interface {
	// Add inserts a node. Duplicate states are allowed.
	Add(node Node)

	// ContainsState reports whether a pending node has the given state.
	ContainsState(state string) bool

	// Empty reports whether no nodes are pending.
	Empty() bool

	// Len returns the number of pending nodes.
	Len() int

	// Remove removes and returns the next node according to the frontier's
	// discipline. It returns ErrEmptyFrontier when no nodes are pending.
	Remove() (Node, error)
}

// NewFrontier returns an empty frontier with the given discipline.
func NewFrontier(d Discipline) Frontier {
	if d == Stack {
		return NewStackFrontier()
	}
	return NewQueueFrontier()
}

// pendingStates counts the pending nodes per state so that ContainsState
// does not need to scan the frontier.
type pendingStates map[string]int

func (p pendingStates) inc(state string) {
	p[state]++
}

func (p pendingStates) dec(state string) {
	if p[state] <= 1 {
		delete(p, state)
		return
	}
	p[state]--
}

// StackFrontier is a last-in-first-out Frontier.
type StackFrontier struct {
	nodes   []Node
	pending pendingStates
}

// NewStackFrontier returns an empty StackFrontier.
func NewStackFrontier() *StackFrontier {
	return &StackFrontier{pending: make(pendingStates)}
}

// Add implements Frontier.
func (f *StackFrontier) Add(node Node) {
	f.nodes = append(f.nodes, node)
	f.pending.inc(node.State)
}

// ContainsState implements Frontier.
func (f *StackFrontier) ContainsState(state string) bool {
	_, ok := f.pending[state]
	return ok
}

// Empty implements Frontier.
func (f *StackFrontier) Empty() bool {
	return len(f.nodes) == 0
}

// Len implements Frontier.
func (f *StackFrontier) Len() int {
	return len(f.nodes)
}

// Remove implements Frontier.
func (f *StackFrontier) Remove() (Node, error) {
	if f.Empty() {
		return Node{}, ErrEmptyFrontier
	}

	last := len(f.nodes) - 1
	node := f.nodes[last]
	f.nodes[last] = Node{}
	f.nodes = f.nodes[:last]
	f.pending.dec(node.State)
	return node, nil
}

// QueueFrontier is a first-in-first-out Frontier.
type QueueFrontier struct {
	nodes   []Node
	head    int
	pending pendingStates
}

// NewQueueFrontier returns an empty QueueFrontier.
func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{pending: make(pendingStates)}
}

// Add implements Frontier.
func (f *QueueFrontier) Add(node Node) {
	f.nodes = append(f.nodes, node)
	f.pending.inc(node.State)
}

// ContainsState implements Frontier.
func (f *QueueFrontier) ContainsState(state string) bool {
	_, ok := f.pending[state]
	return ok
}

// Empty implements Frontier.
func (f *QueueFrontier) Empty() bool {
	return f.head == len(f.nodes)
}

// Len implements Frontier.
func (f *QueueFrontier) Len() int {
	return len(f.nodes) - f.head
}

// Remove implements Frontier.
func (f *QueueFrontier) Remove() (Node, error) {
	if f.Empty() {
		return Node{}, ErrEmptyFrontier
	}

	node := f.nodes[f.head]
	f.nodes[f.head] = Node{}
	f.head++
	f.pending.dec(node.State)

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head >= 64 && f.head*2 >= len(f.nodes) {
		n := copy(f.nodes, f.nodes[f.head:])
		f.nodes = f.nodes[:n]
		f.head = 0
	}
	return node, nil
}
