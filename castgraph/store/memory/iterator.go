package memory

import "github.com/archichudinow/cs50ai/castgraph/graph"

// personIterator is a graph.PersonIterator implementation for the in-memory
// graph. It snapshots the person IDs at creation and resolves each person
// lazily.
type personIterator struct {
	s *InMemoryGraph

	ids    []string
	curIdx int
	cur    *graph.Person
	err    error
}

// Next implements graph.PersonIterator.
func (i *personIterator) Next() bool {
	if i.err != nil || i.curIdx >= len(i.ids) {
		return false
	}

	i.cur, i.err = i.s.FindPerson(i.ids[i.curIdx])
	i.curIdx++
	return i.err == nil
}

// Error implements graph.PersonIterator.
func (i *personIterator) Error() error {
	return i.err
}

// Close implements graph.PersonIterator.
func (i *personIterator) Close() error {
	return nil
}

// Person implements graph.PersonIterator.
func (i *personIterator) Person() *graph.Person {
	return i.cur
}
