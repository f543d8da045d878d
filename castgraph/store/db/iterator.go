package db

import (
	"database/sql"
	"fmt"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/lib/pq"
)

// personIterator is a graph.PersonIterator implementation for the db graph.
type personIterator struct {
	rows    *sql.Rows
	lastErr error
	person  *graph.Person
}

// Next implements graph.PersonIterator.
func (i *personIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	p := new(graph.Person)
	i.lastErr = i.rows.Scan(&p.ID, &p.Name, &p.Birth, pq.Array(&p.MovieIDs))
	if i.lastErr != nil {
		return false
	}

	i.person = p
	return true
}

// Error implements graph.PersonIterator.
func (i *personIterator) Error() error {
	if i.lastErr != nil {
		return fmt.Errorf("people: %w", i.lastErr)
	}
	return i.rows.Err()
}

// Close implements graph.PersonIterator.
func (i *personIterator) Close() error {
	err := i.rows.Close()
	if err != nil {
		return fmt.Errorf("people: %w", err)
	}
	return nil
}

// Person implements graph.PersonIterator.
func (i *personIterator) Person() *graph.Person {
	return i.person
}
