// Package resolve turns a typed name into a single person ID, asking the
// user to disambiguate when several people share the name.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/archichudinow/cs50ai/nameindex"
)

// ErrInvalidChoice is returned when the chosen ID is not one of the
// candidates.
var ErrInvalidChoice = errors.New("invalid choice")

// NotFoundError is returned when no person matches a name.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("person %q not found", e.Name)
	}
	return fmt.Sprintf("person %q not found; did you mean %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

// Unwrap allows errors.Is(err, graph.ErrUnknownPerson).
func (e *NotFoundError) Unwrap() error {
	return graph.ErrUnknownPerson
}

// Chooser picks one person among several candidates sharing a name.
type Chooser interface {
	Choose(ctx context.Context, name string, candidates []*graph.Person) (string, error)
}

// Resolver resolves names using a name index and a graph.
type Resolver struct {
	g           graph.Graph
	idx         nameindex.Indexer
	chooser     Chooser
	suggestions int
}

// NewResolver returns a Resolver. suggestions bounds the number of names
// offered when a lookup fails.
func NewResolver(g graph.Graph, idx nameindex.Indexer, chooser Chooser, suggestions int) *Resolver {
	return &Resolver{g: g, idx: idx, chooser: chooser, suggestions: suggestions}
}

// Resolve returns the person ID for name.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	ids, err := r.idx.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}

	switch len(ids) {
	case 0:
		suggestions, err := r.idx.Suggest(name, r.suggestions)
		if err != nil {
			logging.FromContext(ctx).Warn("Name suggestions unavailable.", "name", name, "error", err)
		}
		return "", &NotFoundError{Name: name, Suggestions: suggestions}
	case 1:
		return ids[0], nil
	}

	candidates := make([]*graph.Person, 0, len(ids))
	for _, id := range ids {
		person, err := r.g.FindPerson(id)
		if err != nil {
			return "", fmt.Errorf("resolve %q: %w", name, err)
		}
		candidates = append(candidates, person)
	}

	chosen, err := r.chooser.Choose(ctx, name, candidates)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}
	chosen = strings.TrimSpace(chosen)
	for _, id := range ids {
		if id == chosen {
			return id, nil
		}
	}
	return "", fmt.Errorf("resolve %q: %q: %w", name, chosen, ErrInvalidChoice)
}
