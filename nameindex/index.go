// Package nameindex resolves display names to person IDs.
package nameindex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/archichudinow/cs50ai/castgraph/graph"
)

var (
	// ErrMissingID is returned when indexing a person without an ID.
	ErrMissingID = errors.New("missing person ID")

	// ErrTooManyMatches is returned by a Lookup that cannot return every
	// person sharing a name.
	ErrTooManyMatches = errors.New("too many people share this name")
)

// Indexer is implemented by objects that can index people by name.
type Indexer interface {
	// Index inserts a person into the index or updates the entry of an
	// already indexed person.
	Index(person *graph.Person) error

	// Lookup returns the IDs of all people whose name matches name
	// case-insensitively, in ascending order. Unknown names yield an empty
	// slice.
	Lookup(name string) ([]string, error)

	// Suggest returns up to limit distinct display names that are close to
	// name, best match first.
	Suggest(name string, limit int) ([]string, error)

	// Close releases any resources held by the index.
	Close() error
}

// NormalizeName returns the lookup key for a display name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Build indexes every person of g and returns the number of indexed people.
func Build(ctx context.Context, g graph.Graph, idx Indexer) (int, error) {
	it, err := g.People()
	if err != nil {
		return 0, fmt.Errorf("build name index: %w", err)
	}

	count := 0
	for it.Next() {
		if err = ctx.Err(); err != nil {
			_ = it.Close()
			return count, err
		}
		if err = idx.Index(it.Person()); err != nil {
			_ = it.Close()
			return count, fmt.Errorf("build name index: %w", err)
		}
		count++
	}
	if err = it.Error(); err != nil {
		_ = it.Close()
		return count, fmt.Errorf("build name index: %w", err)
	}
	if err = it.Close(); err != nil {
		return count, fmt.Errorf("build name index: %w", err)
	}
	return count, nil
}
