package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the common cause of every lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrUnknownPerson is returned when a person ID is absent from the
	// graph.
	ErrUnknownPerson = fmt.Errorf("unknown person: %w", ErrNotFound)

	// ErrUnknownMovie is returned when a movie ID is absent from the graph.
	ErrUnknownMovie = fmt.Errorf("unknown movie: %w", ErrNotFound)
)
