package search

import "errors"

var (
	// ErrEmptyFrontier is returned by Frontier.Remove when no nodes are
	// pending.
	ErrEmptyFrontier = errors.New("empty frontier")

	// ErrExpansionLimit is returned when a search expands more states than
	// allowed by WithMaxExpansions.
	ErrExpansionLimit = errors.New("expansion limit reached")

	// ErrUnknownDiscipline is returned when parsing an unsupported frontier
	// discipline name.
	ErrUnknownDiscipline = errors.New("unknown frontier discipline")
)
