package search

import (
	"context"
	"fmt"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/google/uuid"
)

// NeighborFunc returns the credits reachable in one step from a state.
type NeighborFunc func(state string) ([]graph.Credit, error)

// Result describes the outcome of a search. A search that finds no path is
// reported through Found, not through an error.
type Result struct {
	ID     uuid.UUID
	Source string
	Target string

	// Found reports whether Target is reachable from Source.
	Found bool

	// Path holds the credits leading from Source to Target. It is empty
	// when Source equals Target or when no path exists.
	Path []graph.Credit

	// Expanded is the number of distinct states that were expanded.
	Expanded int
}

// Degrees returns the number of credits separating source and target.
func (r Result) Degrees() int {
	return len(r.Path)
}

// EventKind identifies an observer event.
type EventKind int

const (
	// Expanded is emitted after a state is added to the explored set and
	// before its neighbors are generated.
	Expanded EventKind = iota

	// Discarded is emitted when a removed node is dropped because its state
	// was already explored.
	Discarded
)

// Event is passed to an Observer.
type Event struct {
	Kind EventKind
	Node Node

	// Explored is the size of the explored set after the event.
	Explored int
}

// Observer receives search events. It is called synchronously from the
// search loop.
type Observer func(Event)

type options struct {
	newFrontier   func() Frontier
	maxExpansions int
	observer      Observer
}

// Option configures a search.
type Option func(*options)

// WithDiscipline selects the frontier discipline. Queue is the default.
func WithDiscipline(d Discipline) Option {
	return func(o *options) {
		o.newFrontier = func() Frontier { return NewFrontier(d) }
	}
}

// WithFrontier plugs in a custom frontier factory. The factory is called once
// per search.
func WithFrontier(factory func() Frontier) Option {
	return func(o *options) {
		o.newFrontier = factory
	}
}

// WithMaxExpansions aborts a search with ErrExpansionLimit after n states
// have been expanded without reaching the target. Zero or a negative n means
// no limit.
func WithMaxExpansions(n int) Option {
	return func(o *options) {
		o.maxExpansions = n
	}
}

// WithObserver registers an observer for search events.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// FindPath searches for a path from source to target, expanding states
// through neighbors. The caller is responsible for making sure that both
// states exist.
//
// When source equals target the search is short-circuited and a found result
// with an empty path is returned without expanding anything.
func FindPath(ctx context.Context, source, target string, neighbors NeighborFunc, opts ...Option) (Result, error) {
	o := options{newFrontier: func() Frontier { return NewQueueFrontier() }}
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Source: source, Target: target}
	if source == target {
		res.Found = true
		res.Path = []graph.Credit{}
		return res, nil
	}

	var (
		tree     Tree
		frontier = o.newFrontier()
		explored = make(map[string]struct{})
	)
	frontier.Add(tree.Root(source))

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if frontier.Empty() {
			return res, nil
		}

		node, err := frontier.Remove()
		if err != nil {
			return res, err
		}

		if _, seen := explored[node.State]; seen {
			o.notify(Event{Kind: Discarded, Node: node, Explored: len(explored)})
			continue
		}

		if node.State == target {
			res.Found = true
			res.Path = node.Path
			logging.FromContext(ctx).Debug("Path found.",
				"chain", tree.Ancestry(node.Index),
				"tree_size", tree.Len(),
			)
			return res, nil
		}

		if o.maxExpansions > 0 && len(explored) >= o.maxExpansions {
			return res, fmt.Errorf("find path after %d expansions: %w", len(explored), ErrExpansionLimit)
		}

		explored[node.State] = struct{}{}
		res.Expanded++
		o.notify(Event{Kind: Expanded, Node: node, Explored: len(explored)})

		credits, err := neighbors(node.State)
		if err != nil {
			return res, fmt.Errorf("expand %s: %w", node.State, err)
		}

		for _, credit := range credits {
			if frontier.ContainsState(credit.PersonID) {
				continue
			}
			if _, seen := explored[credit.PersonID]; seen {
				continue
			}
			frontier.Add(tree.Child(node, credit))
		}
	}
}

func (o *options) notify(ev Event) {
	if o.observer != nil {
		o.observer(ev)
	}
}
