package search

import (
	"context"
	"fmt"
	"time"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/google/uuid"
)

// Searcher runs shortest-path searches against a relationship graph. A
// Searcher holds no per-search state and may be shared.
type Searcher struct {
	g       graph.Graph
	metrics *Metrics
	opts    []Option
}

// NewSearcher returns a Searcher over g. metrics may be nil.
func NewSearcher(g graph.Graph, metrics *Metrics, opts ...Option) *Searcher {
	return &Searcher{g: g, metrics: metrics, opts: opts}
}

// ShortestPath finds the shortest chain of credits connecting the source and
// target people. Both people must exist in the graph; otherwise an error
// wrapping graph.ErrUnknownPerson is returned before any search starts.
func (s *Searcher) ShortestPath(ctx context.Context, source, target string) (Result, error) {
	for _, id := range []string{source, target} {
		if _, err := s.g.FindPerson(id); err != nil {
			return Result{Source: source, Target: target}, fmt.Errorf("shortest path: %w", err)
		}
	}

	searchID := uuid.New()
	logger := logging.FromContext(ctx).With("search_id", searchID.String())
	logger.Debug("Search started.", "source", source, "target", target)
	start := time.Now()

	res, err := FindPath(ctx, source, target, s.g.Neighbors, s.opts...)
	res.ID = searchID
	s.metrics.observe(res, err)
	if err != nil {
		logger.Debug("Search failed.", "error", err, "expanded", res.Expanded)
		return res, fmt.Errorf("shortest path: %w", err)
	}

	logger.Debug("Search finished.",
		"found", res.Found,
		"degrees", res.Degrees(),
		"expanded", res.Expanded,
		"duration", time.Since(start),
	)
	return res, nil
}
