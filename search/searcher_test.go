package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/castgraph/graph/mocks"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(SearcherTestSuite))

type SearcherTestSuite struct{}

func (s *SearcherTestSuite) TestUnknownPersonFailsFast(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	g := mocks.NewMockGraph(ctrl)
	g.EXPECT().FindPerson("A").Return(&graph.Person{ID: "A"}, nil)
	g.EXPECT().FindPerson("ghost").Return(nil, fmt.Errorf("find person ghost: %w", graph.ErrUnknownPerson))

	_, err := NewSearcher(g, nil).ShortestPath(context.TODO(), "A", "ghost")
	c.Assert(errors.Is(err, graph.ErrUnknownPerson), gc.Equals, true)
}

func (s *SearcherTestSuite) TestShortestPathUsesGraphNeighbors(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	g := mocks.NewMockGraph(ctrl)
	g.EXPECT().FindPerson(gomock.Any()).Return(&graph.Person{}, nil).Times(2)
	g.EXPECT().Neighbors("A").Return([]graph.Credit{
		{MovieID: "M1", PersonID: "A"},
		{MovieID: "M1", PersonID: "B"},
	}, nil)

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("debug", "text", &logs))

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	res, err := NewSearcher(g, metrics).ShortestPath(ctx, "A", "B")
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(res.ID, gc.Not(gc.Equals), uuid.Nil)
	c.Assert(res.Path, gc.DeepEquals, []graph.Credit{{MovieID: "M1", PersonID: "B"}})

	c.Assert(logs.String(), gc.Matches, "(?s).*search_id="+res.ID.String()+".*")
	c.Assert(testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeFound)), gc.Equals, 1.0)
	c.Assert(testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeNotFound)), gc.Equals, 0.0)
}

func (s *SearcherTestSuite) TestMetricsRecordOutcomes(c *gc.C) {
	g := castGraph(c, []string{"A", "B", "C"}, map[string][]string{"M1": {"A", "B"}})
	metrics := NewMetrics(prometheus.NewRegistry())
	searcher := NewSearcher(g, metrics, WithMaxExpansions(1))

	res, err := searcher.ShortestPath(context.TODO(), "A", "C")
	c.Assert(err, gc.NotNil)
	c.Assert(errors.Is(err, ErrExpansionLimit), gc.Equals, true)
	c.Assert(res.Found, gc.Equals, false)

	res, err = searcher.ShortestPath(context.TODO(), "C", "A")
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, false)

	res, err = searcher.ShortestPath(context.TODO(), "A", "B")
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)

	c.Assert(testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeError)), gc.Equals, 1.0)
	c.Assert(testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeNotFound)), gc.Equals, 1.0)
	c.Assert(testutil.ToFloat64(metrics.searches.WithLabelValues(OutcomeFound)), gc.Equals, 1.0)
}
