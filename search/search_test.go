package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/castgraph/store/memory"
	"github.com/archichudinow/cs50ai/logging"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(FindPathTestSuite))

type FindPathTestSuite struct{}

// castGraph builds an in-memory graph from a movie -> stars table.
func castGraph(c *gc.C, people []string, movies map[string][]string) *memory.InMemoryGraph {
	g := memory.NewInMemoryGraph()
	for _, id := range people {
		c.Assert(g.UpsertPerson(&graph.Person{ID: id, Name: "Person " + id}), gc.IsNil)
	}
	for movieID, stars := range movies {
		c.Assert(g.UpsertMovie(&graph.Movie{ID: movieID, Title: "Movie " + movieID}), gc.IsNil)
		for _, star := range stars {
			c.Assert(g.AddCredit(graph.Credit{MovieID: movieID, PersonID: star}), gc.IsNil)
		}
	}
	return g
}

func (s *FindPathTestSuite) TestSameSourceAndTarget(c *gc.C) {
	g := castGraph(c, []string{"A", "B"}, map[string][]string{"M1": {"A", "B"}})

	calls := 0
	neighbors := func(state string) ([]graph.Credit, error) {
		calls++
		return g.Neighbors(state)
	}

	res, err := FindPath(context.TODO(), "A", "A", neighbors)
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(res.Degrees(), gc.Equals, 0)
	c.Assert(res.Path, gc.NotNil)
	c.Assert(res.Expanded, gc.Equals, 0)
	c.Assert(calls, gc.Equals, 0)
}

func (s *FindPathTestSuite) TestTwoDegreeChain(c *gc.C) {
	g := castGraph(c, []string{"A", "B", "C"}, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"B", "C"},
	})

	res, err := FindPath(context.TODO(), "A", "C", g.Neighbors)
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(res.Path, gc.DeepEquals, []graph.Credit{
		{MovieID: "M1", PersonID: "B"},
		{MovieID: "M2", PersonID: "C"},
	})
	c.Assert(res.Degrees(), gc.Equals, 2)
}

func (s *FindPathTestSuite) TestFoundChainIsLogged(c *gc.C) {
	g := castGraph(c, []string{"A", "B", "C"}, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"B", "C"},
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logging.WithLogger(context.Background(), logger)

	res, err := FindPath(ctx, "A", "C", g.Neighbors)
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(buf.String(), gc.Matches, `(?s).*msg="Path found." chain="\[A B C\]".*`)
}

func (s *FindPathTestSuite) TestDisjointComponents(c *gc.C) {
	g := castGraph(c, []string{"A", "B", "C", "D"}, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"C", "D"},
	})

	res, err := FindPath(context.TODO(), "A", "C", g.Neighbors)
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, false)
	c.Assert(res.Path, gc.HasLen, 0)
	c.Assert(res.Expanded, gc.Equals, 2)
}

// duplicateGraph has two routes to T of equal length: S-A-T via M3 and
// S-B-T via M4. T leads on to Z.
func duplicateGraph(c *gc.C) *memory.InMemoryGraph {
	return castGraph(c, []string{"S", "A", "B", "T", "Z"}, map[string][]string{
		"M1": {"S", "A"},
		"M2": {"S", "B"},
		"M3": {"A", "T"},
		"M4": {"B", "T"},
		"M5": {"T", "Z"},
	})
}

func (s *FindPathTestSuite) TestDuplicateEnqueueSuppressed(c *gc.C) {
	g := duplicateGraph(c)

	expandedCount := make(map[string]int)
	discarded := 0
	obs := func(ev Event) {
		switch ev.Kind {
		case Expanded:
			expandedCount[ev.Node.State]++
		case Discarded:
			discarded++
		}
	}

	res, err := FindPath(context.TODO(), "S", "Z", g.Neighbors, WithObserver(obs))
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(res.Path, gc.DeepEquals, []graph.Credit{
		{MovieID: "M1", PersonID: "A"},
		{MovieID: "M3", PersonID: "T"},
		{MovieID: "M5", PersonID: "Z"},
	})
	c.Assert(expandedCount["T"], gc.Equals, 1)
	c.Assert(discarded, gc.Equals, 0)
}

// blindFrontier never reports pending states, so the search relies on the
// explored check at removal time to drop duplicates.
type blindFrontier struct {
	Frontier
}

func (blindFrontier) ContainsState(string) bool { return false }

func (s *FindPathTestSuite) TestStaleNodesDiscardedLazily(c *gc.C) {
	g := duplicateGraph(c)

	expandedCount := make(map[string]int)
	var discardedStates []string
	obs := func(ev Event) {
		switch ev.Kind {
		case Expanded:
			expandedCount[ev.Node.State]++
		case Discarded:
			discardedStates = append(discardedStates, ev.Node.State)
		}
	}

	res, err := FindPath(context.TODO(), "S", "Z", g.Neighbors,
		WithFrontier(func() Frontier { return blindFrontier{NewQueueFrontier()} }),
		WithObserver(obs),
	)
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(res.Path[1], gc.Equals, graph.Credit{MovieID: "M3", PersonID: "T"})
	c.Assert(res.Degrees(), gc.Equals, 3)
	for state, n := range expandedCount {
		c.Assert(n, gc.Equals, 1, gc.Commentf("state %s expanded %d times", state, n))
	}
	c.Assert(discardedStates, gc.Not(gc.HasLen), 0)
}

func (s *FindPathTestSuite) TestNoStateExpandedTwice(c *gc.C) {
	g := randomGraph(c, rand.New(rand.NewSource(7)), 40, 60)

	seen := make(map[string]bool)
	lastExplored := 0
	obs := func(ev Event) {
		switch ev.Kind {
		case Expanded:
			c.Assert(seen[ev.Node.State], gc.Equals, false)
			seen[ev.Node.State] = true
			c.Assert(ev.Explored, gc.Equals, lastExplored+1)
			lastExplored = ev.Explored
		case Discarded:
			c.Assert(seen[ev.Node.State], gc.Equals, true)
			c.Assert(ev.Explored, gc.Equals, lastExplored)
		}
	}

	res, err := FindPath(context.TODO(), "p00", "missing", g.Neighbors, WithObserver(obs))
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, false)
	c.Assert(res.Expanded, gc.Equals, lastExplored)
}

func (s *FindPathTestSuite) TestStackDisciplineFindsDeeperPath(c *gc.C) {
	g := castGraph(c, []string{"S", "A", "B", "C", "T"}, map[string][]string{
		"M1": {"S", "A"},
		"M2": {"S", "B"},
		"M3": {"B", "C"},
		"M4": {"C", "T"},
		"M5": {"A", "T"},
	})

	res, err := FindPath(context.TODO(), "S", "T", g.Neighbors, WithDiscipline(Stack))
	c.Assert(err, gc.IsNil)
	c.Assert(res.Found, gc.Equals, true)
	c.Assert(res.Path, gc.DeepEquals, []graph.Credit{
		{MovieID: "M2", PersonID: "B"},
		{MovieID: "M3", PersonID: "C"},
		{MovieID: "M4", PersonID: "T"},
	})

	res, err = FindPath(context.TODO(), "S", "T", g.Neighbors, WithDiscipline(Queue))
	c.Assert(err, gc.IsNil)
	c.Assert(res.Path, gc.DeepEquals, []graph.Credit{
		{MovieID: "M1", PersonID: "A"},
		{MovieID: "M5", PersonID: "T"},
	})
}

func (s *FindPathTestSuite) TestCancelledContext(c *gc.C) {
	g := castGraph(c, []string{"A", "B"}, map[string][]string{"M1": {"A", "B"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindPath(ctx, "A", "B", g.Neighbors)
	c.Assert(errors.Is(err, context.Canceled), gc.Equals, true)
}

func (s *FindPathTestSuite) TestExpansionLimit(c *gc.C) {
	people := make([]string, 10)
	movies := make(map[string][]string)
	for i := range people {
		people[i] = fmt.Sprintf("p%d", i)
		if i > 0 {
			movies[fmt.Sprintf("m%d", i)] = []string{people[i-1], people[i]}
		}
	}
	g := castGraph(c, people, movies)

	res, err := FindPath(context.TODO(), "p0", "p9", g.Neighbors, WithMaxExpansions(3))
	c.Assert(errors.Is(err, ErrExpansionLimit), gc.Equals, true)
	c.Assert(res.Expanded, gc.Equals, 3)

	res, err = FindPath(context.TODO(), "p0", "p9", g.Neighbors, WithMaxExpansions(9))
	c.Assert(err, gc.IsNil)
	c.Assert(res.Degrees(), gc.Equals, 9)
}

func (s *FindPathTestSuite) TestNeighborErrorPropagates(c *gc.C) {
	boom := errors.New("boom")
	_, err := FindPath(context.TODO(), "A", "B", func(string) ([]graph.Credit, error) {
		return nil, boom
	})
	c.Assert(errors.Is(err, boom), gc.Equals, true)
}

// randomGraph builds a graph with n people and m movies of 2-3 random stars.
func randomGraph(c *gc.C, rnd *rand.Rand, n, m int) *memory.InMemoryGraph {
	people := make([]string, n)
	for i := range people {
		people[i] = fmt.Sprintf("p%02d", i)
	}
	movies := make(map[string][]string, m)
	for i := 0; i < m; i++ {
		size := 2 + rnd.Intn(2)
		stars := make([]string, 0, size)
		for j := 0; j < size; j++ {
			stars = append(stars, people[rnd.Intn(n)])
		}
		movies[fmt.Sprintf("m%02d", i)] = stars
	}
	return castGraph(c, people, movies)
}

// distances computes reference hop counts from source with a plain BFS over
// the person adjacency.
func distances(c *gc.C, g *memory.InMemoryGraph, source string) map[string]int {
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		credits, err := g.Neighbors(cur)
		c.Assert(err, gc.IsNil)
		for _, cr := range credits {
			if _, ok := dist[cr.PersonID]; !ok {
				dist[cr.PersonID] = dist[cur] + 1
				queue = append(queue, cr.PersonID)
			}
		}
	}
	return dist
}

func (s *FindPathTestSuite) TestShortestOnRandomGraphs(c *gc.C) {
	rnd := rand.New(rand.NewSource(42))
	for round := 0; round < 5; round++ {
		const n = 14
		g := randomGraph(c, rnd, n, 9)

		for i := 0; i < n; i++ {
			source := fmt.Sprintf("p%02d", i)
			dist := distances(c, g, source)

			for j := 0; j < n; j++ {
				target := fmt.Sprintf("p%02d", j)
				res, err := FindPath(context.TODO(), source, target, g.Neighbors)
				c.Assert(err, gc.IsNil)

				want, reachable := dist[target]
				c.Assert(res.Found, gc.Equals, reachable, gc.Commentf("%s -> %s", source, target))
				if !reachable {
					c.Assert(res.Expanded <= len(dist), gc.Equals, true)
					continue
				}
				c.Assert(res.Degrees(), gc.Equals, want, gc.Commentf("%s -> %s", source, target))
				assertValidChain(c, g, source, target, res.Path)
			}
		}
	}
}

// assertValidChain checks that every step of path shares a movie with the
// previous person and that the chain ends at target.
func assertValidChain(c *gc.C, g *memory.InMemoryGraph, source, target string, path []graph.Credit) {
	prev := source
	for _, step := range path {
		movie, err := g.FindMovie(step.MovieID)
		c.Assert(err, gc.IsNil)
		c.Assert(movie.StarIDs, containsID, prev)
		c.Assert(movie.StarIDs, containsID, step.PersonID)
		prev = step.PersonID
	}
	c.Assert(prev, gc.Equals, target)
}

type containsIDChecker struct {
	*gc.CheckerInfo
}

var containsID gc.Checker = &containsIDChecker{
	&gc.CheckerInfo{Name: "containsID", Params: []string{"ids", "id"}},
}

func (containsIDChecker) Check(params []interface{}, names []string) (bool, string) {
	ids, ok := params[0].([]string)
	if !ok {
		return false, "ids must be a []string"
	}
	for _, id := range ids {
		if id == params[1] {
			return true, ""
		}
	}
	return false, ""
}
