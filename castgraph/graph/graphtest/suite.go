package graphtest

import (
	"errors"
	"fmt"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	gc "gopkg.in/check.v1"
)

// SuiteBase defines a re-usable set of graph-related tests that can
// be executed against any type that implements graph.Graph.
type SuiteBase struct {
	g graph.Graph
}

// SetGraph configures the test-suite to run all tests against g.
func (s *SuiteBase) SetGraph(g graph.Graph) {
	s.g = g
}

// seedChain populates the graph with the three-person chain
// A -(M1)- B -(M2)- C.
func (s *SuiteBase) seedChain(c *gc.C) {
	for _, p := range []*graph.Person{
		{ID: "A", Name: "Alice", Birth: "1970"},
		{ID: "B", Name: "Bob", Birth: "1971"},
		{ID: "C", Name: "Carol"},
	} {
		c.Assert(s.g.UpsertPerson(p), gc.IsNil)
	}
	for _, m := range []*graph.Movie{
		{ID: "M1", Title: "First", Year: "2000"},
		{ID: "M2", Title: "Second", Year: "2001"},
	} {
		c.Assert(s.g.UpsertMovie(m), gc.IsNil)
	}
	for _, cr := range []graph.Credit{
		{MovieID: "M1", PersonID: "A"},
		{MovieID: "M1", PersonID: "B"},
		{MovieID: "M2", PersonID: "B"},
		{MovieID: "M2", PersonID: "C"},
	} {
		c.Assert(s.g.AddCredit(cr), gc.IsNil)
	}
}

// TestUpsertPerson verifies the person upsert logic.
func (s *SuiteBase) TestUpsertPerson(c *gc.C) {
	original := &graph.Person{ID: "P1", Name: "Kevin Bacon", Birth: "1958"}
	c.Assert(s.g.UpsertPerson(original), gc.IsNil)

	stored, err := s.g.FindPerson("P1")
	c.Assert(err, gc.IsNil)
	c.Assert(stored.Name, gc.Equals, "Kevin Bacon")
	c.Assert(stored.Birth, gc.Equals, "1958")
	c.Assert(stored.MovieIDs, gc.HasLen, 0)

	updated := &graph.Person{ID: "P1", Name: "Kevin N. Bacon"}
	c.Assert(s.g.UpsertPerson(updated), gc.IsNil)

	stored, err = s.g.FindPerson("P1")
	c.Assert(err, gc.IsNil)
	c.Assert(stored.Name, gc.Equals, "Kevin N. Bacon")
	c.Assert(stored.Birth, gc.Equals, "")
}

// TestUpsertPreservesCredits verifies that re-upserting an entity does not
// drop its credits.
func (s *SuiteBase) TestUpsertPreservesCredits(c *gc.C) {
	s.seedChain(c)

	c.Assert(s.g.UpsertPerson(&graph.Person{ID: "B", Name: "Robert"}), gc.IsNil)
	c.Assert(s.g.UpsertMovie(&graph.Movie{ID: "M1", Title: "First (cut)"}), gc.IsNil)

	person, err := s.g.FindPerson("B")
	c.Assert(err, gc.IsNil)
	c.Assert(person.MovieIDs, gc.DeepEquals, []string{"M1", "M2"})

	movie, err := s.g.FindMovie("M1")
	c.Assert(err, gc.IsNil)
	c.Assert(movie.Title, gc.Equals, "First (cut)")
	c.Assert(movie.StarIDs, gc.DeepEquals, []string{"A", "B"})
}

// TestFindUnknown verifies that lookups of missing entities fail with the
// matching sentinel errors.
func (s *SuiteBase) TestFindUnknown(c *gc.C) {
	_, err := s.g.FindPerson("missing")
	c.Assert(errors.Is(err, graph.ErrUnknownPerson), gc.Equals, true)
	c.Assert(errors.Is(err, graph.ErrNotFound), gc.Equals, true)

	_, err = s.g.FindMovie("missing")
	c.Assert(errors.Is(err, graph.ErrUnknownMovie), gc.Equals, true)

	_, err = s.g.Neighbors("missing")
	c.Assert(errors.Is(err, graph.ErrUnknownPerson), gc.Equals, true)
}

// TestAddCreditUnknownSide verifies that credits referencing unknown
// entities are rejected.
func (s *SuiteBase) TestAddCreditUnknownSide(c *gc.C) {
	s.seedChain(c)

	err := s.g.AddCredit(graph.Credit{MovieID: "M1", PersonID: "nobody"})
	c.Assert(errors.Is(err, graph.ErrUnknownPerson), gc.Equals, true)

	err = s.g.AddCredit(graph.Credit{MovieID: "nothing", PersonID: "A"})
	c.Assert(errors.Is(err, graph.ErrUnknownMovie), gc.Equals, true)
}

// TestAddCreditIdempotent verifies that adding the same credit twice is
// harmless.
func (s *SuiteBase) TestAddCreditIdempotent(c *gc.C) {
	s.seedChain(c)
	c.Assert(s.g.AddCredit(graph.Credit{MovieID: "M1", PersonID: "A"}), gc.IsNil)

	movie, err := s.g.FindMovie("M1")
	c.Assert(err, gc.IsNil)
	c.Assert(movie.StarIDs, gc.DeepEquals, []string{"A", "B"})
}

// TestNeighbors verifies the adjacency function, including the self pair.
func (s *SuiteBase) TestNeighbors(c *gc.C) {
	s.seedChain(c)

	got, err := s.g.Neighbors("B")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, []graph.Credit{
		{MovieID: "M1", PersonID: "A"},
		{MovieID: "M1", PersonID: "B"},
		{MovieID: "M2", PersonID: "B"},
		{MovieID: "M2", PersonID: "C"},
	})

	got, err = s.g.Neighbors("A")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, []graph.Credit{
		{MovieID: "M1", PersonID: "A"},
		{MovieID: "M1", PersonID: "B"},
	})
}

// TestNeighborsIdempotent verifies that repeated neighbor queries return
// the same result.
func (s *SuiteBase) TestNeighborsIdempotent(c *gc.C) {
	s.seedChain(c)

	first, err := s.g.Neighbors("B")
	c.Assert(err, gc.IsNil)
	for i := 0; i < 5; i++ {
		again, err := s.g.Neighbors("B")
		c.Assert(err, gc.IsNil)
		c.Assert(again, gc.DeepEquals, first)
	}
}

// TestNeighborsWithoutCredits verifies that a known person without any
// movie has no neighbors.
func (s *SuiteBase) TestNeighborsWithoutCredits(c *gc.C) {
	c.Assert(s.g.UpsertPerson(&graph.Person{ID: "loner", Name: "Loner"}), gc.IsNil)

	got, err := s.g.Neighbors("loner")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.HasLen, 0)
}

// TestPeopleIterator verifies that the iterator visits every person in ID
// order.
func (s *SuiteBase) TestPeopleIterator(c *gc.C) {
	for i := 9; i >= 0; i-- {
		id := fmt.Sprintf("p%02d", i)
		c.Assert(s.g.UpsertPerson(&graph.Person{ID: id, Name: "Person " + id}), gc.IsNil)
	}

	it, err := s.g.People()
	c.Assert(err, gc.IsNil)

	var seen []string
	for it.Next() {
		seen = append(seen, it.Person().ID)
	}
	c.Assert(it.Error(), gc.IsNil)
	c.Assert(it.Close(), gc.IsNil)

	c.Assert(seen, gc.HasLen, 10)
	for i, id := range seen {
		c.Assert(id, gc.Equals, fmt.Sprintf("p%02d", i))
	}
}
