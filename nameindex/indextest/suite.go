package indextest

import (
	"errors"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/nameindex"
	gc "gopkg.in/check.v1"
)

// SuiteBase defines a re-usable set of name index tests that can be
// executed against any type that implements nameindex.Indexer.
type SuiteBase struct {
	idx nameindex.Indexer
}

// SetIndexer configures the test-suite to run all tests against idx.
func (s *SuiteBase) SetIndexer(idx nameindex.Indexer) {
	s.idx = idx
}

func (s *SuiteBase) index(c *gc.C, people ...*graph.Person) {
	for _, p := range people {
		c.Assert(s.idx.Index(p), gc.IsNil)
	}
}

// TestLookupIgnoresCase verifies that lookups are case-insensitive.
func (s *SuiteBase) TestLookupIgnoresCase(c *gc.C) {
	s.index(c, &graph.Person{ID: "102", Name: "Kevin Bacon"})

	for _, name := range []string{"Kevin Bacon", "kevin bacon", "KEVIN BACON", "  kevin Bacon "} {
		ids, err := s.idx.Lookup(name)
		c.Assert(err, gc.IsNil)
		c.Assert(ids, gc.DeepEquals, []string{"102"}, gc.Commentf("name %q", name))
	}
}

// TestLookupAmbiguous verifies that all people sharing a name are returned.
func (s *SuiteBase) TestLookupAmbiguous(c *gc.C) {
	s.index(c,
		&graph.Person{ID: "129", Name: "Tom Cruise"},
		&graph.Person{ID: "9999", Name: "tom cruise"},
		&graph.Person{ID: "158", Name: "Tom Hanks"},
	)

	ids, err := s.idx.Lookup("Tom Cruise")
	c.Assert(err, gc.IsNil)
	c.Assert(ids, gc.DeepEquals, []string{"129", "9999"})
}

// TestLookupUnknown verifies that unknown names produce no IDs.
func (s *SuiteBase) TestLookupUnknown(c *gc.C) {
	s.index(c, &graph.Person{ID: "102", Name: "Kevin Bacon"})

	ids, err := s.idx.Lookup("Nobody")
	c.Assert(err, gc.IsNil)
	c.Assert(ids, gc.HasLen, 0)
}

// TestReindexReplacesName verifies that re-indexing a person under a new
// name removes the old name.
func (s *SuiteBase) TestReindexReplacesName(c *gc.C) {
	s.index(c, &graph.Person{ID: "1", Name: "Old Name"})
	s.index(c, &graph.Person{ID: "1", Name: "New Name"})

	ids, err := s.idx.Lookup("old name")
	c.Assert(err, gc.IsNil)
	c.Assert(ids, gc.HasLen, 0)

	ids, err = s.idx.Lookup("new name")
	c.Assert(err, gc.IsNil)
	c.Assert(ids, gc.DeepEquals, []string{"1"})
}

// TestSuggestCloseNames verifies that misspelled names yield suggestions.
func (s *SuiteBase) TestSuggestCloseNames(c *gc.C) {
	s.index(c,
		&graph.Person{ID: "102", Name: "Kevin Bacon"},
		&graph.Person{ID: "200", Name: "Kevin Bacon"},
		&graph.Person{ID: "129", Name: "Tom Cruise"},
	)

	got, err := s.idx.Suggest("Kevn Bacon", 3)
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.Not(gc.HasLen), 0)
	c.Assert(got[0], gc.Equals, "Kevin Bacon")

	seen := make(map[string]bool)
	for _, name := range got {
		c.Assert(seen[name], gc.Equals, false, gc.Commentf("duplicate suggestion %q", name))
		seen[name] = true
	}

	got, err = s.idx.Suggest("Kevin", 0)
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.HasLen, 0)
}

// TestIndexMissingID verifies that people without an ID are rejected.
func (s *SuiteBase) TestIndexMissingID(c *gc.C) {
	err := s.idx.Index(&graph.Person{Name: "Anonymous"})
	c.Assert(errors.Is(err, nameindex.ErrMissingID), gc.Equals, true)
}
