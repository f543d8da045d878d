package es

import (
	"errors"

	"github.com/archichudinow/cs50ai/nameindex"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(LookupResultTestSuite))

type LookupResultTestSuite struct{}

func hits(ids ...string) []esHitWrapper {
	list := make([]esHitWrapper, 0, len(ids))
	for _, id := range ids {
		list = append(list, esHitWrapper{DocSource: esDoc{PersonID: id}})
	}
	return list
}

func (s *LookupResultTestSuite) TestCompleteResultIsSorted(c *gc.C) {
	res := &esSearchRes{Hits: esSearchResHits{
		Total:   esTotal{Count: 3},
		HitList: hits("30", "10", "20"),
	}}

	ids, err := lookupIDs("twin", res)
	c.Assert(err, gc.IsNil)
	c.Assert(ids, gc.DeepEquals, []string{"10", "20", "30"})
}

func (s *LookupResultTestSuite) TestNoMatches(c *gc.C) {
	ids, err := lookupIDs("nobody", &esSearchRes{})
	c.Assert(err, gc.IsNil)
	c.Assert(ids, gc.HasLen, 0)
}

func (s *LookupResultTestSuite) TestTruncatedResultIsRejected(c *gc.C) {
	res := &esSearchRes{Hits: esSearchResHits{
		Total:   esTotal{Count: lookupSize + 1},
		HitList: make([]esHitWrapper, lookupSize),
	}}

	_, err := lookupIDs("John Smith", res)
	c.Assert(errors.Is(err, nameindex.ErrTooManyMatches), gc.Equals, true)
	c.Assert(err, gc.ErrorMatches, `lookup "John Smith": 1001 matches, at most 1000 supported: .*`)
}
