// Package search implements frontier-driven graph search over the implicit
// co-star graph.
//
// A search starts from a root node wrapping the source person, repeatedly
// removes a node from the frontier, and expands it through a NeighborFunc
// until the target person is removed from the frontier or the frontier runs
// dry. States that were already expanded are tracked in an explored set that
// is private to a single search call. With the Queue discipline the first path
// found to the target is a shortest one in number of credits.
package search
