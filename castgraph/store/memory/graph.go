package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/archichudinow/cs50ai/castgraph/graph"
)

// Compile-time check for ensuring InMemoryGraph implements Graph.
var _ graph.Graph = (*InMemoryGraph)(nil)

// idSet is a set of entity IDs.
type idSet map[string]struct{}

func (s idSet) sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InMemoryGraph implements an in-memory relationship graph that can be
// concurrently accessed by multiple clients. Once loaded it is only read,
// so searches may share it without further coordination.
type InMemoryGraph struct {
	mu sync.RWMutex

	people map[string]*graph.Person
	movies map[string]*graph.Movie

	personMovies map[string]idSet
	movieStars   map[string]idSet
}

// NewInMemoryGraph creates a new in-memory relationship graph.
func NewInMemoryGraph() *InMemoryGraph {
	return &InMemoryGraph{
		people:       make(map[string]*graph.Person),
		movies:       make(map[string]*graph.Movie),
		personMovies: make(map[string]idSet),
		movieStars:   make(map[string]idSet),
	}
}

// UpsertPerson creates a new person or updates an existing person.
func (s *InMemoryGraph) UpsertPerson(person *graph.Person) error {
	if person == nil || person.ID == "" {
		return fmt.Errorf("upsert person: %w", graph.ErrUnknownPerson)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.people[person.ID] = &graph.Person{ID: person.ID, Name: person.Name, Birth: person.Birth}
	if _, exists := s.personMovies[person.ID]; !exists {
		s.personMovies[person.ID] = make(idSet)
	}
	return nil
}

// UpsertMovie creates a new movie or updates an existing movie.
func (s *InMemoryGraph) UpsertMovie(movie *graph.Movie) error {
	if movie == nil || movie.ID == "" {
		return fmt.Errorf("upsert movie: %w", graph.ErrUnknownMovie)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies[movie.ID] = &graph.Movie{ID: movie.ID, Title: movie.Title, Year: movie.Year}
	if _, exists := s.movieStars[movie.ID]; !exists {
		s.movieStars[movie.ID] = make(idSet)
	}
	return nil
}

// AddCredit links a person to a movie.
func (s *InMemoryGraph) AddCredit(credit graph.Credit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.people[credit.PersonID]; !exists {
		return fmt.Errorf("add credit %s: %w", credit.PersonID, graph.ErrUnknownPerson)
	}
	if _, exists := s.movies[credit.MovieID]; !exists {
		return fmt.Errorf("add credit %s: %w", credit.MovieID, graph.ErrUnknownMovie)
	}

	s.personMovies[credit.PersonID][credit.MovieID] = struct{}{}
	s.movieStars[credit.MovieID][credit.PersonID] = struct{}{}
	return nil
}

// FindPerson looks up a person by its ID.
func (s *InMemoryGraph) FindPerson(id string) (*graph.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	person, exists := s.people[id]
	if !exists {
		return nil, fmt.Errorf("find person %s: %w", id, graph.ErrUnknownPerson)
	}

	pCopy := new(graph.Person)
	*pCopy = *person
	pCopy.MovieIDs = s.personMovies[id].sorted()
	return pCopy, nil
}

// FindMovie looks up a movie by its ID.
func (s *InMemoryGraph) FindMovie(id string) (*graph.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie, exists := s.movies[id]
	if !exists {
		return nil, fmt.Errorf("find movie %s: %w", id, graph.ErrUnknownMovie)
	}

	mCopy := new(graph.Movie)
	*mCopy = *movie
	mCopy.StarIDs = s.movieStars[id].sorted()
	return mCopy, nil
}

// Neighbors returns the co-star credits of a person.
func (s *InMemoryGraph) Neighbors(personID string) ([]graph.Credit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movieIDs, exists := s.personMovies[personID]
	if !exists {
		return nil, fmt.Errorf("neighbors %s: %w", personID, graph.ErrUnknownPerson)
	}

	var credits []graph.Credit
	for _, movieID := range movieIDs.sorted() {
		for _, starID := range s.movieStars[movieID].sorted() {
			credits = append(credits, graph.Credit{MovieID: movieID, PersonID: starID})
		}
	}
	return credits, nil
}

// People returns an iterator over all people in the graph.
func (s *InMemoryGraph) People() (graph.PersonIterator, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.people))
	for id := range s.people {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)

	return &personIterator{s: s, ids: ids}, nil
}
