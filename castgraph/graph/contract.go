package graph

// Graph is implemented by objects that can populate or query the
// person/movie relationship tables.
type Graph interface {
	// UpsertPerson creates a new person or updates the name and birth year
	// of an existing one. Credits of an existing person are preserved.
	UpsertPerson(person *Person) error

	// UpsertMovie creates a new movie or updates the title and year of an
	// existing one. Credits of an existing movie are preserved.
	UpsertMovie(movie *Movie) error

	// AddCredit records that a person starred in a movie. Both sides must
	// already exist.
	AddCredit(credit Credit) error

	// FindPerson looks up a person by its ID.
	FindPerson(id string) (*Person, error)

	// FindMovie looks up a movie by its ID.
	FindMovie(id string) (*Movie, error)

	// Neighbors returns the (movie, person) pairs for every person who
	// starred in a movie together with the given person, the person itself
	// included. Results are distinct and ordered by movie ID, then person ID.
	Neighbors(personID string) ([]Credit, error)

	// People returns an iterator over all people ordered by ID.
	People() (PersonIterator, error)
}

// PersonIterator is implemented by objects that can iterate the people of
// a graph.
type PersonIterator interface {
	Iterator

	// Person returns the currently fetched person object.
	Person() *Person
}

// Iterator is implemented by graph objects that can be iterated.
type Iterator interface {
	// Next advances the iterator. If no more items are available or an
	// error occurs, calls to Next() return false.
	Next() bool

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources associated with an iterator.
	Close() error
}
