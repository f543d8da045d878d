package graph

// Person is a credited performer.
type Person struct {
	ID    string
	Name  string
	Birth string

	// MovieIDs holds the distinct IDs of the movies the person starred in,
	// in ascending order.
	MovieIDs []string
}

// Movie is a title with its credited stars.
type Movie struct {
	ID    string
	Title string
	Year  string

	// StarIDs holds the distinct IDs of the people starring in the movie,
	// in ascending order.
	StarIDs []string
}

// Credit is a single relationship edge: PersonID starred in MovieID.
// When used as a search step it reads as "reached PersonID via MovieID".
type Credit struct {
	MovieID  string
	PersonID string
}

// Less orders credits by movie ID, then person ID.
func (c Credit) Less(other Credit) bool {
	if c.MovieID != other.MovieID {
		return c.MovieID < other.MovieID
	}
	return c.PersonID < other.PersonID
}
