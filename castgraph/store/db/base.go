package db

import (
	"database/sql"
	"fmt"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/lib/pq"
)

var (
	createSchemaQuery = `
CREATE TABLE IF NOT EXISTS people (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	birth TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS movies (
	id    TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	year  TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS stars (
	person_id TEXT NOT NULL,
	movie_id  TEXT NOT NULL,
	PRIMARY KEY (person_id, movie_id),
	CONSTRAINT stars_person_id_fkey FOREIGN KEY (person_id) REFERENCES people (id),
	CONSTRAINT stars_movie_id_fkey FOREIGN KEY (movie_id) REFERENCES movies (id)
);
CREATE INDEX IF NOT EXISTS stars_movie_id_idx ON stars (movie_id);
`

	upsertPersonQuery = `
INSERT INTO people (id, name, birth) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, birth=EXCLUDED.birth
`
	upsertMovieQuery = `
INSERT INTO movies (id, title, year) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, year=EXCLUDED.year
`
	addCreditQuery = "INSERT INTO stars (person_id, movie_id) VALUES ($1, $2) ON CONFLICT DO NOTHING"

	personColumns = `
SELECT p.id, p.name, p.birth,
	COALESCE(array_agg(s.movie_id ORDER BY s.movie_id COLLATE "C") FILTER (WHERE s.movie_id IS NOT NULL), '{}')
FROM people p LEFT JOIN stars s ON s.person_id = p.id
`
	findPersonQuery = personColumns + "WHERE p.id=$1 GROUP BY p.id"
	allPeopleQuery  = personColumns + `GROUP BY p.id ORDER BY p.id COLLATE "C"`

	findMovieQuery = `
SELECT m.title, m.year,
	COALESCE(array_agg(s.person_id ORDER BY s.person_id COLLATE "C") FILTER (WHERE s.person_id IS NOT NULL), '{}')
FROM movies m LEFT JOIN stars s ON s.movie_id = m.id
WHERE m.id=$1 GROUP BY m.id
`
	personExistsQuery = "SELECT EXISTS (SELECT 1 FROM people WHERE id=$1)"
	neighborsQuery    = `
SELECT co.movie_id, co.person_id
FROM stars own JOIN stars co ON co.movie_id = own.movie_id
WHERE own.person_id=$1
ORDER BY co.movie_id COLLATE "C", co.person_id COLLATE "C"
`

	// Compile-time check for ensuring DBGraph implements Graph.
	_ graph.Graph = (*DBGraph)(nil)
)

// DBGraph implements a graph that keeps its relationship tables in a
// Postgres-compatible database.
type DBGraph struct {
	db *sql.DB
}

// NewDBGraph returns a DBGraph instance that connects to the db
// instance specified by dsn and makes sure the schema exists.
func NewDBGraph(dsn string) (*DBGraph, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec(createSchemaQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DBGraph{db: db}, nil
}

// Close terminates the connection to the backing db instance.
func (c *DBGraph) Close() error {
	return c.db.Close()
}

// UpsertPerson creates a new person or updates an existing person.
func (c *DBGraph) UpsertPerson(person *graph.Person) error {
	if _, err := c.db.Exec(upsertPersonQuery, person.ID, person.Name, person.Birth); err != nil {
		return fmt.Errorf("upsert person: %w", err)
	}
	return nil
}

// UpsertMovie creates a new movie or updates an existing movie.
func (c *DBGraph) UpsertMovie(movie *graph.Movie) error {
	if _, err := c.db.Exec(upsertMovieQuery, movie.ID, movie.Title, movie.Year); err != nil {
		return fmt.Errorf("upsert movie: %w", err)
	}
	return nil
}

// AddCredit links a person to a movie.
func (c *DBGraph) AddCredit(credit graph.Credit) error {
	if _, err := c.db.Exec(addCreditQuery, credit.PersonID, credit.MovieID); err != nil {
		switch foreignKeyViolation(err) {
		case "stars_person_id_fkey":
			err = graph.ErrUnknownPerson
		case "stars_movie_id_fkey":
			err = graph.ErrUnknownMovie
		}
		return fmt.Errorf("add credit: %w", err)
	}
	return nil
}

// FindPerson looks up a person by its ID.
func (c *DBGraph) FindPerson(id string) (*graph.Person, error) {
	person := new(graph.Person)
	row := c.db.QueryRow(findPersonQuery, id)
	if err := row.Scan(&person.ID, &person.Name, &person.Birth, pq.Array(&person.MovieIDs)); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("find person %s: %w", id, graph.ErrUnknownPerson)
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return person, nil
}

// FindMovie looks up a movie by its ID.
func (c *DBGraph) FindMovie(id string) (*graph.Movie, error) {
	movie := &graph.Movie{ID: id}
	row := c.db.QueryRow(findMovieQuery, id)
	if err := row.Scan(&movie.Title, &movie.Year, pq.Array(&movie.StarIDs)); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("find movie %s: %w", id, graph.ErrUnknownMovie)
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return movie, nil
}

// Neighbors returns the co-star credits of a person.
func (c *DBGraph) Neighbors(personID string) ([]graph.Credit, error) {
	var exists bool
	if err := c.db.QueryRow(personExistsQuery, personID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("neighbors %s: %w", personID, graph.ErrUnknownPerson)
	}

	rows, err := c.db.Query(neighborsQuery, personID)
	if err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var credits []graph.Credit
	for rows.Next() {
		var cr graph.Credit
		if err = rows.Scan(&cr.MovieID, &cr.PersonID); err != nil {
			return nil, fmt.Errorf("neighbors: %w", err)
		}
		credits = append(credits, cr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}
	return credits, nil
}

// People returns an iterator over all people in the graph.
func (c *DBGraph) People() (graph.PersonIterator, error) {
	rows, err := c.db.Query(allPeopleQuery)
	if err != nil {
		return nil, fmt.Errorf("people: %w", err)
	}

	return &personIterator{rows: rows}, nil
}

// foreignKeyViolation returns the name of the violated constraint if err
// indicates a foreign key constraint violation, or an empty string.
func foreignKeyViolation(err error) string {
	pqErr, valid := err.(*pq.Error)
	if !valid || pqErr.Code.Name() != "foreign_key_violation" {
		return ""
	}

	return pqErr.Constraint
}
