// Package dataset loads the people, movies and stars CSV tables into a
// relationship graph.
//
// Loading is lossy but non-fatal: rows without an ID and credits that refer
// to unknown people or movies are skipped and reported through
// Stats.Skipped. Missing files or headers abort the load.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// File names expected inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Sink receives the loaded rows. graph.Graph implementations satisfy it.
type Sink interface {
	UpsertPerson(person *graph.Person) error
	UpsertMovie(movie *graph.Movie) error
	AddCredit(credit graph.Credit) error
}

// Stats summarizes a load.
type Stats struct {
	People  int
	Movies  int
	Credits int

	// Skipped collects one error per dropped row. It is nil when every
	// row was loaded.
	Skipped error
}

// SkippedCount returns the number of dropped rows.
func (s Stats) SkippedCount() int {
	var merr *multierror.Error
	if errors.As(s.Skipped, &merr) {
		return merr.Len()
	}
	if s.Skipped != nil {
		return 1
	}
	return 0
}

// Loader reads dataset directories.
type Loader struct {
	policy *bluemonday.Policy
}

// NewLoader returns a Loader that strips any markup from display strings.
func NewLoader() *Loader {
	return &Loader{policy: bluemonday.StrictPolicy()}
}

// Load reads the three tables from dir into sink. The people and movies
// files are parsed concurrently; credits are loaded once both are stored.
func (l *Loader) Load(ctx context.Context, dir string, sink Sink) (Stats, error) {
	logger := logging.FromContext(ctx)
	logger.Debug("Loading dataset.", "dir", dir)

	var (
		stats   Stats
		skipped *multierror.Error
		people  []*graph.Person
		movies  []*graph.Movie
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		people, err = l.readPeople(egCtx, filepath.Join(dir, PeopleFile))
		return err
	})
	eg.Go(func() error {
		var err error
		movies, err = l.readMovies(egCtx, filepath.Join(dir, MoviesFile))
		return err
	})
	if err := eg.Wait(); err != nil {
		return stats, err
	}

	for _, p := range people {
		if p.ID == "" {
			skipped = multierror.Append(skipped, xerrors.Errorf("%s: person %q: %w", PeopleFile, p.Name, graph.ErrUnknownPerson))
			continue
		}
		if err := sink.UpsertPerson(p); err != nil {
			return stats, xerrors.Errorf("load people: %w", err)
		}
		stats.People++
	}
	for _, m := range movies {
		if m.ID == "" {
			skipped = multierror.Append(skipped, xerrors.Errorf("%s: movie %q: %w", MoviesFile, m.Title, graph.ErrUnknownMovie))
			continue
		}
		if err := sink.UpsertMovie(m); err != nil {
			return stats, xerrors.Errorf("load movies: %w", err)
		}
		stats.Movies++
	}

	err := l.forEachRow(ctx, filepath.Join(dir, StarsFile), []string{"person_id", "movie_id"}, func(row []string) error {
		credit := graph.Credit{PersonID: strings.TrimSpace(row[0]), MovieID: strings.TrimSpace(row[1])}
		if err := sink.AddCredit(credit); err != nil {
			if errors.Is(err, graph.ErrNotFound) {
				skipped = multierror.Append(skipped, xerrors.Errorf("%s: %s/%s: %w", StarsFile, credit.PersonID, credit.MovieID, err))
				return nil
			}
			return err
		}
		stats.Credits++
		return nil
	})
	if err != nil {
		return stats, xerrors.Errorf("load stars: %w", err)
	}

	stats.Skipped = skipped.ErrorOrNil()
	if stats.Skipped != nil {
		logger.Warn("Dataset rows skipped.", "count", stats.SkippedCount())
		logger.Debug("Skipped rows.", "details", stats.Skipped)
	}
	logger.Info("Dataset loaded.", "people", stats.People, "movies", stats.Movies, "credits", stats.Credits)
	return stats, nil
}

func (l *Loader) readPeople(ctx context.Context, path string) ([]*graph.Person, error) {
	var people []*graph.Person
	err := l.forEachRow(ctx, path, []string{"id", "name", "birth"}, func(row []string) error {
		people = append(people, &graph.Person{
			ID:    strings.TrimSpace(row[0]),
			Name:  l.clean(row[1]),
			Birth: strings.TrimSpace(row[2]),
		})
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("load people: %w", err)
	}
	return people, nil
}

func (l *Loader) readMovies(ctx context.Context, path string) ([]*graph.Movie, error) {
	var movies []*graph.Movie
	err := l.forEachRow(ctx, path, []string{"id", "title", "year"}, func(row []string) error {
		movies = append(movies, &graph.Movie{
			ID:    strings.TrimSpace(row[0]),
			Title: l.clean(row[1]),
			Year:  strings.TrimSpace(row[2]),
		})
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("load movies: %w", err)
	}
	return movies, nil
}

// clean strips markup from a display string and returns plain text.
func (l *Loader) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(l.policy.Sanitize(s)))
}

// forEachRow opens a CSV file and calls fn with the values of the requested
// columns for every record, in the order of columns.
func (l *Loader) forEachRow(ctx context.Context, path string, columns []string, fn func(row []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return xerrors.Errorf("%s: read header: %w", filepath.Base(path), err)
	}
	positions, err := columnPositions(header, columns)
	if err != nil {
		return xerrors.Errorf("%s: %w", filepath.Base(path), err)
	}

	row := make([]string, len(columns))
	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return xerrors.Errorf("%s: %w", filepath.Base(path), err)
		}

		for i, pos := range positions {
			row[i] = ""
			if pos < len(record) {
				row[i] = record[pos]
			}
		}
		if err = fn(row); err != nil {
			return err
		}
	}
}

// columnPositions maps each requested column to its index in header.
func columnPositions(header, columns []string) ([]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[strings.ToLower(name)] = i
	}

	positions := make([]int, len(columns))
	for i, col := range columns {
		pos, ok := index[col]
		if !ok {
			return nil, xerrors.Errorf("%q: %w", col, ErrMissingColumn)
		}
		positions[i] = pos
	}
	return positions, nil
}
