// Package report renders search results for people.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/search"
	"github.com/charmbracelet/lipgloss"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Step is one rendered link of a chain.
type Step struct {
	Person string `json:"person"`
	CoStar string `json:"co_star"`
	Movie  string `json:"movie"`
}

// Document is the JSON form of a search result.
type Document struct {
	ID      string `json:"id"`
	Source  string `json:"source"`
	Target  string `json:"target"`
	Found   bool   `json:"found"`
	Degrees int    `json:"degrees"`
	Steps   []Step `json:"steps"`
}

// Renderer formats results using the display names held by a graph.
type Renderer struct {
	g      graph.Graph
	format string
}

// ParseFormat normalizes an output format name. An empty name selects text.
func ParseFormat(format string) (string, error) {
	format = strings.ToLower(format)
	switch format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use 'text' or 'json')", format)
	}
}

// NewRenderer returns a Renderer for the given format.
func NewRenderer(g graph.Graph, format string) (*Renderer, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Renderer{g: g, format: format}, nil
}

// Steps resolves the names along the path of res.
func (r *Renderer) Steps(res search.Result) ([]Step, error) {
	if !res.Found {
		return nil, nil
	}

	steps := make([]Step, 0, len(res.Path))
	prev := res.Source
	for _, credit := range res.Path {
		from, err := r.g.FindPerson(prev)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		to, err := r.g.FindPerson(credit.PersonID)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		movie, err := r.g.FindMovie(credit.MovieID)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		steps = append(steps, Step{Person: from.Name, CoStar: to.Name, Movie: movie.Title})
		prev = credit.PersonID
	}
	return steps, nil
}

// Render writes res to w.
func (r *Renderer) Render(w io.Writer, res search.Result) error {
	steps, err := r.Steps(res)
	if err != nil {
		return err
	}

	if r.format == FormatJSON {
		doc := Document{
			ID:      res.ID.String(),
			Source:  res.Source,
			Target:  res.Target,
			Found:   res.Found,
			Degrees: res.Degrees(),
			Steps:   steps,
		}
		if doc.Steps == nil {
			doc.Steps = []Step{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	styles := lipgloss.NewRenderer(w)
	headline := styles.NewStyle().Bold(true)
	index := styles.NewStyle().Faint(true)

	if !res.Found {
		_, err = fmt.Fprintln(w, headline.Render("Not connected."))
		return err
	}

	if _, err = fmt.Fprintln(w, headline.Render(fmt.Sprintf("%d degrees of separation.", res.Degrees()))); err != nil {
		return err
	}
	for i, step := range steps {
		if _, err = fmt.Fprintf(w, "%s %s and %s starred in %s\n",
			index.Render(fmt.Sprintf("%d:", i+1)), step.Person, step.CoStar, step.Movie); err != nil {
			return err
		}
	}
	return nil
}

// RenderNeighbors writes the co-star credits of a person to w, skipping the
// person's own credits.
func (r *Renderer) RenderNeighbors(w io.Writer, personID string, credits []graph.Credit) error {
	type neighbor struct {
		PersonID string `json:"person_id"`
		Name     string `json:"name"`
		MovieID  string `json:"movie_id"`
		Movie    string `json:"movie"`
	}

	rows := make([]neighbor, 0, len(credits))
	for _, credit := range credits {
		if credit.PersonID == personID {
			continue
		}
		person, err := r.g.FindPerson(credit.PersonID)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		movie, err := r.g.FindMovie(credit.MovieID)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		rows = append(rows, neighbor{PersonID: person.ID, Name: person.Name, MovieID: movie.ID, Movie: movie.Title})
	}

	if r.format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s (%s) in %s\n", row.Name, row.PersonID, row.Movie); err != nil {
			return err
		}
	}
	return nil
}
