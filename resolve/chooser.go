package resolve

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// NewChooser returns an interactive form when in is a terminal and a plain
// line-based prompt otherwise.
func NewChooser(in io.Reader, out io.Writer) Chooser {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &FormChooser{in: in, out: out}
	}
	return NewPromptChooser(in, out)
}

// PromptChooser lists the candidates and reads the intended ID from a line
// of input.
type PromptChooser struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptChooser returns a PromptChooser reading from in and writing to out.
func NewPromptChooser(in io.Reader, out io.Writer) *PromptChooser {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptChooser{in: br, out: out}
}

// Reader returns the buffered reader used by the chooser so that callers
// can keep reading from the same input.
func (p *PromptChooser) Reader() *bufio.Reader {
	return p.in
}

// Choose implements Chooser.
func (p *PromptChooser) Choose(_ context.Context, name string, candidates []*graph.Person) (string, error) {
	fmt.Fprintf(p.out, "Which '%s'?\n", name)
	for _, c := range candidates {
		fmt.Fprintf(p.out, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, c.Birth)
	}
	fmt.Fprint(p.out, "Intended Person ID: ")

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read choice: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// FormChooser renders a select list on the terminal.
type FormChooser struct {
	in  io.Reader
	out io.Writer
}

// Choose implements Chooser.
func (f *FormChooser) Choose(ctx context.Context, name string, candidates []*graph.Person) (string, error) {
	options := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		label := c.Name
		if c.Birth != "" {
			label = fmt.Sprintf("%s (born %s)", c.Name, c.Birth)
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s, ID %s", label, c.ID), c.ID))
	}

	var chosen string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Which '%s'?", name)).
				Options(options...).
				Value(&chosen),
		),
	).WithInput(f.in).WithOutput(f.out)

	if err := form.RunWithContext(ctx); err != nil {
		return "", fmt.Errorf("choose person: %w", err)
	}
	return chosen, nil
}
