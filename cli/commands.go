package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/archichudinow/cs50ai/config"
	"github.com/archichudinow/cs50ai/report"
	"github.com/archichudinow/cs50ai/resolve"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.DataDir = args[0]
	}

	out := cmd.OutOrStdout()
	chooser := resolve.NewChooser(cmd.InOrStdin(), out)
	var lines *bufio.Reader
	if pc, ok := chooser.(*resolve.PromptChooser); ok {
		lines = pc.Reader()
	} else {
		lines = bufio.NewReader(cmd.InOrStdin())
	}

	fmt.Fprintln(out, "Loading data...")
	ctx, a, err := openApp(cmd, cfg, chooser)
	if err != nil {
		return err
	}
	defer closeApp(ctx, a)
	fmt.Fprintln(out, "Data loaded.")

	renderer, err := report.NewRenderer(a.Graph(), opts.format)
	if err != nil {
		return usageError(err)
	}

	ids := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		fmt.Fprint(out, "Name: ")
		name, err := readLine(lines)
		if err != nil {
			return err
		}
		id, err := a.Resolve(ctx, name)
		if err != nil {
			return translate(err)
		}
		ids = append(ids, id)
	}

	res, err := a.ShortestPath(ctx, ids[0], ids[1])
	if err != nil {
		return err
	}
	return renderer.Render(out, res)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newPathCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path <source> <target>",
		Short: "Print the shortest chain between two people",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			ctx, a, err := openApp(cmd, cfg, resolve.NewChooser(cmd.InOrStdin(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer closeApp(ctx, a)

			renderer, err := report.NewRenderer(a.Graph(), opts.format)
			if err != nil {
				return usageError(err)
			}

			source, err := a.Resolve(ctx, args[0])
			if err != nil {
				return translate(err)
			}
			target, err := a.Resolve(ctx, args[1])
			if err != nil {
				return translate(err)
			}

			res, err := a.ShortestPath(ctx, source, target)
			if err != nil {
				return err
			}
			return renderer.Render(cmd.OutOrStdout(), res)
		},
	}
}

func newNeighborsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <name>",
		Short: "List the people who share a movie with someone",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			ctx, a, err := openApp(cmd, cfg, resolve.NewChooser(cmd.InOrStdin(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer closeApp(ctx, a)

			renderer, err := report.NewRenderer(a.Graph(), opts.format)
			if err != nil {
				return usageError(err)
			}

			id, err := a.Resolve(ctx, args[0])
			if err != nil {
				return translate(err)
			}
			credits, err := a.Neighbors(id)
			if err != nil {
				return err
			}
			return renderer.RenderNeighbors(cmd.OutOrStdout(), id, credits)
		},
	}
}

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <directory>",
		Short: "Load a dataset directory into the postgres store",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cfg.Store.Backend != config.StorePostgres {
				return usageError(fmt.Errorf("import requires --store %s", config.StorePostgres))
			}

			ctx, a, err := openApp(cmd, cfg, nil)
			if err != nil {
				return err
			}
			defer closeApp(ctx, a)

			stats, err := a.Import(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d people, %d movies, %d credits (%d rows skipped).\n",
				stats.People, stats.Movies, stats.Credits, stats.SkippedCount())
			return nil
		},
	}
}
