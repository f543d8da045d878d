// Package app wires the stores, the name index and the searcher together
// from a config.Config.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/castgraph/store/db"
	"github.com/archichudinow/cs50ai/castgraph/store/memory"
	"github.com/archichudinow/cs50ai/config"
	"github.com/archichudinow/cs50ai/dataset"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/archichudinow/cs50ai/nameindex"
	"github.com/archichudinow/cs50ai/nameindex/store/es"
	memindex "github.com/archichudinow/cs50ai/nameindex/store/memory"
	"github.com/archichudinow/cs50ai/resolve"
	"github.com/archichudinow/cs50ai/search"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
)

// App owns the long lived dependencies of a degrees session.
type App struct {
	cfg      config.Config
	logger   *slog.Logger
	graph    graph.Graph
	index    nameindex.Indexer
	registry *prometheus.Registry
	searcher *search.Searcher
	resolver *resolve.Resolver
	closers  []func() error
}

// New builds an App from cfg. With the memory store the dataset directory
// is loaded before New returns; with the postgres store the existing tables
// are used as they are. chooser disambiguates names shared by several people.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, chooser resolve.Chooser) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx = logging.WithLogger(ctx, logger)

	discipline, err := search.ParseDiscipline(cfg.Search.Frontier)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	if err = a.openGraph(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	if err = a.openIndex(); err != nil {
		_ = a.Close()
		return nil, err
	}
	if err = a.reindex(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.searcher = search.NewSearcher(a.graph, search.NewMetrics(a.registry),
		search.WithDiscipline(discipline),
		search.WithMaxExpansions(cfg.Search.MaxExpansions),
	)
	a.resolver = resolve.NewResolver(a.graph, a.index, chooser, cfg.NameIndex.Suggestions)
	return a, nil
}

func (a *App) openGraph(ctx context.Context) error {
	switch a.cfg.Store.Backend {
	case config.StorePostgres:
		g, err := db.NewDBGraph(a.cfg.Store.DSN)
		if err != nil {
			return fmt.Errorf("open postgres store: %w", err)
		}
		a.graph = g
		a.closers = append(a.closers, g.Close)
		a.logger.Debug("Postgres store opened.")
		return nil
	default:
		a.graph = memory.NewInMemoryGraph()
		_, err := a.Import(ctx, a.cfg.DataDir)
		return err
	}
}

func (a *App) openIndex() error {
	switch a.cfg.NameIndex.Backend {
	case config.IndexElasticsearch:
		idx, err := es.NewElasticSearchIndexer(a.cfg.NameIndex.Nodes, true)
		if err != nil {
			return fmt.Errorf("open elasticsearch index: %w", err)
		}
		a.index = idx
	default:
		idx, err := memindex.NewInMemoryBleveIndexer()
		if err != nil {
			return fmt.Errorf("open name index: %w", err)
		}
		a.index = idx
	}
	a.closers = append(a.closers, a.index.Close)
	return nil
}

func (a *App) reindex(ctx context.Context) error {
	n, err := nameindex.Build(ctx, a.graph, a.index)
	if err != nil {
		return err
	}
	a.logger.Debug("Name index built.", "people", n)
	return nil
}

// Import loads the dataset in dir into the configured store. When the name
// index is already open it is refreshed with the imported people.
func (a *App) Import(ctx context.Context, dir string) (dataset.Stats, error) {
	ctx = logging.WithLogger(ctx, a.logger)
	stats, err := dataset.NewLoader().Load(ctx, dir, a.graph)
	if err != nil {
		return stats, fmt.Errorf("import %s: %w", dir, err)
	}
	if a.index != nil {
		if err = a.reindex(ctx); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// Graph returns the cast graph.
func (a *App) Graph() graph.Graph {
	return a.graph
}

// Registry returns the registry holding the search metrics.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// Resolve maps a display name to a person ID.
func (a *App) Resolve(ctx context.Context, name string) (string, error) {
	return a.resolver.Resolve(logging.WithLogger(ctx, a.logger), name)
}

// ShortestPath searches for the shortest chain of credits between two
// person IDs.
func (a *App) ShortestPath(ctx context.Context, source, target string) (search.Result, error) {
	return a.searcher.ShortestPath(logging.WithLogger(ctx, a.logger), source, target)
}

// Neighbors returns the credits of a person, including the person's own.
func (a *App) Neighbors(personID string) ([]graph.Credit, error) {
	return a.graph.Neighbors(personID)
}

// Close writes the metrics file when one is configured, then releases the
// store and the index in reverse order of opening.
func (a *App) Close() error {
	var result *multierror.Error
	if a.cfg.MetricsFile != "" && a.searcher != nil {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
			result = multierror.Append(result, fmt.Errorf("write metrics: %w", err))
		} else {
			a.logger.Debug("Metrics written.", "path", a.cfg.MetricsFile)
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	a.closers = nil
	return result.ErrorOrNil()
}
