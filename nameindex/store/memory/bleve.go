package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/nameindex"
	"github.com/blevesearch/bleve/v2"
)

// The size of each page of results that is cached locally by the
// suggestion search.
const batchSize = 20

// Compile-time check for ensuring InMemoryBleveIndexer implements Indexer.
var _ nameindex.Indexer = (*InMemoryBleveIndexer)(nil)

type bleveDoc struct {
	Name string
}

// InMemoryBleveIndexer is an Indexer implementation that keeps exact name
// keys in a map and uses an in-memory bleve instance for fuzzy suggestions.
type InMemoryBleveIndexer struct {
	mu    sync.RWMutex
	names map[string]string
	keys  map[string]map[string]struct{}

	idx bleve.Index
}

// NewInMemoryBleveIndexer creates a name indexer that uses an in-memory
// bleve instance for suggestions.
func NewInMemoryBleveIndexer() (*InMemoryBleveIndexer, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, err
	}

	return &InMemoryBleveIndexer{
		names: make(map[string]string),
		keys:  make(map[string]map[string]struct{}),
		idx:   idx,
	}, nil
}

// Close the indexer and release any allocated resources.
func (i *InMemoryBleveIndexer) Close() error {
	return i.idx.Close()
}

// Index inserts a new person or updates the entry of an existing one.
func (i *InMemoryBleveIndexer) Index(person *graph.Person) error {
	if person == nil || person.ID == "" {
		return fmt.Errorf("index: %w", nameindex.ErrMissingID)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.idx.Index(person.ID, bleveDoc{Name: person.Name}); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	if oldName, exists := i.names[person.ID]; exists {
		oldKey := nameindex.NormalizeName(oldName)
		delete(i.keys[oldKey], person.ID)
		if len(i.keys[oldKey]) == 0 {
			delete(i.keys, oldKey)
		}
	}

	key := nameindex.NormalizeName(person.Name)
	if i.keys[key] == nil {
		i.keys[key] = make(map[string]struct{})
	}
	i.keys[key][person.ID] = struct{}{}
	i.names[person.ID] = person.Name
	return nil
}

// Lookup returns the IDs of the people called name.
func (i *InMemoryBleveIndexer) Lookup(name string) ([]string, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	set := i.keys[nameindex.NormalizeName(name)]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Suggest returns display names that are similar to name.
func (i *InMemoryBleveIndexer) Suggest(name string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	q := bleve.NewMatchQuery(name)
	q.SetField("Name")
	q.SetFuzziness(2)

	req := bleve.NewSearchRequestOptions(q, limit+batchSize, 0, false)
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)
	for _, hit := range res.Hits {
		display, exists := i.names[hit.ID]
		if !exists {
			continue
		}
		if _, dup := seen[display]; dup {
			continue
		}
		seen[display] = struct{}{}
		suggestions = append(suggestions, display)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions, nil
}
