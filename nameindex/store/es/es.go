package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/archichudinow/cs50ai/castgraph/graph"
	"github.com/archichudinow/cs50ai/nameindex"
	"github.com/elastic/go-elasticsearch"
	"github.com/elastic/go-elasticsearch/esapi"
)

// The name of the elasticsearch index to use.
const indexName = "people"

// The upper bound of IDs returned by a single exact lookup.
const lookupSize = 1000

// The mapping for the fields we store in the index.
var esMappings = `
{
  "mappings" : {
    "properties": {
      "PersonID": {"type": "keyword"},
      "Name": {"type": "text"},
      "NameKey": {"type": "keyword"}
    }
  }
}`

// Compile-time check for ensuring ElasticSearchIndexer implements Indexer.
var _ nameindex.Indexer = (*ElasticSearchIndexer)(nil)

// ElasticSearchIndexer is an Indexer implementation that uses an
// elastic search instance to catalogue and search people by name.
type ElasticSearchIndexer struct {
	es         *elasticsearch.Client
	refreshOpt func(*esapi.UpdateRequest)
}

// NewElasticSearchIndexer creates a name indexer that is backed by the
// elastic search cluster listening on esNodes.
func NewElasticSearchIndexer(esNodes []string, syncUpdates bool) (*ElasticSearchIndexer, error) {
	cfg := elasticsearch.Config{
		Addresses: esNodes,
	}
	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if err = ensureIndex(es); err != nil {
		return nil, err
	}

	refreshOpt := es.Update.WithRefresh("false")
	if syncUpdates {
		refreshOpt = es.Update.WithRefresh("true")
	}

	return &ElasticSearchIndexer{
		es:         es,
		refreshOpt: refreshOpt,
	}, nil
}

// Close implements nameindex.Indexer. The client holds no resources that
// need releasing.
func (i *ElasticSearchIndexer) Close() error {
	return nil
}

// Index inserts a new person to the index or updates the index entry
// for an existing person.
func (i *ElasticSearchIndexer) Index(person *graph.Person) error {
	if person == nil || person.ID == "" {
		return fmt.Errorf("index: %w", nameindex.ErrMissingID)
	}

	var (
		buf   bytes.Buffer
		esDoc = makeEsDoc(person)
	)
	update := map[string]interface{}{
		"doc":           esDoc,
		"doc_as_upsert": true,
	}
	if err := json.NewEncoder(&buf).Encode(update); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	res, err := i.es.Update(indexName, esDoc.PersonID, &buf, i.refreshOpt)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}

	var updateRes esUpdateRes
	if err = unmarshalResponse(res, &updateRes); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	return nil
}

// Lookup returns the IDs of the people whose name matches name exactly,
// ignoring case.
func (i *ElasticSearchIndexer) Lookup(name string) ([]string, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"NameKey": nameindex.NormalizeName(name),
			},
		},
		"from":             0,
		"size":             lookupSize,
		"track_total_hits": true,
	}

	searchRes, err := runSearch(i.es, query)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return lookupIDs(name, searchRes)
}

// lookupIDs extracts the sorted person IDs of an exact lookup. A result
// holding fewer hits than the reported total is rejected.
func lookupIDs(name string, searchRes *esSearchRes) ([]string, error) {
	if total := searchRes.Hits.Total.Count; total > uint64(len(searchRes.Hits.HitList)) {
		return nil, fmt.Errorf("lookup %q: %d matches, at most %d supported: %w",
			name, total, lookupSize, nameindex.ErrTooManyMatches)
	}

	ids := make([]string, 0, len(searchRes.Hits.HitList))
	for _, hit := range searchRes.Hits.HitList {
		ids = append(ids, hit.DocSource.PersonID)
	}
	sort.Strings(ids)
	return ids, nil
}

// Suggest returns display names that are similar to name.
func (i *ElasticSearchIndexer) Suggest(name string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"Name": map[string]interface{}{
					"query":     name,
					"fuzziness": "AUTO",
				},
			},
		},
		"from": 0,
		"size": limit * 4,
	}

	searchRes, err := runSearch(i.es, query)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	seen := make(map[string]struct{})
	suggestions := make([]string, 0, limit)
	for _, hit := range searchRes.Hits.HitList {
		display := hit.DocSource.Name
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

func ensureIndex(es *elasticsearch.Client) error {
	mappingsReader := strings.NewReader(esMappings)
	res, err := es.Indices.Create(indexName, es.Indices.Create.WithBody(mappingsReader))
	if err != nil {
		return fmt.Errorf("cannot create ES index: %w", err)
	} else if res.IsError() {
		err := unmarshalError(res)
		if esErr, valid := err.(esError); valid && esErr.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("cannot create ES index: %w", err)
	}

	return nil
}

func runSearch(es *elasticsearch.Client, searchQuery map[string]interface{}) (*esSearchRes, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(searchQuery); err != nil {
		return nil, err
	}

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(indexName),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}

	var esRes esSearchRes
	if err = unmarshalResponse(res, &esRes); err != nil {
		return nil, err
	}

	return &esRes, nil
}

func unmarshalError(res *esapi.Response) error {
	return unmarshalResponse(res, nil)
}

func unmarshalResponse(res *esapi.Response, to interface{}) error {
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		var errRes esErrorRes
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil {
			return err
		}

		return errRes.Error
	}

	return json.NewDecoder(res.Body).Decode(to)
}

func makeEsDoc(p *graph.Person) esDoc {
	return esDoc{
		PersonID: p.ID,
		Name:     p.Name,
		NameKey:  nameindex.NormalizeName(p.Name),
	}
}
