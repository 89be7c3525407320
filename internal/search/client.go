package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
)

// IndexClient mirrors entity documents into a full-text search engine.
// Documents are keyed by (index name, primary key).
type IndexClient interface {
	// Index upserts one document.
	Index(ctx context.Context, index string, docID uint64, body map[string]interface{}) error
	// Delete removes one document. Deleting a document that was never
	// indexed is not an error.
	Delete(ctx context.Context, index string, docID uint64) error
	// Search returns matching document ids in relevance order for the
	// [from, from+size) window, plus the total hit count.
	Search(ctx context.Context, index, query string, from, size int) (ids []uint64, total int, err error)
}

// NewClient builds the Elasticsearch-backed client, or the no-op
// client when no URL is configured. With the no-op client the whole
// application stays functional on the relational store alone; search
// just reports no results.
func NewClient(url string) (IndexClient, error) {
	if url == "" {
		return NoopClient{}, nil
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return &elasticClient{es: es}, nil
}

// NoopClient is the degraded mode used when search is not configured:
// writes are silently dropped and queries match nothing.
type NoopClient struct{}

func (NoopClient) Index(context.Context, string, uint64, map[string]interface{}) error {
	return nil
}

func (NoopClient) Delete(context.Context, string, uint64) error {
	return nil
}

func (NoopClient) Search(context.Context, string, string, int, int) ([]uint64, int, error) {
	return nil, 0, nil
}

type elasticClient struct {
	es *elasticsearch.Client
}

func (c *elasticClient) Index(ctx context.Context, index string, docID uint64, body map[string]interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	res, err := c.es.Index(index, bytes.NewReader(payload),
		c.es.Index.WithDocumentID(strconv.FormatUint(docID, 10)),
		c.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index %s/%d: %w", index, docID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index %s/%d: %s", index, docID, res.Status())
	}
	return nil
}

func (c *elasticClient) Delete(ctx context.Context, index string, docID uint64) error {
	res, err := c.es.Delete(index, strconv.FormatUint(docID, 10),
		c.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete %s/%d: %w", index, docID, err)
	}
	defer res.Body.Close()

	// a document that was never indexed is already gone
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("delete %s/%d: %s", index, docID, res.Status())
	}
	return nil
}

func (c *elasticClient) Search(ctx context.Context, index, query string, from, size int) ([]uint64, int, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"*"},
			},
		},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("marshal query: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
		c.es.Search.WithFrom(from),
		c.es.Search.WithSize(size),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("search %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, 0, fmt.Errorf("search %s: %s", index, res.Status())
	}

	var out searchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]uint64, 0, len(out.Hits.Hits))
	for _, hit := range out.Hits.Hits {
		id, err := strconv.ParseUint(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, out.Hits.Total.Value, nil
}

type searchResponse struct {
	Hits struct {
		Total TotalCount `json:"total"`
		Hits  []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

// TotalCount normalizes the two shapes Elasticsearch reports hit
// totals in: a bare integer (old servers, rest_total_hits_as_int) and
// the {"value": N, "relation": "eq"|"gte"} object used under
// approximate counting.
type TotalCount struct {
	Value    int
	Relation string
}

func (t *TotalCount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Value    int    `json:"value"`
			Relation string `json:"relation"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		t.Value = obj.Value
		t.Relation = obj.Relation
		return nil
	}

	t.Relation = "eq"
	return json.Unmarshal(data, &t.Value)
}
