package search

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm"
)

const reindexBatchSize = 500

var (
	registryMu sync.Mutex
	registry   = map[string]Searchable{}
)

// Register adds a model prototype to the reindex registry under its
// index name. Packages that own a Searchable model register it from
// an init function; the reindexer discovers every index through the
// registry.
func Register(prototype Searchable) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[prototype.SearchIndex()] = prototype
}

// Reindexer rebuilds the search index from the relational store, for
// backfill and disaster recovery. Every persisted row of a registered
// model is pushed unconditionally.
type Reindexer struct {
	db     *gorm.DB
	client IndexClient
}

func NewReindexer(db *gorm.DB, client IndexClient) *Reindexer {
	return &Reindexer{db: db, client: client}
}

// ReindexAll rebuilds every registered index.
func (r *Reindexer) ReindexAll(ctx context.Context) error {
	for _, name := range registeredIndexes() {
		if err := r.Reindex(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// Reindex rebuilds one index by name.
func (r *Reindexer) Reindex(ctx context.Context, index string) error {
	registryMu.Lock()
	prototype, ok := registry[index]
	registryMu.Unlock()
	if !ok {
		return fmt.Errorf("reindex %s: no registered model", index)
	}

	// rows are loaded into a fresh slice of the prototype's concrete
	// type; each element is addressed back into the Searchable contract
	batch := reflect.New(reflect.SliceOf(reflect.TypeOf(prototype).Elem()))
	result := r.db.WithContext(ctx).
		Model(prototype).
		FindInBatches(batch.Interface(), reindexBatchSize, func(_ *gorm.DB, _ int) error {
			rows := batch.Elem()
			for i := 0; i < rows.Len(); i++ {
				doc, ok := rows.Index(i).Addr().Interface().(Searchable)
				if !ok {
					continue
				}
				if err := r.client.Index(ctx, doc.SearchIndex(), doc.SearchID(), doc.SearchFields()); err != nil {
					return fmt.Errorf("reindex %s/%d: %w", doc.SearchIndex(), doc.SearchID(), err)
				}
			}
			return nil
		})
	if result.Error != nil {
		return fmt.Errorf("reindex %s: %w", index, result.Error)
	}
	return nil
}

func registeredIndexes() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
