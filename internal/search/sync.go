package search

import (
	"log"

	"microblog/internal/dbmysql"
)

// Synchronizer keeps the search index eventually consistent with
// relational writes. It attaches to every Store transaction: the
// staged change set is snapshotted just before the commit executes
// (afterwards the transaction clears its own bookkeeping) and pushed
// to the index client once the commit has succeeded.
//
// Push failures are logged and dropped. The relational row is the
// source of truth; the index is a disposable derived view that can be
// rebuilt with a bulk reindex. A failed commit discards the snapshot
// without issuing any index writes.
type Synchronizer struct {
	client IndexClient
}

func NewSynchronizer(client IndexClient) *Synchronizer {
	return &Synchronizer{client: client}
}

type snapshot struct {
	upsert []Searchable
	remove []Searchable
}

// Attach registers the commit hooks on tx. The snapshot lives in the
// closures, scoped to this one transaction, so concurrent transactions
// never share a staging buffer.
func (s *Synchronizer) Attach(tx *dbmysql.Tx) {
	var snap snapshot

	tx.OnBeforeCommit(func(tx *dbmysql.Tx) {
		changes := tx.Staged()
		snap.upsert = filterSearchable(changes.Created)
		snap.upsert = append(snap.upsert, filterSearchable(changes.Updated)...)
		snap.remove = filterSearchable(changes.Deleted)
	})

	tx.OnAfterCommit(func(tx *dbmysql.Tx) {
		s.flush(tx, snap)
		snap = snapshot{}
	})
}

func (s *Synchronizer) flush(tx *dbmysql.Tx, snap snapshot) {
	ctx := tx.Context()

	for _, doc := range snap.upsert {
		if err := s.client.Index(ctx, doc.SearchIndex(), doc.SearchID(), doc.SearchFields()); err != nil {
			log.Printf("search: index %s/%d failed: %v", doc.SearchIndex(), doc.SearchID(), err)
		}
	}
	for _, doc := range snap.remove {
		if err := s.client.Delete(ctx, doc.SearchIndex(), doc.SearchID()); err != nil {
			log.Printf("search: delete %s/%d failed: %v", doc.SearchIndex(), doc.SearchID(), err)
		}
	}
}

func filterSearchable(values []interface{}) []Searchable {
	var out []Searchable
	for _, v := range values {
		if doc, ok := v.(Searchable); ok {
			out = append(out, doc)
		}
	}
	return out
}
