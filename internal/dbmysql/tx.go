package dbmysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TxObserver is attached to every transaction a Store opens. An
// implementation registers per-transaction callbacks in Attach; any
// state it needs between callbacks must live in the closures, never on
// the observer itself, so concurrent transactions stay isolated.
type TxObserver interface {
	Attach(tx *Tx)
}

// Store opens unit-of-work transactions and wires its observers onto
// each of them.
type Store struct {
	db        *gorm.DB
	observers []TxObserver
}

func NewStore(db *gorm.DB, observers ...TxObserver) *Store {
	return &Store{db: db, observers: observers}
}

// DB exposes the underlying connection for read-path queries that do
// not need change tracking.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	g := s.db.WithContext(ctx).Begin()
	if g.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", g.Error)
	}

	tx := &Tx{ctx: ctx, db: g}
	for _, o := range s.observers {
		o.Attach(tx)
	}
	return tx, nil
}

// Changes is the staged change set of one transaction: entities newly
// inserted, updated while already persisted, and marked for deletion.
type Changes struct {
	Created []interface{}
	Updated []interface{}
	Deleted []interface{}
}

// Tx is a unit of work over a single database transaction. Every
// entity written through it is recorded in the staged change set so
// commit observers can inspect what the transaction touched. The
// staged buffers belong to this transaction alone.
type Tx struct {
	ctx context.Context
	db  *gorm.DB

	changes      Changes
	beforeCommit []func(*Tx)
	afterCommit  []func(*Tx)
	finished     bool
}

// Context returns the context the transaction was opened with.
func (tx *Tx) Context() context.Context {
	return tx.ctx
}

// DB exposes the transaction handle for queries that need to run
// inside the transaction without staging anything.
func (tx *Tx) DB() *gorm.DB {
	return tx.db
}

// Create inserts value and stages it as newly created.
func (tx *Tx) Create(value interface{}) error {
	if err := tx.db.Create(value).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	tx.changes.Created = append(tx.changes.Created, value)
	return nil
}

// Save persists changes to an already-persisted value and stages it as
// updated.
func (tx *Tx) Save(value interface{}) error {
	if err := tx.db.Save(value).Error; err != nil {
		return fmt.Errorf("save: %w", err)
	}
	tx.changes.Updated = append(tx.changes.Updated, value)
	return nil
}

// Delete removes value and stages it as deleted.
func (tx *Tx) Delete(value interface{}) error {
	if err := tx.db.Delete(value).Error; err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	tx.changes.Deleted = append(tx.changes.Deleted, value)
	return nil
}

// Staged returns the current staged change set. Observers snapshot it
// in their before-commit callback; after commit the buffers are gone.
func (tx *Tx) Staged() Changes {
	return tx.changes
}

// OnBeforeCommit registers fn to run just before the commit executes,
// while the staged change set is still populated.
func (tx *Tx) OnBeforeCommit(fn func(*Tx)) {
	tx.beforeCommit = append(tx.beforeCommit, fn)
}

// OnAfterCommit registers fn to run once the commit has succeeded. A
// failed commit skips these callbacks entirely.
func (tx *Tx) OnAfterCommit(fn func(*Tx)) {
	tx.afterCommit = append(tx.afterCommit, fn)
}

// Commit runs the before-commit callbacks, commits, then runs the
// after-commit callbacks. The staged change set is cleared regardless
// of the outcome.
func (tx *Tx) Commit() error {
	if tx.finished {
		return gorm.ErrInvalidTransaction
	}
	tx.finished = true

	for _, fn := range tx.beforeCommit {
		fn(tx)
	}

	defer func() { tx.changes = Changes{} }()

	if err := tx.db.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	for _, fn := range tx.afterCommit {
		fn(tx)
	}
	return nil
}

// Rollback aborts the transaction and discards the staged change set.
// Rolling back a finished transaction is a no-op.
func (tx *Tx) Rollback() error {
	if tx.finished {
		return nil
	}
	tx.finished = true
	tx.changes = Changes{}
	return tx.db.Rollback().Error
}
