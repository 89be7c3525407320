package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/internal/dbmysql"
)

func setupTestStore(t *testing.T, sync *Synchronizer) (*dbmysql.Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return dbmysql.NewStore(gormDB, sync), mock, func() { db.Close() }
}

// fakeIndexClient keeps documents in memory and records every call.
type fakeIndexClient struct {
	docs     map[string]map[string]interface{}
	failWith error
}

func newFakeIndexClient() *fakeIndexClient {
	return &fakeIndexClient{docs: make(map[string]map[string]interface{})}
}

func key(index string, docID uint64) string {
	return fmt.Sprintf("%s/%d", index, docID)
}

func (f *fakeIndexClient) Index(_ context.Context, index string, docID uint64, body map[string]interface{}) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.docs[key(index, docID)] = body
	return nil
}

func (f *fakeIndexClient) Delete(_ context.Context, index string, docID uint64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.docs, key(index, docID))
	return nil
}

func (f *fakeIndexClient) Search(context.Context, string, string, int, int) ([]uint64, int, error) {
	return nil, 0, nil
}

func TestSynchronizer_IndexesInsertedSearchableOnCommit(t *testing.T) {
	index := newFakeIndexClient()
	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)

	post := &dbmysql.Post{UserID: 7, Body: "hello search"}
	require.NoError(t, tx.Create(post))

	// nothing reaches the index before commit
	assert.Empty(t, index.docs)

	require.NoError(t, tx.Commit())

	doc, ok := index.docs["posts/42"]
	require.True(t, ok, "committed post should be indexed under its primary key")
	assert.Equal(t, map[string]interface{}{"body": "hello search"}, doc)
}

func TestSynchronizer_UpdatedEntitiesAreReindexed(t *testing.T) {
	index := newFakeIndexClient()
	index.docs["posts/3"] = map[string]interface{}{"body": "old text"}

	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Save(&dbmysql.Post{ID: 3, UserID: 7, Body: "new text"}))
	require.NoError(t, tx.Commit())

	assert.Equal(t, map[string]interface{}{"body": "new text"}, index.docs["posts/3"])
}

func TestSynchronizer_RemovesDeletedSearchableOnCommit(t *testing.T) {
	index := newFakeIndexClient()
	index.docs["posts/9"] = map[string]interface{}{"body": "going away"}

	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Delete(&dbmysql.Post{ID: 9}))
	require.NoError(t, tx.Commit())

	_, ok := index.docs["posts/9"]
	assert.False(t, ok, "deleted post should be removed from the index")
}

func TestSynchronizer_IgnoresNonSearchableEntities(t *testing.T) {
	index := newFakeIndexClient()
	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Create(&dbmysql.User{Username: "alice", Email: "a@example.com"}))
	require.NoError(t, tx.Commit())

	assert.Empty(t, index.docs)
}

func TestSynchronizer_FailedCommitIssuesNoIndexWrites(t *testing.T) {
	index := newFakeIndexClient()
	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("lock wait timeout"))

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Create(&dbmysql.Post{UserID: 1, Body: "never indexed"}))
	require.Error(t, tx.Commit())

	assert.Empty(t, index.docs)
}

func TestSynchronizer_PushFailureIsSwallowed(t *testing.T) {
	index := newFakeIndexClient()
	index.failWith = errors.New("search engine down")

	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Create(&dbmysql.Post{UserID: 1, Body: "best effort"}))

	// the relational commit is the source of truth; an index push
	// failure never surfaces to the caller
	assert.NoError(t, tx.Commit())
}

func TestSynchronizer_RollbackLeavesIndexUntouched(t *testing.T) {
	index := newFakeIndexClient()
	store, mock, cleanup := setupTestStore(t, NewSynchronizer(index))
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Create(&dbmysql.Post{UserID: 1, Body: "rolled back"}))
	require.NoError(t, tx.Rollback())

	assert.Empty(t, index.docs)
}
