package dbmysql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

// recordingObserver registers hooks the way the search synchronizer
// does and records what it saw and when.
type recordingObserver struct {
	stagedAtBefore Changes
	beforeCalls    int
	afterCalls     int
}

func (o *recordingObserver) Attach(tx *Tx) {
	tx.OnBeforeCommit(func(tx *Tx) {
		o.beforeCalls++
		o.stagedAtBefore = tx.Staged()
	})
	tx.OnAfterCommit(func(tx *Tx) {
		o.afterCalls++
	})
}

func TestTx_CommitRunsObserverCallbacks(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	obs := &recordingObserver{}
	store := NewStore(db, obs)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)

	post := &Post{UserID: 7, Body: "hello"}
	require.NoError(t, tx.Create(post))
	require.NoError(t, tx.Commit())

	assert.Equal(t, 1, obs.beforeCalls)
	assert.Equal(t, 1, obs.afterCalls)
	require.Len(t, obs.stagedAtBefore.Created, 1)
	assert.Same(t, post, obs.stagedAtBefore.Created[0])
	assert.Empty(t, obs.stagedAtBefore.Updated)
	assert.Empty(t, obs.stagedAtBefore.Deleted)

	// the transaction's own buffers are cleared after commit
	assert.Empty(t, tx.Staged().Created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_StagesUpdatesAndDeletesSeparately(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	obs := &recordingObserver{}
	store := NewStore(db, obs)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)

	updated := &Post{ID: 3, UserID: 7, Body: "edited"}
	deleted := &Post{ID: 4}
	require.NoError(t, tx.Save(updated))
	require.NoError(t, tx.Delete(deleted))
	require.NoError(t, tx.Commit())

	require.Len(t, obs.stagedAtBefore.Updated, 1)
	require.Len(t, obs.stagedAtBefore.Deleted, 1)
	assert.Same(t, updated, obs.stagedAtBefore.Updated[0])
	assert.Same(t, deleted, obs.stagedAtBefore.Deleted[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_FailedCommitSkipsAfterCallbacks(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	obs := &recordingObserver{}
	store := NewStore(db, obs)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("deadlock"))

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Create(&Post{UserID: 1, Body: "doomed"}))

	err = tx.Commit()
	require.Error(t, err)

	assert.Equal(t, 1, obs.beforeCalls)
	assert.Equal(t, 0, obs.afterCalls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_RollbackDiscardsStagedSet(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	obs := &recordingObserver{}
	store := NewStore(db, obs)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Create(&Post{UserID: 1, Body: "abandoned"}))
	require.NoError(t, tx.Rollback())

	assert.Equal(t, 0, obs.beforeCalls)
	assert.Equal(t, 0, obs.afterCalls)
	assert.Empty(t, tx.Staged().Created)

	// double rollback is a no-op
	assert.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_CommitTwiceFails(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.ErrorIs(t, tx.Commit(), gorm.ErrInvalidTransaction)
}

func TestStore_ConcurrentTransactionsDoNotShareBuffers(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.MatchExpectationsInOrder(false)

	obsA := &recordingObserver{}
	store := NewStore(db, obsA)

	mock.ExpectBegin()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	txA, err := store.Begin(context.Background())
	require.NoError(t, err)
	txB, err := store.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, txA.Create(&Post{UserID: 1, Body: "mine"}))
	require.NoError(t, txA.Commit())

	// txB never staged anything; txA's commit must not have seen
	// anything from txB either.
	require.Len(t, obsA.stagedAtBefore.Created, 1)
	assert.Empty(t, txB.Staged().Created)
	require.NoError(t, txB.Rollback())
}
