package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/internal/dbmysql"
)

func setupTestStore(t *testing.T) (*dbmysql.Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return dbmysql.NewStore(gormDB), mock, func() { db.Close() }
}

// fakeIndex is an in-memory IndexClient with canned search results.
type fakeIndex struct {
	docs      map[string]map[string]interface{}
	searchIDs []uint64
	total     int
	failWith  error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: make(map[string]map[string]interface{})}
}

func (f *fakeIndex) Index(_ context.Context, index string, docID uint64, body map[string]interface{}) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.docs[fmt.Sprintf("%s/%d", index, docID)] = body
	return nil
}

func (f *fakeIndex) Delete(_ context.Context, index string, docID uint64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.docs, fmt.Sprintf("%s/%d", index, docID))
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _, _ string, _, _ int) ([]uint64, int, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	return f.searchIDs, f.total, nil
}

func postRows(posts ...dbmysql.Post) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "body", "timestamp", "language"})
	for _, p := range posts {
		rows.AddRow(p.ID, p.UserID, p.Body, p.Timestamp, p.Language)
	}
	return rows
}

func TestPostRepository_CreateCommits(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()
	repo := NewPostRepository(store, newFakeIndex())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	post := &dbmysql.Post{UserID: 1, Body: "hello world"}
	require.NoError(t, repo.Create(context.Background(), post))
	assert.Equal(t, uint64(7), post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CreateRollsBackOnError(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()
	repo := NewPostRepository(store, newFakeIndex())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &dbmysql.Post{UserID: 1, Body: "boom"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_FollowedIncludesOwnPosts(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()
	repo := NewPostRepository(store, newFakeIndex())

	now := time.Now()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE user_id = \\? OR user_id IN \\(SELECT followed_id FROM `follows` WHERE follower_id = \\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE user_id = \\? OR user_id IN \\(SELECT followed_id FROM `follows` WHERE follower_id = \\?\\) ORDER BY timestamp DESC, id DESC").
		WillReturnRows(postRows(
			dbmysql.Post{ID: 5, UserID: 1, Body: "my own post", Timestamp: now},
			dbmysql.Post{ID: 3, UserID: 2, Body: "a followed post", Timestamp: now.Add(-time.Hour)},
		))

	posts, total, err := repo.Followed(context.Background(), 1, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, posts, 2)
	assert.Equal(t, uint64(1), posts[0].UserID)
	assert.Equal(t, uint64(2), posts[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SearchPreservesRank(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()

	index := newFakeIndex()
	index.searchIDs = []uint64{9, 2, 5}
	index.total = 3
	repo := NewPostRepository(store, index)

	// rows come back in primary-key order, not relevance order
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id IN").
		WillReturnRows(postRows(
			dbmysql.Post{ID: 2, UserID: 1, Body: "second best"},
			dbmysql.Post{ID: 5, UserID: 1, Body: "third best"},
			dbmysql.Post{ID: 9, UserID: 2, Body: "best match"},
		))

	posts, total, err := repo.Search(context.Background(), "match", 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, posts, 3)
	assert.Equal(t, uint64(9), posts[0].ID)
	assert.Equal(t, uint64(2), posts[1].ID)
	assert.Equal(t, uint64(5), posts[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SearchSingleMatch(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()

	index := newFakeIndex()
	index.searchIDs = []uint64{4}
	index.total = 1
	repo := NewPostRepository(store, index)

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id IN").
		WillReturnRows(postRows(dbmysql.Post{ID: 4, UserID: 1, Body: "the one"}))

	posts, total, err := repo.Search(context.Background(), "one", 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(4), posts[0].ID)
}

func TestPostRepository_SearchNoMatchesSkipsDatabase(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()
	repo := NewPostRepository(store, newFakeIndex())

	posts, total, err := repo.Search(context.Background(), "nothing here", 1, 25)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
	assert.Zero(t, total)
	// no relational query may have been issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SearchPastLastPageKeepsTotal(t *testing.T) {
	store, mock, cleanup := setupTestStore(t)
	defer cleanup()

	// page window beyond the last hit: no ids, but the total stands
	index := newFakeIndex()
	index.total = 42
	repo := NewPostRepository(store, index)

	posts, total, err := repo.Search(context.Background(), "popular", 3, 25)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 42, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SearchIndexError(t *testing.T) {
	store, _, cleanup := setupTestStore(t)
	defer cleanup()

	index := newFakeIndex()
	index.failWith = errors.New("cluster red")
	repo := NewPostRepository(store, index)

	_, _, err := repo.Search(context.Background(), "anything", 1, 25)
	require.Error(t, err)
}

