package user

import (
	"context"
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

func TestFollowRepository_FollowIsIdempotent(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFollowRepository(db)

	// first call inserts the edge
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `follows`").
		WithArgs(uint64(1), uint64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Follow(context.Background(), 1, 2))

	// second call hits the unique index and affects zero rows, still
	// no error
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `follows`").
		WithArgs(uint64(1), uint64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.Follow(context.Background(), 1, 2))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_UnfollowMissingEdgeIsNoop(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFollowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `follows`").
		WithArgs(uint64(1), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.Unfollow(context.Background(), 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_IsFollowing(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFollowRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `follows`").
		WithArgs(uint64(1), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	following, err := repo.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `follows`").
		WithArgs(uint64(2), uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	following, err = repo.IsFollowing(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.False(t, following)
}
