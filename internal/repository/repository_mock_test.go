package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/collabhub/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestRequestRepository_CountByReceiver(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRequestRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `collaboration_requests` WHERE receiver_id = ? AND status = ?")).
		WithArgs(7, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	count, err := repo.CountByReceiver(context.Background(), 7, models.RequestStatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ResolvePendingIsConditional(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRequestRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `collaboration_requests` SET `status`=? WHERE id = ? AND status = ?")).
		WithArgs("accepted", 5, "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	changed, err := repo.ResolvePending(context.Background(), 5, models.RequestStatusAccepted)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListResearchersEscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE user_type = ? AND LOWER(country) LIKE ? ESCAPE '!' ORDER BY id ASC")).
		WithArgs("researcher", "%100!%!_uk%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	users, err := repo.ListResearchers(context.Background(), ResearcherFilter{Country: "100%_UK"})
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_TransactionRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `posts`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	errBoom := errors.New("boom")
	err := store.Transaction(context.Background(), func(tx *Store) error {
		if err := tx.Posts().Create(context.Background(), &models.Post{Content: "hello", AuthorID: 1}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_FindForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRequestRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `collaboration_requests` WHERE `collaboration_requests`.`id` = ?") + ".*FOR UPDATE$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "status"}).AddRow(5, 1, 2, "pending"))

	req, err := repo.FindForUpdate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
