package persistent

import (
	"testing"

	"bakra-mandi/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func videoRows(likesCount int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "likes_count", "is_active"}).
		AddRow(1, "Morning at the farm", likesCount, true)
}

// A first-time like runs as one transaction in a fixed order: video row lock,
// absence check, ledger insert, recount, counter rewrite.
func TestToggle_LikeLocksInsertsAndRecounts(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "videos" WHERE (.+)FOR UPDATE`).
		WillReturnRows(videoRows(0))
	mock.ExpectQuery(`SELECT (.+) FROM "video_likes" WHERE video_id = \$1 AND device_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "video_likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "video_likes" WHERE video_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`UPDATE "videos" SET "likes_count"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewEngagementRepository(db)
	liked, count, err := repo.Toggle(1, "device-1")

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An existing row makes the same transaction delete it, and the counter is
// rewritten from the surviving rows rather than decremented.
func TestToggle_UnlikeDeletesAndRecounts(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "videos" WHERE (.+)FOR UPDATE`).
		WillReturnRows(videoRows(3))
	mock.ExpectQuery(`SELECT (.+) FROM "video_likes" WHERE video_id = \$1 AND device_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "video_id", "device_id"}).AddRow(7, 1, "device-1"))
	mock.ExpectExec(`DELETE FROM "video_likes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "video_likes" WHERE video_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`UPDATE "videos" SET "likes_count"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewEngagementRepository(db)
	liked, count, err := repo.Toggle(1, "device-1")

	assert.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggle_UnknownVideoRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "videos" WHERE (.+)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	repo := NewEngagementRepository(db)
	_, _, err := repo.Toggle(99, "device-1")

	assert.ErrorIs(t, err, entity.ErrVideoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A duplicate-key violation on the insert means a racing toggle for the same
// pair slipped past the absence check; it surfaces as ErrLikeConflict so the
// caller can rerun, and nothing from the transaction is kept.
func TestToggle_DuplicateKeyMapsToLikeConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "videos" WHERE (.+)FOR UPDATE`).
		WillReturnRows(videoRows(0))
	mock.ExpectQuery(`SELECT (.+) FROM "video_likes" WHERE video_id = \$1 AND device_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "video_likes"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	repo := NewEngagementRepository(db)
	_, _, err := repo.Toggle(1, "device-1")

	assert.ErrorIs(t, err, entity.ErrLikeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsLiked_UnknownVideoReadsNotLiked(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "video_likes" WHERE video_id = \$1 AND device_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewEngagementRepository(db)
	liked, err := repo.IsLiked(99, "device-1")

	assert.NoError(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsLiked_ExistingRowReadsLiked(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "video_likes" WHERE video_id = \$1 AND device_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := NewEngagementRepository(db)
	liked, err := repo.IsLiked(1, "device-1")

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLikes(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "video_likes" WHERE video_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	repo := NewEngagementRepository(db)
	count, err := repo.CountLikes(1)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
