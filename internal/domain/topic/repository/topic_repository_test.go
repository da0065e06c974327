package repository

import (
	"community_bbs/internal/domain/topic/model"
	baseModel "community_bbs/pkg/model"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var topicColumns = []string{"tid", "uid", "nid", "title", "content", "status", "is_essence", "weight", "create_time", "update_time"}

func TestTopicCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "t_topic"`)).
		WillReturnRows(sqlmock.NewRows([]string{"tid"}).AddRow(100))

	topic := &model.Topic{UID: 1, NID: 3, Title: "t", Content: "c", Status: model.StatusActive,
		Timestamps: baseModel.Timestamps{CreateTime: 1700000000, UpdateTime: 1700000000}}
	require.NoError(t, repo.Create(context.Background(), topic))
	assert.Equal(t, int64(100), topic.TID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic" WHERE tid = $1`)).
			WillReturnRows(sqlmock.NewRows(topicColumns).
				AddRow(100, 1, 3, "t", "c", 2, 0, 0.5, 1700000000, 1700000000))

		topic, err := repo.GetByID(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, topic)
		assert.Equal(t, model.StatusDeleted, topic.Status)
		assert.Equal(t, int64(1700000000), topic.CreateTime)
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic"`)).
			WillReturnRows(sqlmock.NewRows(topicColumns))

		topic, err := repo.GetByID(ctx, 100)
		assert.NoError(t, err)
		assert.Nil(t, topic)
	})

	t.Run("Storage error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic"`)).WillReturnError(errors.New("conn refused"))

		_, err := repo.GetByID(ctx, 100)
		assert.Error(t, err)
	})
}

func TestTopicUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Soft delete flips status only", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "t_topic" SET "status"=$1 WHERE tid = $2`)).
			WithArgs(model.StatusDeleted, int64(100)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, 100, model.StatusDeleted))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "t_topic"`)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, 100, model.StatusDeleted), gorm.ErrRecordNotFound)
	})
}

func TestTopicUpdateWeight(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopicRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "t_topic" SET "weight"=$1 WHERE tid = $2`)).
		WithArgs(0.25, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateWeight(context.Background(), 100, 0.25))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicCountActiveByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "t_topic" WHERE uid = $1 AND status = $2`)).
		WithArgs(int64(7), model.StatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountActiveByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestTopicLastByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Most recent by create_time", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic" WHERE uid = $1 ORDER BY create_time desc, tid desc`)).
			WillReturnRows(sqlmock.NewRows(topicColumns).
				AddRow(101, 7, 3, "t", "c", 1, 0, 0.5, 1700000500, 1700000900))

		topic, err := repo.LastByUser(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, topic)
		assert.Equal(t, int64(1700000900), topic.UpdateTime)
	})

	t.Run("No topics", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic"`)).WillReturnRows(sqlmock.NewRows(topicColumns))

		topic, err := repo.LastByUser(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, topic)
	})
}

func TestTopicListActiveIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTopicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "tid" FROM "t_topic" WHERE status = $1 ORDER BY tid asc`)).
		WithArgs(model.StatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"tid"}).AddRow(1).AddRow(2).AddRow(5))

	ids, err := repo.ListActiveIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5}, ids)
}

func TestTopicList(t *testing.T) {
	ctx := context.Background()

	t.Run("Hot within node", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "t_topic" WHERE status = $1 AND nid = $2`)).
			WithArgs(model.StatusActive, int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic" WHERE status = $1 AND nid = $2 ORDER BY weight desc, tid desc`)).
			WillReturnRows(sqlmock.NewRows(topicColumns).
				AddRow(2, 1, 3, "b", "c", 1, 0, 0.9, 1700000000, 1700000000).
				AddRow(1, 1, 3, "a", "c", 1, 0, 0.3, 1700000000, 1700000000))

		topics, total, err := repo.List(ctx, model.ListQuery{NID: 3, Order: model.OrderHot, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, topics, 2)
		assert.Equal(t, int64(2), topics[0].TID)
	})

	t.Run("Recent across nodes", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTopicRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "t_topic" WHERE status = $1`)).
			WithArgs(model.StatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "t_topic" WHERE status = $1 ORDER BY create_time desc, tid desc`)).
			WillReturnRows(sqlmock.NewRows(topicColumns))

		topics, total, err := repo.List(ctx, model.ListQuery{Order: model.OrderRecent, Limit: 20})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, topics)
	})
}
