package service

import (
	noticeModel "community_bbs/internal/domain/notice/model"
	nodeModel "community_bbs/internal/domain/node/model"
	settingsModel "community_bbs/internal/domain/settings/model"
	"community_bbs/internal/domain/topic/model"
	countModel "community_bbs/internal/domain/topiccount/model"
	userModel "community_bbs/internal/domain/user/model"
	"community_bbs/internal/pkg/textkit"
	"community_bbs/pkg/apperrors"
	baseModel "community_bbs/pkg/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	repo     *MockTopicRepository
	users    *MockUserLookup
	nodes    *MockNodeService
	comments *MockCommentService
	notices  *MockNoticeService
	settings *MockSettingsService
	counters *MockCounterService
	svc      TopicService
}

func newFixture() *fixture {
	f := &fixture{
		repo:     new(MockTopicRepository),
		users:    new(MockUserLookup),
		nodes:    new(MockNodeService),
		comments: new(MockCommentService),
		notices:  new(MockNoticeService),
		settings: new(MockSettingsService),
		counters: new(MockCounterService),
	}
	f.svc = NewTopicService(Deps{
		Repo:     f.repo,
		Users:    f.users,
		Nodes:    f.nodes,
		Comments: f.comments,
		Notices:  f.notices,
		Settings: f.settings,
		Counters: f.counters,
		Text:     textkit.New(nil, "https://cdn.example.com", 0, zap.NewNop()),
		Weight:   newGravityCalculator(),
		Log:      zap.NewNop(),
		PageSize: 20,
	})
	return f
}

func draft(content string) *model.Topic {
	return &model.Topic{UID: 1, NID: 3, Title: "  hello  ", Content: content}
}

// expectCreateSteps 发帖成功路径上除通知外的所有调用
func (f *fixture) expectCreateSteps(ctx context.Context, tid int64) {
	now := fixedNow.Unix()
	f.repo.On("Create", ctx, mock.AnythingOfType("*model.Topic")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Topic).TID = tid }).
		Return(nil)
	f.counters.On("Save", ctx, tid, now).Return(nil)
	f.counters.On("GetCount", ctx, tid).Return(&countModel.TopicCount{TID: tid, CreateTime: now}, nil)
	f.repo.On("UpdateWeight", ctx, tid, newGravityCalculator().Compute(0, 0, 0, 0, now)).Return(nil)
	f.nodes.On("UpdateCount", ctx, int64(3), nodeModel.CountTopics, 1).Return(nil)
	f.settings.On("UpdateCount", ctx, settingsModel.KeyTopicCount, 1).Return(nil)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Create stamps, counts and weighs the new topic", func(t *testing.T) {
		f := newFixture()
		f.expectCreateSteps(ctx, 100)

		topic := draft("plain body")
		tid, err := f.svc.Create(ctx, topic)

		require.NoError(t, err)
		assert.Equal(t, int64(100), tid)
		assert.Equal(t, model.StatusActive, topic.Status)
		assert.Equal(t, "hello", topic.Title)
		assert.Equal(t, fixedNow.Unix(), topic.CreateTime)
		assert.Equal(t, topic.CreateTime, topic.UpdateTime)
		f.repo.AssertExpectations(t)
		f.counters.AssertExpectations(t)
		f.nodes.AssertExpectations(t)
		f.settings.AssertExpectations(t)
		f.notices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate mentions notify each user once", func(t *testing.T) {
		f := newFixture()
		f.expectCreateSteps(ctx, 100)
		f.users.On("GetUserByLoginName", ctx, "alice").Return(&userModel.User{UID: 2, LoginName: "alice"}, nil).Once()
		f.users.On("GetUserByLoginName", ctx, "bob").Return(&userModel.User{UID: 3, LoginName: "bob"}, nil).Once()
		f.notices.On("Save", ctx, noticeModel.KindTopicAt, int64(2), int64(100)).Return(nil).Once()
		f.notices.On("Save", ctx, noticeModel.KindTopicAt, int64(3), int64(100)).Return(nil).Once()

		_, err := f.svc.Create(ctx, draft("hello @alice @alice, cc @bob"))

		require.NoError(t, err)
		f.notices.AssertNumberOfCalls(t, "Save", 2)
		f.users.AssertExpectations(t)
		f.notices.AssertExpectations(t)
	})

	t.Run("Author and unknown users are not notified", func(t *testing.T) {
		f := newFixture()
		f.expectCreateSteps(ctx, 100)
		f.users.On("GetUserByLoginName", ctx, "me").Return(&userModel.User{UID: 1, LoginName: "me"}, nil)
		f.users.On("GetUserByLoginName", ctx, "ghost").Return(nil, nil)

		_, err := f.svc.Create(ctx, draft("@me and @ghost"))

		require.NoError(t, err)
		f.notices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Notice failure does not fail create", func(t *testing.T) {
		f := newFixture()
		f.expectCreateSteps(ctx, 100)
		f.users.On("GetUserByLoginName", ctx, "alice").Return(&userModel.User{UID: 2}, nil)
		f.notices.On("Save", ctx, noticeModel.KindTopicAt, int64(2), int64(100)).Return(errors.New("queue down"))

		tid, err := f.svc.Create(ctx, draft("hi @alice"))
		assert.NoError(t, err)
		assert.Equal(t, int64(100), tid)
	})

	t.Run("Invalid drafts are rejected before any mutation", func(t *testing.T) {
		cases := map[string]*model.Topic{
			"nil draft":     nil,
			"blank content": {UID: 1, NID: 3, Title: "t", Content: "   "},
			"blank title":   {UID: 1, NID: 3, Title: " ", Content: "c"},
			"missing uid":   {NID: 3, Title: "t", Content: "c"},
			"missing nid":   {UID: 1, Title: "t", Content: "c"},
		}
		for name, topic := range cases {
			t.Run(name, func(t *testing.T) {
				f := newFixture()
				tid, err := f.svc.Create(ctx, topic)
				assert.Zero(t, tid)
				assert.True(t, apperrors.IsValidation(err), "got %v", err)
				f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Persist failure aborts", func(t *testing.T) {
		f := newFixture()
		f.repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		tid, err := f.svc.Create(ctx, draft("body"))
		assert.Zero(t, tid)
		assert.True(t, apperrors.IsPersistence(err))
		f.counters.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Counter failure aborts remaining steps", func(t *testing.T) {
		f := newFixture()
		f.repo.On("Create", ctx, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*model.Topic).TID = 100 }).
			Return(nil)
		f.counters.On("Save", ctx, int64(100), fixedNow.Unix()).Return(errors.New("db down"))

		tid, err := f.svc.Create(ctx, draft("body"))
		assert.Equal(t, int64(100), tid)
		assert.True(t, apperrors.IsPersistence(err))
		f.repo.AssertNotCalled(t, "UpdateWeight", mock.Anything, mock.Anything, mock.Anything)
		f.nodes.AssertNotCalled(t, "UpdateCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Deleted topics are still readable", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(100)).Return(&model.Topic{TID: 100, Status: model.StatusDeleted}, nil)

		topic, err := f.svc.Get(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, model.StatusDeleted, topic.Status)
	})

	t.Run("Missing tid", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Get(ctx, 0)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Soft delete keeps the row and bumps counts like create", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(100)).Return(&model.Topic{TID: 100, NID: 3, Status: model.StatusActive}, nil)
		f.repo.On("UpdateStatus", ctx, int64(100), model.StatusDeleted).Return(nil)
		f.nodes.On("UpdateCount", ctx, int64(3), nodeModel.CountTopics, 1).Return(nil)
		f.settings.On("UpdateCount", ctx, settingsModel.KeyTopicCount, 1).Return(nil)

		require.NoError(t, f.svc.Delete(ctx, 100))
		f.repo.AssertExpectations(t)
		f.nodes.AssertExpectations(t)
		f.settings.AssertExpectations(t)
	})

	t.Run("Missing tid", func(t *testing.T) {
		f := newFixture()
		assert.True(t, apperrors.IsValidation(f.svc.Delete(ctx, 0)))
	})

	t.Run("Unknown topic", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(100)).Return(nil, nil)

		assert.True(t, apperrors.IsNotFound(f.svc.Delete(ctx, 100)))
	})

	t.Run("Already deleted is a no-op", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(100)).Return(&model.Topic{TID: 100, NID: 3, Status: model.StatusDeleted}, nil)

		assert.NoError(t, f.svc.Delete(ctx, 100))
		f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		f.nodes.AssertNotCalled(t, "UpdateCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Status failure propagates", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, int64(100)).Return(&model.Topic{TID: 100, NID: 3, Status: model.StatusActive}, nil)
		f.repo.On("UpdateStatus", ctx, int64(100), model.StatusDeleted).Return(errors.New("db down"))

		assert.True(t, apperrors.IsPersistence(f.svc.Delete(ctx, 100)))
		f.nodes.AssertNotCalled(t, "UpdateCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Comment on another user's topic", func(t *testing.T) {
		f := newFixture()
		content := "thanks @bob @alice"
		f.comments.On("Save", ctx, int64(1), int64(2), int64(100), content, "ua").Return(int64(500), nil)
		f.counters.On("Update", ctx, countModel.KindComments, int64(100), 1).Return(nil).Once()
		f.counters.On("GetCount", ctx, int64(100)).Return(&countModel.TopicCount{TID: 100, Comments: 1, CreateTime: fixedNow.Unix()}, nil)
		f.repo.On("UpdateWeight", ctx, int64(100), mock.AnythingOfType("float64")).Return(nil)
		f.notices.On("Save", ctx, noticeModel.KindComment, int64(2), int64(100)).Return(nil).Once()
		f.users.On("GetUserByLoginName", ctx, "bob").Return(&userModel.User{UID: 3}, nil)
		f.users.On("GetUserByLoginName", ctx, "alice").Return(&userModel.User{UID: 1}, nil)
		f.notices.On("Save", ctx, noticeModel.KindCommentAt, int64(3), int64(500)).Return(nil).Once()
		f.settings.On("UpdateCount", ctx, settingsModel.KeyCommentCount, 1).Return(nil)

		assert.True(t, f.svc.Comment(ctx, 1, 2, 100, content, "ua"))
		f.counters.AssertNumberOfCalls(t, "Update", 1)
		f.notices.AssertNumberOfCalls(t, "Save", 2)
		f.settings.AssertExpectations(t)
	})

	t.Run("Self comment skips notices and site count", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Save", ctx, int64(1), int64(1), int64(100), "bump", "").Return(int64(501), nil)
		f.counters.On("Update", ctx, countModel.KindComments, int64(100), 1).Return(nil)
		f.counters.On("GetCount", ctx, int64(100)).Return(&countModel.TopicCount{TID: 100, Comments: 2, CreateTime: fixedNow.Unix()}, nil)
		f.repo.On("UpdateWeight", ctx, int64(100), mock.AnythingOfType("float64")).Return(nil)

		assert.True(t, f.svc.Comment(ctx, 1, 1, 100, "bump", ""))
		f.notices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.settings.AssertNotCalled(t, "UpdateCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed save leaves the counter alone", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Save", ctx, int64(1), int64(2), int64(100), "hi", "").Return(int64(0), errors.New("db down"))

		assert.False(t, f.svc.Comment(ctx, 1, 2, 100, "hi", ""))
		f.counters.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failures after the counter increment still succeed", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Save", ctx, int64(1), int64(2), int64(100), "hi", "").Return(int64(502), nil)
		f.counters.On("Update", ctx, countModel.KindComments, int64(100), 1).Return(nil).Once()
		f.counters.On("GetCount", ctx, int64(100)).Return(nil, errors.New("db down"))
		f.notices.On("Save", ctx, noticeModel.KindComment, int64(2), int64(100)).Return(nil)
		f.settings.On("UpdateCount", ctx, settingsModel.KeyCommentCount, 1).Return(errors.New("db down"))

		assert.True(t, f.svc.Comment(ctx, 1, 2, 100, "hi", ""))
		f.counters.AssertNumberOfCalls(t, "Update", 1)
		f.repo.AssertNotCalled(t, "UpdateWeight", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing input", func(t *testing.T) {
		f := newFixture()
		assert.False(t, f.svc.Comment(ctx, 0, 2, 100, "hi", ""))
		assert.False(t, f.svc.Comment(ctx, 1, 2, 0, "hi", ""))
		assert.False(t, f.svc.Comment(ctx, 1, 2, 100, " ", ""))
		f.comments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("Edit success", func(t *testing.T) {
		f := newFixture()
		f.repo.On("UpdateContent", ctx, int64(100), int64(4), "new title", "body", fixedNow.Unix()).Return(nil)

		tid, ok := f.svc.Edit(ctx, 100, 4, " new title ", "body")
		assert.True(t, ok)
		assert.Equal(t, int64(100), tid)
	})

	t.Run("Blank title", func(t *testing.T) {
		f := newFixture()
		tid, ok := f.svc.Edit(ctx, 100, 4, "  ", "body")
		assert.False(t, ok)
		assert.Zero(t, tid)
		f.repo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage error is swallowed", func(t *testing.T) {
		f := newFixture()
		f.repo.On("UpdateContent", ctx, int64(100), int64(4), "t", "body", fixedNow.Unix()).Return(gorm.ErrRecordNotFound)

		tid, ok := f.svc.Edit(ctx, 100, 4, "t", "body")
		assert.False(t, ok)
		assert.Zero(t, tid)
	})
}

func TestUpdateWeight(t *testing.T) {
	ctx := context.Background()
	now := fixedNow.Unix()

	t.Run("Uses the counter snapshot", func(t *testing.T) {
		f := newFixture()
		count := &countModel.TopicCount{TID: 100, Loves: 4, Favorites: 1, Comments: 3, Sinks: 1, CreateTime: now - 3600}
		f.counters.On("GetCount", ctx, int64(100)).Return(count, nil)
		f.repo.On("UpdateWeight", ctx, int64(100), newGravityCalculator().Compute(4, 1, 3, 1, now-3600)).Return(nil)

		require.NoError(t, f.svc.UpdateWeight(ctx, 100))
		f.repo.AssertExpectations(t)
	})

	t.Run("Missing counter row falls back to zeros", func(t *testing.T) {
		f := newFixture()
		f.counters.On("GetCount", ctx, int64(100)).Return(nil, nil)
		f.repo.On("GetByID", ctx, int64(100)).Return(&model.Topic{TID: 100, Timestamps: baseModel.Timestamps{CreateTime: now - 60}}, nil)
		f.repo.On("UpdateWeight", ctx, int64(100), newGravityCalculator().Compute(0, 0, 0, 0, now-60)).Return(nil)

		require.NoError(t, f.svc.UpdateWeight(ctx, 100))
		f.repo.AssertExpectations(t)
	})

	t.Run("Missing topic", func(t *testing.T) {
		f := newFixture()
		f.counters.On("GetCount", ctx, int64(100)).Return(nil, nil)
		f.repo.On("GetByID", ctx, int64(100)).Return(nil, nil)

		assert.True(t, apperrors.IsNotFound(f.svc.UpdateWeight(ctx, 100)))
	})

	t.Run("Missing tid", func(t *testing.T) {
		f := newFixture()
		assert.True(t, apperrors.IsValidation(f.svc.UpdateWeight(ctx, 0)))
	})

	t.Run("Persist error propagates", func(t *testing.T) {
		f := newFixture()
		f.counters.On("GetCount", ctx, int64(100)).Return(&countModel.TopicCount{TID: 100, CreateTime: now}, nil)
		f.repo.On("UpdateWeight", ctx, int64(100), mock.Anything).Return(errors.New("db down"))

		assert.True(t, apperrors.IsPersistence(f.svc.UpdateWeight(ctx, 100)))
	})
}

func TestRefreshAllWeights(t *testing.T) {
	ctx := context.Background()
	now := fixedNow.Unix()

	t.Run("Recomputes every active topic", func(t *testing.T) {
		f := newFixture()
		f.repo.On("ListActiveIDs", ctx).Return([]int64{1, 2}, nil)
		for _, tid := range []int64{1, 2} {
			f.counters.On("GetCount", ctx, tid).Return(&countModel.TopicCount{TID: tid, CreateTime: now}, nil)
			f.repo.On("UpdateWeight", ctx, tid, mock.AnythingOfType("float64")).Return(nil)
		}

		require.NoError(t, f.svc.RefreshAllWeights(ctx))
		f.repo.AssertNumberOfCalls(t, "UpdateWeight", 2)
	})

	t.Run("Fails fast", func(t *testing.T) {
		f := newFixture()
		f.repo.On("ListActiveIDs", ctx).Return([]int64{1, 2, 3}, nil)
		f.counters.On("GetCount", ctx, int64(1)).Return(&countModel.TopicCount{TID: 1, CreateTime: now}, nil)
		f.counters.On("GetCount", ctx, int64(2)).Return(nil, errors.New("db down"))
		f.repo.On("UpdateWeight", ctx, int64(1), mock.AnythingOfType("float64")).Return(nil)

		err := f.svc.RefreshAllWeights(ctx)
		assert.True(t, apperrors.IsPersistence(err))
		f.counters.AssertNotCalled(t, "GetCount", ctx, int64(3))
	})

	t.Run("Overlapping sweep is refused", func(t *testing.T) {
		f := newFixture()
		started := make(chan struct{})
		release := make(chan struct{})
		f.repo.On("ListActiveIDs", ctx).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return([]int64{}, nil).Once()

		done := make(chan error, 1)
		go func() { done <- f.svc.RefreshAllWeights(ctx) }()
		<-started

		assert.ErrorIs(t, f.svc.RefreshAllWeights(ctx), ErrRefreshInProgress)

		close(release)
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("first sweep did not finish")
		}
		f.repo.AssertNumberOfCalls(t, "ListActiveIDs", 1)
	})
}

func TestSetEssence(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		f := newFixture()
		f.repo.On("UpdateEssence", ctx, int64(100), 1).Return(nil).Twice()

		f.svc.SetEssence(ctx, 100, 1)
		f.svc.SetEssence(ctx, 100, 1)
		f.repo.AssertExpectations(t)
	})

	t.Run("Errors are swallowed", func(t *testing.T) {
		f := newFixture()
		f.repo.On("UpdateEssence", ctx, int64(100), 0).Return(errors.New("db down"))

		assert.NotPanics(t, func() { f.svc.SetEssence(ctx, 100, 0) })
	})
}

func TestInteract(t *testing.T) {
	ctx := context.Background()

	t.Run("Love bumps the counter and weight", func(t *testing.T) {
		f := newFixture()
		f.counters.On("Update", ctx, countModel.KindLoves, int64(100), 1).Return(nil)
		f.counters.On("GetCount", ctx, int64(100)).Return(&countModel.TopicCount{TID: 100, Loves: 1, CreateTime: fixedNow.Unix()}, nil)
		f.repo.On("UpdateWeight", ctx, int64(100), mock.AnythingOfType("float64")).Return(nil)

		require.NoError(t, f.svc.Interact(ctx, countModel.KindLoves, 100))
		f.repo.AssertExpectations(t)
	})

	t.Run("Views do not touch weight", func(t *testing.T) {
		f := newFixture()
		f.counters.On("Update", ctx, countModel.KindViews, int64(100), 1).Return(nil)

		require.NoError(t, f.svc.Interact(ctx, countModel.KindViews, 100))
		f.repo.AssertNotCalled(t, "UpdateWeight", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Comments are not an interaction", func(t *testing.T) {
		f := newFixture()
		assert.True(t, apperrors.IsValidation(f.svc.Interact(ctx, countModel.KindComments, 100)))
	})

	t.Run("Unknown topic", func(t *testing.T) {
		f := newFixture()
		f.counters.On("Update", ctx, countModel.KindSinks, int64(100), 1).Return(gorm.ErrRecordNotFound)

		assert.True(t, apperrors.IsNotFound(f.svc.Interact(ctx, countModel.KindSinks, 100)))
	})
}

func TestUserStats(t *testing.T) {
	ctx := context.Background()

	t.Run("CountByUser", func(t *testing.T) {
		f := newFixture()
		f.repo.On("CountActiveByUser", ctx, int64(7)).Return(int64(4), nil)

		count, err := f.svc.CountByUser(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = f.svc.CountByUser(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, count)
		f.repo.AssertNumberOfCalls(t, "CountActiveByUser", 1)
	})

	t.Run("Last times come from the newest topic", func(t *testing.T) {
		f := newFixture()
		f.repo.On("LastByUser", ctx, int64(7)).
			Return(&model.Topic{TID: 9, Timestamps: baseModel.Timestamps{CreateTime: 1700000000, UpdateTime: 1700000600}}, nil)

		created, ok, err := f.svc.LastCreateTime(ctx, 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1700000000), created)

		updated, ok, err := f.svc.LastUpdateTime(ctx, 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1700000600), updated)
	})

	t.Run("No topics is absent, not zero", func(t *testing.T) {
		f := newFixture()
		f.repo.On("LastByUser", ctx, int64(8)).Return(nil, nil)

		_, ok, err := f.svc.LastCreateTime(ctx, 8)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = f.svc.LastUpdateTime(ctx, 0)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Storage error", func(t *testing.T) {
		f := newFixture()
		f.repo.On("LastByUser", ctx, int64(7)).Return(nil, errors.New("db down"))

		_, ok, err := f.svc.LastCreateTime(ctx, 7)
		assert.False(t, ok)
		assert.True(t, apperrors.IsPersistence(err))
	})
}
