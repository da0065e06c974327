package service

import (
	commentModel "community_bbs/internal/domain/comment/model"
	nodeModel "community_bbs/internal/domain/node/model"
	"community_bbs/internal/domain/topic/model"
	countModel "community_bbs/internal/domain/topiccount/model"
	userModel "community_bbs/internal/domain/user/model"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *model.Topic) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *MockTopicRepository) GetByID(ctx context.Context, tid int64) (*model.Topic, error) {
	args := m.Called(ctx, tid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Topic), args.Error(1)
}

func (m *MockTopicRepository) UpdateStatus(ctx context.Context, tid int64, status int) error {
	return m.Called(ctx, tid, status).Error(0)
}

func (m *MockTopicRepository) UpdateWeight(ctx context.Context, tid int64, weight float64) error {
	return m.Called(ctx, tid, weight).Error(0)
}

func (m *MockTopicRepository) UpdateEssence(ctx context.Context, tid int64, essence int) error {
	return m.Called(ctx, tid, essence).Error(0)
}

func (m *MockTopicRepository) UpdateContent(ctx context.Context, tid, nid int64, title, content string, updateTime int64) error {
	return m.Called(ctx, tid, nid, title, content, updateTime).Error(0)
}

func (m *MockTopicRepository) CountActiveByUser(ctx context.Context, uid int64) (int64, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTopicRepository) LastByUser(ctx context.Context, uid int64) (*model.Topic, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Topic), args.Error(1)
}

func (m *MockTopicRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTopicRepository) List(ctx context.Context, q model.ListQuery) ([]model.Topic, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Topic), args.Get(1).(int64), args.Error(2)
}

type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) GetUser(ctx context.Context, uid int64) (*userModel.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *MockUserLookup) GetUserByLoginName(ctx context.Context, loginName string) (*userModel.User, error) {
	args := m.Called(ctx, loginName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

type MockNodeService struct {
	mock.Mock
}

func (m *MockNodeService) GetNode(ctx context.Context, nid int64) (*nodeModel.Node, error) {
	args := m.Called(ctx, nid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nodeModel.Node), args.Error(1)
}

func (m *MockNodeService) UpdateCount(ctx context.Context, nid int64, kind string, delta int) error {
	return m.Called(ctx, nid, kind, delta).Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Save(ctx context.Context, uid, toUID, tid int64, content, userAgent string) (int64, error) {
	args := m.Called(ctx, uid, toUID, tid, content, userAgent)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentService) LastCommentOf(ctx context.Context, tid int64) (*commentModel.Comment, error) {
	args := m.Called(ctx, tid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commentModel.Comment), args.Error(1)
}

type MockNoticeService struct {
	mock.Mock
}

func (m *MockNoticeService) Save(ctx context.Context, kind string, toUID, eventID int64) error {
	return m.Called(ctx, kind, toUID, eventID).Error(0)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) UpdateCount(ctx context.Context, kind string, delta int) error {
	return m.Called(ctx, kind, delta).Error(0)
}

type MockCounterService struct {
	mock.Mock
}

func (m *MockCounterService) Save(ctx context.Context, tid, createTime int64) error {
	return m.Called(ctx, tid, createTime).Error(0)
}

func (m *MockCounterService) GetCount(ctx context.Context, tid int64) (*countModel.TopicCount, error) {
	args := m.Called(ctx, tid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*countModel.TopicCount), args.Error(1)
}

func (m *MockCounterService) Update(ctx context.Context, kind string, tid int64, delta int) error {
	return m.Called(ctx, kind, tid, delta).Error(0)
}
