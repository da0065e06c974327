package service

import (
	commentModel "community_bbs/internal/domain/comment/model"
	nodeModel "community_bbs/internal/domain/node/model"
	countModel "community_bbs/internal/domain/topiccount/model"
	userModel "community_bbs/internal/domain/user/model"
	"community_bbs/internal/pkg/textkit"
	"context"
)

// 以下接口只声明帖子流程用到的方法，查不到记录时实现方返回 (nil, nil)

type UserLookup interface {
	GetUser(ctx context.Context, uid int64) (*userModel.User, error)
	GetUserByLoginName(ctx context.Context, loginName string) (*userModel.User, error)
}

type NodeService interface {
	GetNode(ctx context.Context, nid int64) (*nodeModel.Node, error)
	UpdateCount(ctx context.Context, nid int64, kind string, delta int) error
}

type CommentService interface {
	Save(ctx context.Context, uid, toUID, tid int64, content, userAgent string) (int64, error)
	LastCommentOf(ctx context.Context, tid int64) (*commentModel.Comment, error)
}

type NoticeService interface {
	Save(ctx context.Context, kind string, toUID, eventID int64) error
}

type SettingsService interface {
	UpdateCount(ctx context.Context, kind string, delta int) error
}

type CounterService interface {
	Save(ctx context.Context, tid, createTime int64) error
	GetCount(ctx context.Context, tid int64) (*countModel.TopicCount, error)
	Update(ctx context.Context, kind string, tid int64, delta int) error
}

type TextKit interface {
	ExtractMentions(text string) []string
	RenderContent(raw string) string
	AvatarURL(raw string, size textkit.ImageSize) string
}
