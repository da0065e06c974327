package service

import (
	"community_bbs/internal/domain/notice/model"
	"community_bbs/internal/domain/notice/repository"
	"community_bbs/internal/pkg/push"
	baseModel "community_bbs/pkg/model"
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

type NoticeService interface {
	Save(ctx context.Context, kind string, toUID, eventID int64) error
	GetNotices(ctx context.Context, uid int64, page, limit int) ([]model.Notice, int64, error)
}

var noticeTitles = map[string]string{
	model.KindTopicAt:   "有人在帖子中提到了你",
	model.KindComment:   "你的帖子有了新评论",
	model.KindCommentAt: "有人在评论中提到了你",
}

type noticeService struct {
	repo repository.NoticeRepository
	push push.PushService
	log  *zap.Logger
}

// NewNoticeService pusher 为空时只落库不推送
func NewNoticeService(repo repository.NoticeRepository, pusher push.PushService, log *zap.Logger) NoticeService {
	return &noticeService{repo: repo, push: pusher, log: log}
}

// Save 写入通知，推送失败只记录日志
func (s *noticeService) Save(ctx context.Context, kind string, toUID, eventID int64) error {
	if !model.ValidKind(kind) {
		return fmt.Errorf("unknown notice kind %q", kind)
	}
	if toUID <= 0 {
		return fmt.Errorf("invalid notice recipient %d", toUID)
	}

	notice := &model.Notice{
		Kind:       kind,
		ToUID:      toUID,
		EventID:    eventID,
		CreateTime: baseModel.NowUnix(),
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return err
	}

	if s.push != nil {
		ext := map[string]string{"kind": kind, "event_id": strconv.FormatInt(eventID, 10)}
		if err := s.push.PushToAccount(strconv.FormatInt(toUID, 10), noticeTitles[kind], noticeTitles[kind], ext); err != nil {
			s.log.Warn("push notice failed", zap.Int64("to_uid", toUID), zap.String("kind", kind), zap.Error(err))
		}
	}
	return nil
}

func (s *noticeService) GetNotices(ctx context.Context, uid int64, page, limit int) ([]model.Notice, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	return s.repo.ListByUser(ctx, uid, offset, limit)
}
