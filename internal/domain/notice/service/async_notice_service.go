package service

import (
	"community_bbs/internal/domain/notice/model"
	"community_bbs/internal/pkg/worker"
	"context"

	"go.uber.org/zap"
)

// NoticeTask 投递给工作池的通知
type NoticeTask struct {
	Kind    string
	ToUID   int64
	EventID int64
}

// AsyncNoticeService 通知写入交给工作池，发帖/评论请求不等待通知落库
type AsyncNoticeService struct {
	next NoticeService
	pool *worker.Pool[NoticeTask]
	log  *zap.Logger
}

func NewAsyncNoticeService(next NoticeService, workers, queueSize int, log *zap.Logger) *AsyncNoticeService {
	s := &AsyncNoticeService{next: next, log: log}
	s.pool = worker.NewPool[NoticeTask]("notice", func(ctx context.Context, t NoticeTask) error {
		return next.Save(ctx, t.Kind, t.ToUID, t.EventID)
	}, workers, queueSize, log)
	return s
}

func (s *AsyncNoticeService) Start() { s.pool.Start() }

func (s *AsyncNoticeService) Stop() { s.pool.Stop() }

// Save 工作池未运行或队列已满时同步写入
func (s *AsyncNoticeService) Save(ctx context.Context, kind string, toUID, eventID int64) error {
	if !model.ValidKind(kind) || toUID <= 0 {
		return s.next.Save(ctx, kind, toUID, eventID)
	}
	if s.pool.AddTask(NoticeTask{Kind: kind, ToUID: toUID, EventID: eventID}) {
		return nil
	}
	s.log.Debug("notice pool unavailable, saving synchronously", zap.String("kind", kind), zap.Int64("to_uid", toUID))
	return s.next.Save(ctx, kind, toUID, eventID)
}

func (s *AsyncNoticeService) GetNotices(ctx context.Context, uid int64, page, limit int) ([]model.Notice, int64, error) {
	return s.next.GetNotices(ctx, uid, page, limit)
}
