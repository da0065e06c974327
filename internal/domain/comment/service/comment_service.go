package service

import (
	"community_bbs/internal/domain/comment/model"
	"community_bbs/internal/domain/comment/repository"
	baseModel "community_bbs/pkg/model"
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrEmptyComment = errors.New("comment content is empty")

// maxUserAgentLen 与 user_agent 列的 VARCHAR(255) 一致，按字符计
const maxUserAgentLen = 255

type CommentService interface {
	Save(ctx context.Context, uid, toUID, tid int64, content, userAgent string) (int64, error)
	LastCommentOf(ctx context.Context, tid int64) (*model.Comment, error)
	ListByTopic(ctx context.Context, tid int64, page, limit int) ([]model.Comment, int64, error)
}

type commentService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

// Save 返回新评论的 cid
func (s *commentService) Save(ctx context.Context, uid, toUID, tid int64, content, userAgent string) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyComment
	}
	userAgent = truncateRunes(userAgent, maxUserAgentLen)

	comment := &model.Comment{
		UID:        uid,
		ToUID:      toUID,
		TID:        tid,
		Content:    content,
		UserAgent:  userAgent,
		CreateTime: baseModel.NowUnix(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.CID, nil
}

// LastCommentOf 没有评论时返回 (nil, nil)
func (s *commentService) LastCommentOf(ctx context.Context, tid int64) (*model.Comment, error) {
	return s.repo.LastByTopic(ctx, tid)
}

func (s *commentService) ListByTopic(ctx context.Context, tid int64, page, limit int) ([]model.Comment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListByTopic(ctx, tid, (page-1)*limit, limit)
}

// truncateRunes 按字符截断，不拆分多字节字符
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
