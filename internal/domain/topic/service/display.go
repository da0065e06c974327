package service

import (
	"community_bbs/internal/domain/topic/model"
	"community_bbs/internal/pkg/textkit"
	"community_bbs/pkg/apperrors"
	"community_bbs/pkg/utils"
	"context"

	"go.uber.org/zap"
)

// ToDisplay 组装展示数据；作者或节点不存在时返回 (nil, nil)，不渲染该帖
func (s *topicService) ToDisplay(ctx context.Context, topic *model.Topic, includeBody bool) (*model.TopicDisplay, error) {
	if topic == nil {
		return nil, nil
	}

	author, err := s.users.GetUser(ctx, topic.UID)
	if err != nil {
		return nil, apperrors.Persistence("load topic author", err)
	}
	if author == nil {
		return nil, nil
	}
	node, err := s.nodes.GetNode(ctx, topic.NID)
	if err != nil {
		return nil, apperrors.Persistence("load topic node", err)
	}
	if node == nil {
		return nil, nil
	}

	display := &model.TopicDisplay{
		TID:        topic.TID,
		Title:      topic.Title,
		IsEssence:  topic.IsEssence,
		CreateTime: topic.CreateTime,
		UpdateTime: topic.UpdateTime,
		UserName:   author.LoginName,
		Avatar:     s.text.AvatarURL(author.Avatar, textkit.ImageSmall),
		NodeName:   node.Title,
		NodeSlug:   node.Slug,
	}

	count, err := s.counters.GetCount(ctx, topic.TID)
	if err != nil {
		return nil, apperrors.Persistence("load topic count", err)
	}
	if count != nil {
		display.Views = count.Views
		display.Loves = count.Loves
		display.Favorites = count.Favorites
		display.Comments = count.Comments
	}

	if display.Comments > 0 {
		display.ReplyName = s.replyName(ctx, topic.TID)
	}
	if includeBody {
		display.Content = s.text.RenderContent(topic.Content)
	}
	return display, nil
}

// replyName 最后回复人，评论或用户缺失时为空
func (s *topicService) replyName(ctx context.Context, tid int64) string {
	comment, err := s.comments.LastCommentOf(ctx, tid)
	if err != nil {
		s.log.Warn("load last comment failed", zap.Int64("tid", tid), zap.Error(err))
		return ""
	}
	if comment == nil {
		return ""
	}

	user, err := s.users.GetUser(ctx, comment.UID)
	if err != nil {
		s.log.Warn("load reply user failed", zap.Int64("tid", tid), zap.Int64("uid", comment.UID), zap.Error(err))
		return ""
	}
	if user == nil {
		return ""
	}
	return user.LoginName
}

// ToDisplayPage 逐条转换，无法展示的帖子直接丢弃，Total 保持原值
func (s *topicService) ToDisplayPage(ctx context.Context, page utils.PageResult[model.Topic]) (utils.PageResult[model.TopicDisplay], error) {
	out := utils.PageResult[model.TopicDisplay]{
		List:  make([]model.TopicDisplay, 0, len(page.List)),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	}
	for i := range page.List {
		display, err := s.ToDisplay(ctx, &page.List[i], false)
		if err != nil {
			return utils.PageResult[model.TopicDisplay]{}, err
		}
		if display != nil {
			out.List = append(out.List, *display)
		}
	}
	return out, nil
}

// HotTopics 按权重倒序
func (s *topicService) HotTopics(ctx context.Context, nid int64, page, pageSize int) (utils.PageResult[model.TopicDisplay], error) {
	return s.list(ctx, model.OrderHot, nid, page, pageSize)
}

// RecentTopics 按发布时间倒序
func (s *topicService) RecentTopics(ctx context.Context, nid int64, page, pageSize int) (utils.PageResult[model.TopicDisplay], error) {
	return s.list(ctx, model.OrderRecent, nid, page, pageSize)
}

func (s *topicService) list(ctx context.Context, order string, nid int64, page, pageSize int) (utils.PageResult[model.TopicDisplay], error) {
	p := utils.Pagination{Page: page, Limit: pageSize}
	p.Normalize(s.pageSize)

	topics, total, err := s.repo.List(ctx, model.ListQuery{
		NID:    nid,
		Order:  order,
		Offset: (p.Page - 1) * p.Limit,
		Limit:  p.Limit,
	})
	if err != nil {
		return utils.PageResult[model.TopicDisplay]{}, apperrors.Persistence("list topics", err)
	}

	return s.ToDisplayPage(ctx, utils.PageResult[model.Topic]{List: topics, Total: total, Page: p.Page, Limit: p.Limit})
}
