package topic

import (
	"community_bbs/internal/domain/topic/handler"
	"community_bbs/internal/domain/topic/repository"
	"community_bbs/internal/domain/topic/service"
	"community_bbs/internal/pkg/registry"
	"errors"
)

// TopicModule 帖子模块
type TopicModule struct{}

func init() {
	registry.Register(&TopicModule{})
}

func (m *TopicModule) Name() string {
	return "topic"
}

func (m *TopicModule) Priority() int {
	// 依赖 user/node/settings/notice/comment/topiccount
	return 10
}

func (m *TopicModule) Init(ctx *registry.ModuleContext) error {
	s := ctx.Services
	if s.Users == nil || s.Nodes == nil || s.Settings == nil || s.Notices == nil || s.Comments == nil || s.Counters == nil || s.Text == nil {
		return errors.New("topic module requires user, node, settings, notice, comment, topiccount services and textkit")
	}

	weight, err := service.NewWeightCalculatorFromConfig(ctx.Config.Topic.Weight)
	if err != nil {
		return err
	}

	topicService := service.NewTopicService(service.Deps{
		Repo:     repository.NewTopicRepository(ctx.DB),
		Users:    s.Users,
		Nodes:    s.Nodes,
		Comments: s.Comments,
		Notices:  s.Notices,
		Settings: s.Settings,
		Counters: s.Counters,
		Text:     s.Text,
		Weight:   weight,
		Metrics:  ctx.Metrics,
		Log:      ctx.Log,
		PageSize: ctx.Config.Topic.PageSize,
	})
	ctx.Services.Topics = topicService

	setupRoutes(ctx.Router, handler.NewTopicHandler(topicService, ctx.Log))
	return nil
}
