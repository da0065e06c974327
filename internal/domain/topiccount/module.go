package topiccount

import (
	"community_bbs/internal/domain/topiccount/repository"
	"community_bbs/internal/domain/topiccount/service"
	"community_bbs/internal/pkg/registry"
)

// TopicCountModule 帖子计数模块，只提供服务，不注册路由
type TopicCountModule struct{}

func init() {
	registry.Register(&TopicCountModule{})
}

func (m *TopicCountModule) Name() string {
	return "topiccount"
}

func (m *TopicCountModule) Priority() int {
	return 6
}

func (m *TopicCountModule) Init(ctx *registry.ModuleContext) error {
	ctx.Services.Counters = service.NewCountService(repository.NewTopicCountRepository(ctx.DB))
	return nil
}
