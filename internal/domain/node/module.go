package node

import (
	"community_bbs/internal/domain/node/handler"
	"community_bbs/internal/domain/node/model"
	"community_bbs/internal/domain/node/repository"
	"community_bbs/internal/domain/node/service"
	"community_bbs/internal/pkg/registry"
	"community_bbs/pkg/cache"
)

// NodeModule 节点模块
type NodeModule struct{}

func init() {
	registry.Register(&NodeModule{})
}

func (m *NodeModule) Name() string {
	return "node"
}

func (m *NodeModule) Priority() int {
	return 2
}

func (m *NodeModule) Init(ctx *registry.ModuleContext) error {
	local := cache.NewLocalCache[int64, model.Node](ctx.Config.Cache.NodeSize, ctx.Config.Cache.NodeTTL)
	nodeService := service.NewNodeService(repository.NewNodeRepository(ctx.DB), local)
	ctx.Services.Nodes = nodeService

	h := handler.NewNodeHandler(nodeService)
	ctx.Router.GET("/nodes/:nid", h.GetNode)
	return nil
}
