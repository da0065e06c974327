package notice

import (
	"community_bbs/internal/domain/notice/handler"
	"community_bbs/internal/domain/notice/repository"
	"community_bbs/internal/domain/notice/service"
	"community_bbs/internal/pkg/middleware"
	"community_bbs/internal/pkg/registry"
)

// NoticeModule 通知模块
type NoticeModule struct{}

func init() {
	registry.Register(&NoticeModule{})
}

func (m *NoticeModule) Name() string {
	return "notice"
}

func (m *NoticeModule) Priority() int {
	return 4
}

func (m *NoticeModule) Init(ctx *registry.ModuleContext) error {
	store := service.NewNoticeService(repository.NewNoticeRepository(ctx.DB), ctx.Services.Push, ctx.Log)

	async := service.NewAsyncNoticeService(store, ctx.Config.Topic.NoticeWorkers, ctx.Config.Topic.NoticeQueueSize, ctx.Log)
	async.Start()
	ctx.OnClose(async.Stop)
	ctx.Services.Notices = async

	h := handler.NewNoticeHandler(async)
	ctx.Router.GET("/notices", middleware.AuthMiddleware(), h.ListNotices)
	return nil
}
