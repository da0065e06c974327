package settings

import (
	"community_bbs/internal/domain/settings/handler"
	"community_bbs/internal/domain/settings/repository"
	"community_bbs/internal/domain/settings/service"
	"community_bbs/internal/pkg/registry"
)

// SettingsModule 全站配置与统计模块
type SettingsModule struct{}

func init() {
	registry.Register(&SettingsModule{})
}

func (m *SettingsModule) Name() string {
	return "settings"
}

func (m *SettingsModule) Priority() int {
	return 3
}

func (m *SettingsModule) Init(ctx *registry.ModuleContext) error {
	settingsService := service.NewSettingsService(repository.NewSettingsRepository(ctx.DB))
	ctx.Services.Settings = settingsService

	ctx.Router.GET("/site/stats", handler.NewSettingsHandler(settingsService).GetStats)
	return nil
}
