package user

import (
	"community_bbs/internal/domain/user/handler"
	"community_bbs/internal/domain/user/repository"
	"community_bbs/internal/domain/user/service"
	"community_bbs/internal/pkg/registry"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，因为其他模块依赖它
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	userRepo := repository.NewUserRepository(ctx.DB)
	userService := service.NewCachedUserService(
		service.NewUserService(userRepo),
		ctx.Cache,
		ctx.Config.Cache.UserTTL,
		ctx.Log,
	)
	ctx.Services.Users = userService

	setupRoutes(ctx.Router, handler.NewUserHandler(userService))
	return nil
}
