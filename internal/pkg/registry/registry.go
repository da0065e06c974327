package registry

import (
	commentService "community_bbs/internal/domain/comment/service"
	nodeService "community_bbs/internal/domain/node/service"
	noticeService "community_bbs/internal/domain/notice/service"
	settingsService "community_bbs/internal/domain/settings/service"
	topicService "community_bbs/internal/domain/topic/service"
	countService "community_bbs/internal/domain/topiccount/service"
	userService "community_bbs/internal/domain/user/service"
	"community_bbs/internal/pkg/config"
	"community_bbs/internal/pkg/push"
	"community_bbs/internal/pkg/textkit"
	"community_bbs/pkg/cache"
	"community_bbs/pkg/metrics"
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services 各模块初始化后对外暴露的服务，后初始化的模块通过它拿到依赖
type Services struct {
	Users    userService.UserService
	Nodes    nodeService.NodeService
	Settings settingsService.SettingsService
	Notices  noticeService.NoticeService
	Comments commentService.CommentService
	Counters countService.CountService
	Topics   topicService.TopicService

	Text *textkit.TextKit
	Push push.PushService
}

// ModuleContext 模块初始化所需的上下文
type ModuleContext struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Router  *gin.Engine
	Config  *config.Config
	Log     *zap.Logger
	Cache   cache.CacheService
	Metrics *metrics.MetricsCollector

	Services Services

	// Closers 退出时按注册的逆序调用
	Closers []func()
}

// OnClose 注册退出时的清理函数
func (ctx *ModuleContext) OnClose(fn func()) {
	ctx.Closers = append(ctx.Closers, fn)
}

// Close 逆序执行清理函数
func (ctx *ModuleContext) Close() {
	for i := len(ctx.Closers) - 1; i >= 0; i-- {
		ctx.Closers[i]()
	}
	ctx.Closers = nil
}

// Module 模块接口
type Module interface {
	// Name 返回模块名称
	Name() string

	// Init 初始化模块（依赖注入、路由注册等）
	Init(ctx *ModuleContext) error

	// Priority 返回初始化优先级（数字越小越先初始化）
	// 例如：topic 模块依赖 user/node/comment 等模块，必须排在它们之后
	Priority() int
}

// moduleRegistry 全局模块注册表
var moduleRegistry = make(map[string]Module)

// Register 注册模块
func Register(module Module) {
	moduleRegistry[module.Name()] = module
}

// GetModules 获取所有已注册的模块
func GetModules() map[string]Module {
	return moduleRegistry
}

// sortedModules 按优先级排序，优先级相同按名称
func sortedModules() []Module {
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}
	sort.SliceStable(modules, func(i, j int) bool {
		if modules[i].Priority() != modules[j].Priority() {
			return modules[i].Priority() < modules[j].Priority()
		}
		return modules[i].Name() < modules[j].Name()
	})
	return modules
}

// InitModules 按优先级初始化所有模块
func InitModules(ctx *ModuleContext) error {
	for _, module := range sortedModules() {
		if err := module.Init(ctx); err != nil {
			return fmt.Errorf("init module %s: %w", module.Name(), err)
		}
		if ctx.Log != nil {
			ctx.Log.Info("module initialized", zap.String("module", module.Name()), zap.Int("priority", module.Priority()))
		}
	}
	return nil
}
