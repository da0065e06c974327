package main

import (
	_ "community_bbs/docs"
	_ "community_bbs/internal/domain/comment"
	_ "community_bbs/internal/domain/node"
	_ "community_bbs/internal/domain/notice"
	_ "community_bbs/internal/domain/settings"
	_ "community_bbs/internal/domain/topic"
	_ "community_bbs/internal/domain/topiccount"
	_ "community_bbs/internal/domain/user"
	"community_bbs/internal/pkg/config"
	"community_bbs/internal/pkg/middleware"
	"community_bbs/internal/pkg/push"
	"community_bbs/internal/pkg/registry"
	"community_bbs/internal/pkg/textkit"
	"community_bbs/pkg/cache"
	"community_bbs/pkg/database"
	"community_bbs/pkg/logger"
	"community_bbs/pkg/metrics"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title			Community BBS API
// @version		1.0
// @description	帖子、评论、热度排行接口
// @BasePath		/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	config.LoadConfig()
	cfg := &config.GlobalConfig

	zl, err := logger.InitLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.InitDatabase(cfg.Database, zl)
	if err != nil {
		zl.Fatal("init database", zap.Error(err))
	}

	ctx := &registry.ModuleContext{
		DB:      db,
		Config:  cfg,
		Log:     zl,
		Metrics: metrics.NewMetricsCollector(),
	}

	switch cfg.Cache.Driver {
	case "memory":
		ctx.Cache = cache.NewMemoryCache()
	default:
		rdb, err := database.InitRedis(cfg.Redis)
		if err != nil {
			zl.Fatal("init redis", zap.Error(err))
		}
		ctx.Redis = rdb
		ctx.Cache = cache.NewRedisCache(rdb, cfg.Cache.KeyPrefix)
		ctx.OnClose(func() { _ = rdb.Close() })
	}

	if ctx.Services.Text, err = textkit.NewFromConfig(cfg.OSS, zl); err != nil {
		zl.Fatal("init textkit", zap.Error(err))
	}

	// 推送可选，未配置时通知只落库
	pusher, err := push.NewAliyunPushService(cfg.Push)
	switch {
	case err == nil:
		ctx.Services.Push = pusher
	case errors.Is(err, push.ErrNotConfigured):
		zl.Info("push disabled")
	default:
		zl.Fatal("init push", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(
		middleware.TraceMiddleware(),
		middleware.LoggerMiddleware(),
		gin.Recovery(),
		cors.Default(),
		middleware.RateLimitMiddleware(cfg.RateLimit),
		middleware.MetricsMiddleware(ctx.Metrics),
	)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(ctx.Metrics.Handler()))
	if cfg.App.Debug {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	ctx.Router = r

	if err := registry.InitModules(ctx); err != nil {
		zl.Fatal("init modules", zap.Error(err))
	}

	stopRefresh := startWeightRefresher(ctx, cfg.Topic.RefreshInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}
	go func() {
		zl.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server...")

	stopRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}

	// 等待通知队列清空
	ctx.Close()
	zl.Info("server exited")
}

// startWeightRefresher 定时重算所有帖子热度，返回的函数停止定时任务并等待当前一轮结束
func startWeightRefresher(ctx *registry.ModuleContext, interval time.Duration) func() {
	if interval <= 0 || ctx.Services.Topics == nil {
		return func() {}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if err := ctx.Services.Topics.RefreshAllWeights(runCtx); err != nil {
					ctx.Log.Warn("scheduled weight refresh failed", zap.Error(err))
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
