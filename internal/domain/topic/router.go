package topic

import (
	"community_bbs/internal/domain/topic/handler"
	countModel "community_bbs/internal/domain/topiccount/model"
	"community_bbs/internal/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// setupRoutes 设置帖子模块路由
func setupRoutes(r *gin.Engine, h *handler.TopicHandler) {
	topics := r.Group("/topics")
	{
		topics.GET("/hot", h.HotTopics)
		topics.GET("/recent", h.RecentTopics)
		topics.GET("/:tid", h.GetTopic)
	}

	authed := r.Group("/topics", middleware.AuthMiddleware())
	{
		authed.POST("", h.CreateTopic)
		authed.PUT("/:tid", h.EditTopic)
		authed.POST("/:tid/comments", h.CommentTopic)
		authed.POST("/:tid/love", h.Interact(countModel.KindLoves))
		authed.POST("/:tid/favorite", h.Interact(countModel.KindFavorites))
		authed.POST("/:tid/sink", h.Interact(countModel.KindSinks))
	}

	admin := r.Group("", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.DELETE("/topics/:tid", h.DeleteTopic)
		admin.PUT("/topics/:tid/essence", h.SetEssence)
		admin.POST("/admin/topics/refresh-weights", h.RefreshWeights)
	}

	r.GET("/users/:uid/topics/stats", h.UserStats)
}
