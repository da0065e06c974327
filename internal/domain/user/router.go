package user

import (
	"community_bbs/internal/domain/user/handler"

	"github.com/gin-gonic/gin"
)

// setupRoutes 设置用户模块路由
func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	r.GET("/users/:uid", h.GetUser)
}
