package middleware

import (
	"community_bbs/internal/domain/user/model"
	"community_bbs/pkg/response"
	"community_bbs/pkg/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUIDKey  = "uid"
	ctxRoleKey = "role"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authorization header is required")
			c.Abort()
			return
		}

		// 检查格式 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil || claims.UID <= 0 {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxUIDKey, claims.UID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// AdminMiddleware 管理员权限中间件，需挂在 AuthMiddleware 之后
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUID(c); !ok {
			response.Error(c, http.StatusUnauthorized, response.ErrNoPermission, "Unauthorized")
			c.Abort()
			return
		}

		if CurrentRole(c) != model.RoleAdmin {
			response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Admin permission required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUID 取出当前登录用户
func CurrentUID(c *gin.Context) (int64, bool) {
	uid := c.GetInt64(ctxUIDKey)
	return uid, uid > 0
}

// CurrentRole 当前登录用户的角色，未登录时为 0
func CurrentRole(c *gin.Context) int {
	return c.GetInt(ctxRoleKey)
}
