package handler

import (
	"community_bbs/internal/domain/user/service"
	"community_bbs/pkg/response"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser 获取单个用户
// @Summary 获取用户
// @Tags User
// @Param uid path int true "用户ID"
// @Success 200 {object} model.User
// @Router /users/{uid} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	uid, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil || uid <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid uid")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "user not found")
		return
	}
	response.Success(c, user)
}
