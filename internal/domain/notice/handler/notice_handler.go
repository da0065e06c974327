package handler

import (
	"community_bbs/internal/domain/notice/model"
	"community_bbs/internal/domain/notice/service"
	"community_bbs/internal/pkg/middleware"
	"community_bbs/pkg/response"
	"community_bbs/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	service service.NoticeService
}

func NewNoticeHandler(service service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// ListNotices 当前用户的通知
// @Summary 我的通知
// @Tags Notice
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} utils.PageResult[model.Notice]
// @Router /notices [get]
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	uid, ok := middleware.CurrentUID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "login required")
		return
	}

	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.Normalize(utils.DefaultPageSize)

	notices, total, err := h.service.GetNotices(c.Request.Context(), uid, p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
		return
	}
	response.Success(c, utils.PageResult[model.Notice]{List: notices, Total: total, Page: p.Page, Limit: p.Limit})
}
