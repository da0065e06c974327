package handler

import (
	"community_bbs/internal/domain/comment/model"
	"community_bbs/internal/domain/comment/service"
	"community_bbs/pkg/response"
	"community_bbs/pkg/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListComments 帖子评论列表
// @Summary 评论列表
// @Tags Comment
// @Param tid path int true "帖子ID"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} utils.PageResult[model.Comment]
// @Router /topics/{tid}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	tid, err := strconv.ParseInt(c.Param("tid"), 10, 64)
	if err != nil || tid <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid tid")
		return
	}

	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.Normalize(utils.DefaultPageSize)

	comments, total, err := h.service.ListByTopic(c.Request.Context(), tid, p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
		return
	}
	response.Success(c, utils.PageResult[model.Comment]{List: comments, Total: total, Page: p.Page, Limit: p.Limit})
}
