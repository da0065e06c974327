package handler

import (
	"community_bbs/internal/domain/settings/service"
	"community_bbs/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

// GetStats 全站统计
// @Summary 全站帖子/评论数
// @Tags Site
// @Success 200 {object} map[string]int64
// @Router /site/stats [get]
func (h *SettingsHandler) GetStats(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
		return
	}
	response.Success(c, counts)
}
