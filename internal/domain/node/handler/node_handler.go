package handler

import (
	"community_bbs/internal/domain/node/service"
	"community_bbs/pkg/response"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NodeHandler struct {
	service service.NodeService
}

func NewNodeHandler(s service.NodeService) *NodeHandler {
	return &NodeHandler{service: s}
}

// GetNode 获取节点
// @Summary 获取节点信息
// @Tags Node
// @Param nid path int true "节点ID"
// @Success 200 {object} model.Node
// @Router /nodes/{nid} [get]
func (h *NodeHandler) GetNode(c *gin.Context) {
	nid, err := strconv.ParseInt(c.Param("nid"), 10, 64)
	if err != nil || nid <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid nid")
		return
	}

	node, err := h.service.GetNode(c.Request.Context(), nid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
		return
	}
	if node == nil {
		response.Error(c, http.StatusNotFound, response.ErrInvalidParam, "node not found")
		return
	}
	response.Success(c, node)
}
