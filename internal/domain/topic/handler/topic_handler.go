package handler

import (
	"community_bbs/internal/domain/topic/model"
	"community_bbs/internal/domain/topic/service"
	countModel "community_bbs/internal/domain/topiccount/model"
	userModel "community_bbs/internal/domain/user/model"
	"community_bbs/internal/pkg/middleware"
	"community_bbs/pkg/response"
	"community_bbs/pkg/utils"
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateTopicRequest struct {
	NID     int64  `json:"nid" binding:"required,gt=0"`
	Title   string `json:"title" binding:"required,max=128"`
	Content string `json:"content" binding:"required"`
}

type EditTopicRequest struct {
	NID     int64  `json:"nid" binding:"required,gt=0"`
	Title   string `json:"title" binding:"required,max=128"`
	Content string `json:"content" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type EssenceRequest struct {
	Essence *int `json:"essence" binding:"required,gte=0"`
}

type ListRequest struct {
	NID int64 `form:"nid" binding:"gte=0"`
	utils.Pagination
}

// UserTopicStats 用户发帖统计，没有帖子时时间字段为 null
type UserTopicStats struct {
	Count          int64  `json:"count"`
	LastCreateTime *int64 `json:"last_create_time"`
	LastUpdateTime *int64 `json:"last_update_time"`
}

// TopicHandler 帖子处理器
type TopicHandler struct {
	service service.TopicService
	log     *zap.Logger
}

func NewTopicHandler(service service.TopicService, log *zap.Logger) *TopicHandler {
	return &TopicHandler{service: service, log: log}
}

// HotTopics 热门帖子
// @Summary 热门帖子
// @Tags Topic
// @Param nid query int false "节点ID"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} utils.PageResult[model.TopicDisplay]
// @Router /topics/hot [get]
func (h *TopicHandler) HotTopics(c *gin.Context) {
	h.list(c, h.service.HotTopics)
}

// RecentTopics 最新帖子
// @Summary 最新帖子
// @Tags Topic
// @Param nid query int false "节点ID"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} utils.PageResult[model.TopicDisplay]
// @Router /topics/recent [get]
func (h *TopicHandler) RecentTopics(c *gin.Context) {
	h.list(c, h.service.RecentTopics)
}

type listFunc func(ctx context.Context, nid int64, page, pageSize int) (utils.PageResult[model.TopicDisplay], error)

func (h *TopicHandler) list(c *gin.Context, fn listFunc) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	page, err := fn(c.Request.Context(), req.NID, req.Page, req.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, page)
}

// GetTopic 帖子详情，浏览数 +1
// @Summary 帖子详情
// @Tags Topic
// @Param tid path int true "帖子ID"
// @Success 200 {object} model.TopicDisplay
// @Router /topics/{tid} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topic, ok := h.activeTopic(c)
	if !ok {
		return
	}

	if err := h.service.Interact(c.Request.Context(), countModel.KindViews, topic.TID); err != nil {
		h.log.Warn("count topic view failed", zap.Int64("tid", topic.TID), zap.Error(err))
	}

	display, err := h.service.ToDisplay(c.Request.Context(), topic, true)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if display == nil {
		response.Error(c, http.StatusNotFound, response.ErrTopicNotFound, "topic not found")
		return
	}
	response.Success(c, display)
}

// CreateTopic 发帖
// @Summary 发帖
// @Tags Topic
// @Security BearerAuth
// @Param request body CreateTopicRequest true "帖子"
// @Success 200 {object} response.Response
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	uid, ok := middleware.CurrentUID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "login required")
		return
	}

	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	tid, err := h.service.Create(c.Request.Context(), &model.Topic{
		UID:     uid,
		NID:     req.NID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"tid": tid})
}

// EditTopic 编辑帖子，仅作者或管理员
// @Summary 编辑帖子
// @Tags Topic
// @Security BearerAuth
// @Param tid path int true "帖子ID"
// @Param request body EditTopicRequest true "帖子"
// @Success 200 {object} response.Response
// @Router /topics/{tid} [put]
func (h *TopicHandler) EditTopic(c *gin.Context) {
	topic, ok := h.activeTopic(c)
	if !ok {
		return
	}
	if !canModify(c, topic) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "only the author can edit this topic")
		return
	}

	var req EditTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	tid, ok := h.service.Edit(c.Request.Context(), topic.TID, req.NID, req.Title, req.Content)
	if !ok {
		response.Fail(c, response.ErrTopicUpdateFailed, "update topic failed")
		return
	}
	response.Success(c, gin.H{"tid": tid})
}

// CommentTopic 评论帖子
// @Summary 评论帖子
// @Tags Topic
// @Security BearerAuth
// @Param tid path int true "帖子ID"
// @Param request body CommentRequest true "评论"
// @Success 200 {object} response.Response
// @Router /topics/{tid}/comments [post]
func (h *TopicHandler) CommentTopic(c *gin.Context) {
	uid, ok := middleware.CurrentUID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "login required")
		return
	}
	topic, ok := h.activeTopic(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if !h.service.Comment(c.Request.Context(), uid, topic.UID, topic.TID, req.Content, c.Request.UserAgent()) {
		response.Fail(c, response.ErrCommentFailed, "comment failed")
		return
	}
	response.Success(c, nil)
}

// Interact 喜欢/收藏/踩
// @Summary 喜欢、收藏或踩
// @Tags Topic
// @Security BearerAuth
// @Param tid path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /topics/{tid}/love [post]
// @Router /topics/{tid}/favorite [post]
// @Router /topics/{tid}/sink [post]
func (h *TopicHandler) Interact(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tid, ok := parseTID(c)
		if !ok {
			return
		}
		if err := h.service.Interact(c.Request.Context(), kind, tid); err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, nil)
	}
}

// DeleteTopic 删除帖子 (管理员)
// @Summary 删除帖子
// @Tags Admin
// @Security BearerAuth
// @Param tid path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /topics/{tid} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	tid, ok := parseTID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), tid); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// SetEssence 设置精华 (管理员)
// @Summary 设置精华
// @Tags Admin
// @Security BearerAuth
// @Param tid path int true "帖子ID"
// @Param request body EssenceRequest true "精华标记"
// @Success 200 {object} response.Response
// @Router /topics/{tid}/essence [put]
func (h *TopicHandler) SetEssence(c *gin.Context) {
	tid, ok := parseTID(c)
	if !ok {
		return
	}
	var req EssenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	h.service.SetEssence(c.Request.Context(), tid, *req.Essence)
	response.Success(c, nil)
}

// RefreshWeights 立即全量刷新权重 (管理员)
// @Summary 刷新帖子权重
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/topics/refresh-weights [post]
func (h *TopicHandler) RefreshWeights(c *gin.Context) {
	// 客户端断开不应中断刷新
	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.service.RefreshAllWeights(ctx); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// UserStats 用户发帖统计
// @Summary 用户发帖统计
// @Tags Topic
// @Param uid path int true "用户ID"
// @Success 200 {object} UserTopicStats
// @Router /users/{uid}/topics/stats [get]
func (h *TopicHandler) UserStats(c *gin.Context) {
	uid, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil || uid <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid uid")
		return
	}
	ctx := c.Request.Context()

	var stats UserTopicStats
	if stats.Count, err = h.service.CountByUser(ctx, uid); err != nil {
		response.FromError(c, err)
		return
	}
	created, ok, err := h.service.LastCreateTime(ctx, uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if ok {
		stats.LastCreateTime = &created
	}
	updated, ok, err := h.service.LastUpdateTime(ctx, uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if ok {
		stats.LastUpdateTime = &updated
	}
	response.Success(c, stats)
}

// activeTopic 读取路径中的帖子，不存在或已删除时直接写 404
func (h *TopicHandler) activeTopic(c *gin.Context) (*model.Topic, bool) {
	tid, ok := parseTID(c)
	if !ok {
		return nil, false
	}
	topic, err := h.service.Get(c.Request.Context(), tid)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if topic == nil || topic.Status != model.StatusActive {
		response.Error(c, http.StatusNotFound, response.ErrTopicNotFound, "topic not found")
		return nil, false
	}
	return topic, true
}

func parseTID(c *gin.Context) (int64, bool) {
	tid, err := strconv.ParseInt(c.Param("tid"), 10, 64)
	if err != nil || tid <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid tid")
		return 0, false
	}
	return tid, true
}

func canModify(c *gin.Context, topic *model.Topic) bool {
	uid, ok := middleware.CurrentUID(c)
	if !ok {
		return false
	}
	return uid == topic.UID || middleware.CurrentRole(c) == userModel.RoleAdmin
}
