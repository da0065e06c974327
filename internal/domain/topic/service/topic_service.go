package service

import (
	noticeModel "community_bbs/internal/domain/notice/model"
	nodeModel "community_bbs/internal/domain/node/model"
	settingsModel "community_bbs/internal/domain/settings/model"
	"community_bbs/internal/domain/topic/model"
	"community_bbs/internal/domain/topic/repository"
	countModel "community_bbs/internal/domain/topiccount/model"
	"community_bbs/pkg/apperrors"
	"community_bbs/pkg/metrics"
	"community_bbs/pkg/utils"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deleteCountDelta 删除帖子时节点/全站帖子数的变化量。
// 与发帖相同为 +1，沿用既有行为，待产品确认是否应为 -1。
const deleteCountDelta = 1

// ErrRefreshInProgress 已有全量刷新在执行
var ErrRefreshInProgress = apperrors.Conflict("weight refresh already running")

type TopicService interface {
	Create(ctx context.Context, topic *model.Topic) (int64, error)
	Get(ctx context.Context, tid int64) (*model.Topic, error)
	Delete(ctx context.Context, tid int64) error
	Comment(ctx context.Context, uid, toUID, tid int64, content, userAgent string) bool
	Edit(ctx context.Context, tid, nid int64, title, content string) (int64, bool)
	RefreshAllWeights(ctx context.Context) error
	UpdateWeight(ctx context.Context, tid int64) error
	SetEssence(ctx context.Context, tid int64, essence int)
	Interact(ctx context.Context, kind string, tid int64) error
	CountByUser(ctx context.Context, uid int64) (int64, error)
	LastCreateTime(ctx context.Context, uid int64) (int64, bool, error)
	LastUpdateTime(ctx context.Context, uid int64) (int64, bool, error)

	ToDisplay(ctx context.Context, topic *model.Topic, includeBody bool) (*model.TopicDisplay, error)
	ToDisplayPage(ctx context.Context, page utils.PageResult[model.Topic]) (utils.PageResult[model.TopicDisplay], error)
	HotTopics(ctx context.Context, nid int64, page, pageSize int) (utils.PageResult[model.TopicDisplay], error)
	RecentTopics(ctx context.Context, nid int64, page, pageSize int) (utils.PageResult[model.TopicDisplay], error)
}

// Deps 帖子服务的依赖，Metrics 可为空
type Deps struct {
	Repo     repository.TopicRepository
	Users    UserLookup
	Nodes    NodeService
	Comments CommentService
	Notices  NoticeService
	Settings SettingsService
	Counters CounterService
	Text     TextKit
	Weight   *WeightCalculator
	Metrics  *metrics.MetricsCollector
	Log      *zap.Logger
	PageSize int
}

type topicService struct {
	repo     repository.TopicRepository
	users    UserLookup
	nodes    NodeService
	comments CommentService
	notices  NoticeService
	settings SettingsService
	counters CounterService
	text     TextKit
	weight   *WeightCalculator
	metrics  *metrics.MetricsCollector
	log      *zap.Logger
	pageSize int

	refreshMu sync.Mutex
}

func NewTopicService(d Deps) TopicService {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &topicService{
		repo:     d.Repo,
		users:    d.Users,
		nodes:    d.Nodes,
		comments: d.Comments,
		notices:  d.Notices,
		settings: d.Settings,
		counters: d.Counters,
		text:     d.Text,
		weight:   d.Weight,
		metrics:  d.Metrics,
		log:      log,
		pageSize: d.PageSize,
	}
}

var interactionKinds = map[string]bool{
	countModel.KindViews:     true,
	countModel.KindLoves:     true,
	countModel.KindFavorites: true,
	countModel.KindSinks:     true,
}

// notBlank 仅含空白字符视为空
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

func validateDraft(t *model.Topic) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Title, validation.Required, notBlank, validation.RuneLength(1, 128)),
		validation.Field(&t.Content, validation.Required, notBlank),
		validation.Field(&t.UID, validation.Required, validation.Min(int64(1))),
		validation.Field(&t.NID, validation.Required, validation.Min(int64(1))),
	)
}

// Create 发帖。任一存储步骤失败即中止，已完成的步骤不回滚；
// 返回非 0 的 tid 表示帖子本身已写入
func (s *topicService) Create(ctx context.Context, topic *model.Topic) (tid int64, err error) {
	defer func() { s.observe("create", err) }()

	if topic == nil {
		return 0, apperrors.Validation("topic draft is required")
	}
	topic.Title = strings.TrimSpace(topic.Title)
	if err := validateDraft(topic); err != nil {
		return 0, apperrors.ValidationWrap("invalid topic draft", err)
	}

	now := s.weight.Now()
	topic.TID = 0
	topic.Stamp(now)
	topic.Status = model.StatusActive
	topic.Weight = 0

	if err := s.repo.Create(ctx, topic); err != nil {
		return 0, apperrors.Persistence("create topic", err)
	}
	tid = topic.TID

	if err := s.counters.Save(ctx, tid, now); err != nil {
		return tid, apperrors.Persistence("init topic count", err)
	}
	if err := s.UpdateWeight(ctx, tid); err != nil {
		return tid, err
	}
	if err := s.nodes.UpdateCount(ctx, topic.NID, nodeModel.CountTopics, 1); err != nil {
		return tid, apperrors.Persistence("update node topic count", err)
	}
	if err := s.settings.UpdateCount(ctx, settingsModel.KeyTopicCount, 1); err != nil {
		return tid, apperrors.Persistence("update site topic count", err)
	}

	s.notifyMentions(ctx, topic.Content, topic.UID, noticeModel.KindTopicAt, tid)

	s.log.Info("topic created", zap.Int64("tid", tid), zap.Int64("uid", topic.UID), zap.Int64("nid", topic.NID))
	return tid, nil
}

// Get 帖子不存在时返回 (nil, nil)，已删除的帖子照常返回
func (s *topicService) Get(ctx context.Context, tid int64) (*model.Topic, error) {
	if tid <= 0 {
		return nil, apperrors.Validation("tid is required")
	}
	topic, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		return nil, apperrors.Persistence("load topic", err)
	}
	return topic, nil
}

// Delete 逻辑删除，只修改状态
func (s *topicService) Delete(ctx context.Context, tid int64) (err error) {
	defer func() { s.observe("delete", err) }()

	if tid <= 0 {
		return apperrors.Validation("tid is required")
	}
	topic, err := s.repo.GetByID(ctx, tid)
	if err != nil {
		return apperrors.Persistence("load topic", err)
	}
	if topic == nil {
		return apperrors.NotFound("topic not found")
	}
	if topic.Status == model.StatusDeleted {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, tid, model.StatusDeleted); err != nil {
		return apperrors.Persistence("delete topic", err)
	}
	if err := s.nodes.UpdateCount(ctx, topic.NID, nodeModel.CountTopics, deleteCountDelta); err != nil {
		return apperrors.Persistence("update node topic count", err)
	}
	if err := s.settings.UpdateCount(ctx, settingsModel.KeyTopicCount, deleteCountDelta); err != nil {
		return apperrors.Persistence("update site topic count", err)
	}

	s.log.Info("topic deleted", zap.Int64("tid", tid))
	return nil
}

// Comment 发表评论，评论或计数写入失败时返回 false，其余失败只记录日志
func (s *topicService) Comment(ctx context.Context, uid, toUID, tid int64, content, userAgent string) (ok bool) {
	defer func() { s.observeBool("comment", ok) }()

	err := validation.Errors{
		"uid":     validation.Validate(uid, validation.Required),
		"to_uid":  validation.Validate(toUID, validation.Required),
		"tid":     validation.Validate(tid, validation.Required),
		"content": validation.Validate(content, validation.Required, notBlank),
	}.Filter()
	if err != nil {
		s.log.Warn("invalid comment", zap.Int64("tid", tid), zap.Int64("uid", uid), zap.Error(err))
		return false
	}

	cid, err := s.comments.Save(ctx, uid, toUID, tid, content, userAgent)
	if err != nil {
		s.log.Error("save comment failed", zap.Int64("tid", tid), zap.Int64("uid", uid), zap.Error(err))
		return false
	}
	if err := s.counters.Update(ctx, countModel.KindComments, tid, 1); err != nil {
		s.log.Error("update comment count failed", zap.Int64("tid", tid), zap.Int64("cid", cid), zap.Error(err))
		return false
	}
	// 计数已 +1，之后的步骤失败只记录日志，评论视为成功
	if err := s.UpdateWeight(ctx, tid); err != nil {
		s.log.Error("update weight after comment failed", zap.Int64("tid", tid), zap.Error(err))
	}

	if uid != toUID {
		if err := s.notices.Save(ctx, noticeModel.KindComment, toUID, tid); err != nil {
			s.log.Warn("save comment notice failed", zap.Int64("tid", tid), zap.Int64("to_uid", toUID), zap.Error(err))
		}
		s.notifyMentions(ctx, content, uid, noticeModel.KindCommentAt, cid)

		if err := s.settings.UpdateCount(ctx, settingsModel.KeyCommentCount, 1); err != nil {
			s.log.Error("update site comment count failed", zap.Int64("cid", cid), zap.Error(err))
		}
	}
	return true
}

// Edit 修改节点、标题和内容，失败返回 (0, false)
func (s *topicService) Edit(ctx context.Context, tid, nid int64, title, content string) (_ int64, ok bool) {
	defer func() { s.observeBool("edit", ok) }()

	title = strings.TrimSpace(title)
	err := validation.Errors{
		"tid":     validation.Validate(tid, validation.Required),
		"nid":     validation.Validate(nid, validation.Required),
		"title":   validation.Validate(title, validation.Required, validation.RuneLength(1, 128)),
		"content": validation.Validate(content, validation.Required, notBlank),
	}.Filter()
	if err != nil {
		s.log.Warn("invalid topic edit", zap.Int64("tid", tid), zap.Error(err))
		return 0, false
	}

	if err := s.repo.UpdateContent(ctx, tid, nid, title, content, s.weight.Now()); err != nil {
		s.log.Error("edit topic failed", zap.Int64("tid", tid), zap.Error(err))
		return 0, false
	}
	return tid, true
}

// RefreshAllWeights 重新计算所有正常帖子的权重，遇到第一个错误即返回。
// 同一时刻只允许一次刷新，重入时返回 ErrRefreshInProgress
func (s *topicService) RefreshAllWeights(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		s.metrics.RecordWeightRefresh("conflict", 0, 0)
		return ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	start := time.Now()
	updated, err := s.refreshAll(ctx)
	if err != nil {
		s.metrics.RecordWeightRefresh("failed", updated, time.Since(start))
		s.log.Error("weight refresh aborted", zap.Int("updated", updated), zap.Error(err))
		return err
	}

	s.metrics.RecordWeightRefresh("ok", updated, time.Since(start))
	s.log.Info("weight refresh finished", zap.Int("updated", updated), zap.Duration("cost", time.Since(start)))
	return nil
}

func (s *topicService) refreshAll(ctx context.Context) (int, error) {
	ids, err := s.repo.ListActiveIDs(ctx)
	if err != nil {
		return 0, apperrors.Persistence("list active topics", err)
	}
	for i, tid := range ids {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := s.UpdateWeight(ctx, tid); err != nil {
			return i, err
		}
	}
	return len(ids), nil
}

// UpdateWeight 按当前计数重新计算权重；计数行缺失时按 0 计，时间取帖子创建时间
func (s *topicService) UpdateWeight(ctx context.Context, tid int64) error {
	if tid <= 0 {
		return apperrors.Validation("tid is required")
	}

	count, err := s.counters.GetCount(ctx, tid)
	if err != nil {
		return apperrors.Persistence("load topic count", err)
	}

	var loves, favorites, comments, sinks, createTime int64
	if count != nil {
		loves, favorites, comments, sinks = count.Loves, count.Favorites, count.Comments, count.Sinks
		createTime = count.CreateTime
	} else {
		topic, err := s.repo.GetByID(ctx, tid)
		if err != nil {
			return apperrors.Persistence("load topic", err)
		}
		if topic == nil {
			return apperrors.NotFound("topic not found")
		}
		createTime = topic.CreateTime
	}

	weight := s.weight.Compute(loves, favorites, comments, sinks, createTime)
	if err := s.repo.UpdateWeight(ctx, tid, weight); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("topic not found")
		}
		return apperrors.Persistence("update weight", err)
	}
	return nil
}

// SetEssence 设置精华标记，失败只记录日志
func (s *topicService) SetEssence(ctx context.Context, tid int64, essence int) {
	if tid <= 0 {
		s.log.Warn("set essence without tid")
		return
	}
	if err := s.repo.UpdateEssence(ctx, tid, essence); err != nil {
		s.log.Error("set essence failed", zap.Int64("tid", tid), zap.Int("essence", essence), zap.Error(err))
	}
}

// Interact 浏览/喜欢/收藏/踩，计数 +1，浏览以外的操作同时刷新权重
func (s *topicService) Interact(ctx context.Context, kind string, tid int64) (err error) {
	defer func() { s.observe(kind, err) }()

	if !interactionKinds[kind] {
		return apperrors.Validation("unsupported interaction " + kind)
	}
	if tid <= 0 {
		return apperrors.Validation("tid is required")
	}

	if err := s.counters.Update(ctx, kind, tid, 1); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("topic not found")
		}
		return apperrors.Persistence("update "+kind, err)
	}
	if kind == countModel.KindViews {
		return nil
	}
	return s.UpdateWeight(ctx, tid)
}

func (s *topicService) CountByUser(ctx context.Context, uid int64) (int64, error) {
	if uid <= 0 {
		return 0, nil
	}
	count, err := s.repo.CountActiveByUser(ctx, uid)
	if err != nil {
		return 0, apperrors.Persistence("count user topics", err)
	}
	return count, nil
}

// LastCreateTime 用户最近一次发帖时间，没有帖子时 ok 为 false
func (s *topicService) LastCreateTime(ctx context.Context, uid int64) (int64, bool, error) {
	topic, err := s.lastTopic(ctx, uid)
	if err != nil || topic == nil {
		return 0, false, err
	}
	return topic.CreateTime, true, nil
}

// LastUpdateTime 取用户最近创建的帖子的更新时间
func (s *topicService) LastUpdateTime(ctx context.Context, uid int64) (int64, bool, error) {
	topic, err := s.lastTopic(ctx, uid)
	if err != nil || topic == nil {
		return 0, false, err
	}
	return topic.UpdateTime, true, nil
}

func (s *topicService) lastTopic(ctx context.Context, uid int64) (*model.Topic, error) {
	if uid <= 0 {
		return nil, nil
	}
	topic, err := s.repo.LastByUser(ctx, uid)
	if err != nil {
		return nil, apperrors.Persistence("load last topic", err)
	}
	return topic, nil
}

// notifyMentions 给被 @ 的用户发通知，跳过不存在的用户和 exclude 本人
func (s *topicService) notifyMentions(ctx context.Context, content string, exclude int64, kind string, eventID int64) {
	for _, name := range s.text.ExtractMentions(content) {
		user, err := s.users.GetUserByLoginName(ctx, name)
		if err != nil {
			s.log.Warn("lookup mentioned user failed", zap.String("login_name", name), zap.Error(err))
			continue
		}
		if user == nil || user.UID == exclude {
			continue
		}
		if err := s.notices.Save(ctx, kind, user.UID, eventID); err != nil {
			s.log.Warn("save mention notice failed", zap.String("kind", kind), zap.Int64("to_uid", user.UID), zap.Error(err))
		}
	}
}

func (s *topicService) observe(op string, err error) {
	switch {
	case err == nil:
		s.metrics.RecordTopicOp(op, "ok")
	case apperrors.KindOf(err) == apperrors.KindPersistence || apperrors.KindOf(err) == "":
		s.metrics.RecordTopicOp(op, "failed")
	default:
		s.metrics.RecordTopicOp(op, "rejected")
	}
}

func (s *topicService) observeBool(op string, ok bool) {
	if ok {
		s.metrics.RecordTopicOp(op, "ok")
		return
	}
	s.metrics.RecordTopicOp(op, "failed")
}
