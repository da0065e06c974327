package model

// 通知类型
const (
	KindTopicAt   = "topic_at"   // 帖子中 @ 了用户
	KindComment   = "comment"    // 帖子收到新评论
	KindCommentAt = "comment_at" // 评论中 @ 了用户
)

// Notice 通知，EventID 按类型指向帖子或评论
type Notice struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Kind       string `gorm:"column:kind;size:32" json:"kind"`
	ToUID      int64  `gorm:"column:to_uid;index" json:"to_uid"`
	EventID    int64  `gorm:"column:event_id" json:"event_id"`
	IsRead     bool   `gorm:"column:is_read;default:false" json:"is_read"`
	CreateTime int64  `gorm:"column:create_time" json:"create_time"`
}

func (Notice) TableName() string {
	return "t_notice"
}

// ValidKind 是否为已知的通知类型
func ValidKind(kind string) bool {
	switch kind {
	case KindTopicAt, KindComment, KindCommentAt:
		return true
	}
	return false
}
