package model

// 计数类型，同时也是 t_topiccount 的列名
const (
	KindViews     = "views"
	KindLoves     = "loves"
	KindFavorites = "favorites"
	KindComments  = "comments"
	KindSinks     = "sinks"
)

// TopicCount 帖子计数，与 Topic 一对一
type TopicCount struct {
	TID        int64 `gorm:"column:tid;primaryKey;autoIncrement:false" json:"tid"`
	Views      int64 `gorm:"column:views;not null;default:0" json:"views"`
	Loves      int64 `gorm:"column:loves;not null;default:0" json:"loves"`
	Favorites  int64 `gorm:"column:favorites;not null;default:0" json:"favorites"`
	Comments   int64 `gorm:"column:comments;not null;default:0" json:"comments"`
	Sinks      int64 `gorm:"column:sinks;not null;default:0" json:"sinks"`
	CreateTime int64 `gorm:"column:create_time" json:"create_time"`
}

func (TopicCount) TableName() string {
	return "t_topiccount"
}

// ValidKind 是否为可累加的计数列
func ValidKind(kind string) bool {
	switch kind {
	case KindViews, KindLoves, KindFavorites, KindComments, KindSinks:
		return true
	}
	return false
}
