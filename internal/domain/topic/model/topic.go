package model

import baseModel "community_bbs/pkg/model"

// 帖子状态
const (
	StatusActive  = 1
	StatusDeleted = 2
)

// Topic 帖子
type Topic struct {
	TID       int64   `gorm:"column:tid;primaryKey;autoIncrement" json:"tid"`
	UID       int64   `gorm:"column:uid;index" json:"uid"`
	NID       int64   `gorm:"column:nid;index" json:"nid"`
	Title     string  `gorm:"column:title;size:128" json:"title"`
	Content   string  `gorm:"column:content;type:text" json:"content"`
	Status    int     `gorm:"column:status;default:1" json:"status"`
	IsEssence int     `gorm:"column:is_essence;default:0" json:"is_essence"`
	Weight    float64 `gorm:"column:weight;default:0" json:"weight"`
	baseModel.Timestamps
}

func (Topic) TableName() string {
	return "t_topic"
}

// TopicDisplay 列表/详情页展示用的帖子
type TopicDisplay struct {
	TID        int64  `json:"tid"`
	Views      int64  `json:"views"`
	Loves      int64  `json:"loves"`
	Favorites  int64  `json:"favorites"`
	Comments   int64  `json:"comments"`
	Title      string `json:"title"`
	IsEssence  int    `json:"is_essence"`
	CreateTime int64  `json:"create_time"`
	UpdateTime int64  `json:"update_time"`
	UserName   string `json:"user_name"`
	Avatar     string `json:"avatar"`
	NodeName   string `json:"node_name"`
	NodeSlug   string `json:"node_slug"`
	ReplyName  string `json:"reply_name,omitempty"`
	Content    string `json:"content,omitempty"`
}

// 列表排序方式
const (
	OrderHot    = "hot"
	OrderRecent = "recent"
)

// ListQuery 帖子列表查询条件，NID 为 0 表示不限节点
type ListQuery struct {
	NID    int64
	Order  string
	Offset int
	Limit  int
}
