package model

// 全站计数键
const (
	KeyTopicCount   = "topic_count"
	KeyCommentCount = "comment_count"
	KeyUserCount    = "user_count"
)

// Setting 全站配置/计数，计数类以整数存储
type Setting struct {
	SKey   string `gorm:"column:skey;primaryKey;size:64" json:"skey"`
	SValue int64  `gorm:"column:svalue;default:0" json:"svalue"`
}

func (Setting) TableName() string {
	return "t_settings"
}
