package model

// Comment 帖子评论
type Comment struct {
	CID        int64  `gorm:"column:cid;primaryKey;autoIncrement" json:"cid"`
	UID        int64  `gorm:"column:uid;index" json:"uid"`
	ToUID      int64  `gorm:"column:to_uid" json:"to_uid"`
	TID        int64  `gorm:"column:tid;index" json:"tid"`
	Content    string `gorm:"column:content;type:text" json:"content"`
	UserAgent  string `gorm:"column:user_agent;size:255" json:"-"`
	CreateTime int64  `gorm:"column:create_time" json:"create_time"`
}

func (Comment) TableName() string {
	return "t_comment"
}
