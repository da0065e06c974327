package model

const (
	RoleUser  = 1
	RoleAdmin = 9
)

const (
	StatusNormal  = 1
	StatusBanned  = 2
	StatusDeleted = 3
)

// User 用户模型，帖子服务只读
type User struct {
	UID        int64  `gorm:"column:uid;primaryKey;autoIncrement" json:"uid"`
	LoginName  string `gorm:"column:login_name;uniqueIndex;size:32" json:"login_name"`
	Avatar     string `gorm:"column:avatar;size:255" json:"avatar"`
	Role       int    `gorm:"column:role;default:1" json:"role"`
	Status     int    `gorm:"column:status;default:1" json:"status"`
	CreateTime int64  `gorm:"column:create_time" json:"create_time"`
}

func (User) TableName() string {
	return "t_user"
}
