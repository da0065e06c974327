package model

// 节点计数字段
const (
	CountTopics = "topics"
)

// Node 节点 (版块)
type Node struct {
	NID    int64  `gorm:"column:nid;primaryKey;autoIncrement" json:"nid"`
	PID    int64  `gorm:"column:pid;default:0" json:"pid"`
	Title  string `gorm:"column:title;size:64" json:"title"`
	Slug   string `gorm:"column:slug;uniqueIndex;size:64" json:"slug"`
	Topics int64  `gorm:"column:topics;default:0" json:"topics"`
}

func (Node) TableName() string {
	return "t_node"
}
