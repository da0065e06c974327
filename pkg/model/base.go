package model

import "time"

// Timestamps 以 unix 秒存储的创建/更新时间，替代 gorm 的 time.Time 字段
type Timestamps struct {
	CreateTime int64 `gorm:"column:create_time;not null;default:0" json:"create_time"`
	UpdateTime int64 `gorm:"column:update_time;not null;default:0" json:"update_time"`
}

// Clock 返回当前时间，测试中可替换
type Clock func() time.Time

// NowUnix 当前 unix 秒
func NowUnix() int64 {
	return time.Now().Unix()
}

// Stamp 同时设置创建和更新时间
func (t *Timestamps) Stamp(now int64) {
	t.CreateTime = now
	t.UpdateTime = now
}
