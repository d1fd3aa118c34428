package models

import "time"

// 可点赞的目标类型
const (
	LikeTargetPost         = "post"
	LikeTargetQuestion     = "question"
	LikeTargetAnswer       = "answer"
	LikeTargetAnnouncement = "announcement"
)

// Like 点赞记录，(user_id, target_type, target_id) 唯一，重复点赞报冲突
type Like struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_like_unique,priority:1;column:user_id" json:"user_id"`
	TargetType string    `gorm:"size:16;not null;uniqueIndex:idx_like_unique,priority:2;column:target_type" json:"target_type"`
	TargetID   uint64    `gorm:"not null;uniqueIndex:idx_like_unique,priority:3;column:target_id" json:"target_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
