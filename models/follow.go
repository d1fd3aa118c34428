package models

import "time"

// Follow 关注关系，(follower_id, following_id) 唯一，重复关注报冲突
type Follow struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FollowerID  uint64    `gorm:"not null;uniqueIndex:idx_follow_unique,priority:1;column:follower_id" json:"follower_id"`
	FollowingID uint64    `gorm:"not null;uniqueIndex:idx_follow_unique,priority:2;index:idx_following;column:following_id" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
