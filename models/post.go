package models

import (
	"time"

	"gorm.io/datatypes"
)

// Post 作品投稿（车辆展示、レイアウト等）
type Post struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      uint64         `gorm:"not null;index:idx_post_user;column:user_id" json:"user_id"`
	Title       string         `gorm:"size:255;not null;column:title" json:"title"`
	Description string         `gorm:"type:text;column:description" json:"description"`
	Category    string         `gorm:"size:32;index:idx_post_category;column:category" json:"category"`
	Visibility  string         `gorm:"size:16;default:public;not null;column:visibility" json:"visibility"` // public / followers / private
	Images      datatypes.JSON `gorm:"not null;column:images" json:"images"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	LikeCount   int64          `gorm:"default:0;not null;column:like_count" json:"like_count"`
	ViewCount   int64          `gorm:"default:0;not null;column:view_count" json:"view_count"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
