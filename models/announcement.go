package models

import (
	"time"

	"gorm.io/datatypes"
)

// Announcement 新商品发布情报（官方账号发布）
type Announcement struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID          uint64         `gorm:"not null;column:user_id" json:"user_id"`
	Title           string         `gorm:"size:255;not null;column:title" json:"title"`
	ProductName     string         `gorm:"size:255;not null;column:product_name" json:"product_name"`
	ProductCode     string         `gorm:"size:64;column:product_code" json:"product_code"`
	Price           int64          `gorm:"column:price" json:"price"` // 含税价格（日元）
	ReleaseDate     string         `gorm:"size:10;column:release_date" json:"release_date"`
	Description     string         `gorm:"type:text;column:description" json:"description"`
	Images          datatypes.JSON `gorm:"column:images" json:"images"`
	VideoURL        string         `gorm:"size:512;column:video_url" json:"video_url"`
	OfficialURL     string         `gorm:"size:512;column:official_url" json:"official_url"`
	Category        string         `gorm:"size:32;index:idx_ann_category;column:category" json:"category"`
	LikeCount       int64          `gorm:"default:0;not null;column:like_count" json:"like_count"`
	CommentCount    int64          `gorm:"default:0;not null;column:comment_count" json:"comment_count"`
	NotifyOnRelease bool           `gorm:"default:false;column:notify_on_release" json:"notify_on_release"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// Comment 商品情报下的评论
type Comment struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID         uint64    `gorm:"not null;column:user_id" json:"user_id"`
	AnnouncementID uint64    `gorm:"not null;index:idx_comment_ann;column:announcement_id" json:"announcement_id"`
	Content        string    `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
