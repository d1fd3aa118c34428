package models

import "time"

// 图片状态
const (
	ImageStatusUploaded = 0 // 已上传，未绑定
	ImageStatusBound    = 1 // 已绑定到内容
	ImageStatusDeleted  = 2 // 逻辑删除
)

type Image struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"` // snowflake ID
	UserID      uint64    `gorm:"not null;index:idx_image_user;column:user_id" json:"user_id"`
	OssKey      string    `gorm:"size:512;not null;column:oss_key" json:"oss_key"`
	ContentType string    `gorm:"size:64;column:content_type" json:"content_type"`
	Width       int       `gorm:"column:width" json:"width"`
	Height      int       `gorm:"column:height" json:"height"`
	Status      int       `gorm:"default:0;not null;column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Image) TableName() string {
	return "images"
}
