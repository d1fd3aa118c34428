package models

import (
	"time"

	"gorm.io/datatypes"
)

// 要望状态
const (
	RequestStatusPending   = "pending"
	RequestStatusConfirmed = "confirmed"
	RequestStatusInReview  = "in_review"
	RequestStatusPlanned   = "planned"
	RequestStatusRejected  = "rejected"
)

// Request 用户向厂商提出的商品化要望
type Request struct {
	ID                   uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID               uint64         `gorm:"not null;index:idx_request_user;column:user_id" json:"user_id"`
	Title                string         `gorm:"size:255;not null;column:title" json:"title"`
	Description          string         `gorm:"type:text;not null;column:description" json:"description"`
	Category             string         `gorm:"size:32;index:idx_request_category;column:category" json:"category"`
	Images               datatypes.JSON `gorm:"column:images" json:"images"`
	Status               string         `gorm:"size:16;default:pending;not null;column:status" json:"status"`
	SupportCount         int64          `gorm:"default:0;not null;column:support_count" json:"support_count"`
	ManufacturerResponse string         `gorm:"type:text;column:manufacturer_response" json:"manufacturer_response"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string {
	return "requests"
}

// RequestSupport 要望赞同记录，(user_id, request_id) 唯一，重复赞同直接报冲突
type RequestSupport struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_support_user_request,priority:1;column:user_id" json:"user_id"`
	RequestID uint64    `gorm:"not null;uniqueIndex:idx_support_user_request,priority:2;column:request_id" json:"request_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RequestSupport) TableName() string {
	return "request_supports"
}
