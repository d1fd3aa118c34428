package models

import (
	"time"

	"gorm.io/datatypes"
)

type Users struct {
	Id             uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username       string         `gorm:"uniqueIndex:idx_username;size:64;not null;column:username" json:"username"`
	Email          string         `gorm:"size:255;column:email" json:"email"`
	PasswordHash   string         `gorm:"size:255;column:password_hash" json:"-"`
	DisplayName    string         `gorm:"size:64;column:display_name" json:"display_name"`
	AvatarURL      string         `gorm:"size:512;column:avatar_url" json:"avatar_url"`
	Bio            string         `gorm:"type:text;column:bio" json:"bio"`
	PlarailHistory string         `gorm:"size:255;column:plarail_history" json:"plarail_history"` // 入坑年数等自述
	SpecialtyTags  datatypes.JSON `gorm:"column:specialty_tags" json:"specialty_tags"`
	OwnedTrains    datatypes.JSON `gorm:"column:owned_trains" json:"owned_trains"`
	SocialLinks    datatypes.JSON `gorm:"column:social_links" json:"social_links"`
	IsOfficial     bool           `gorm:"default:false;column:is_official" json:"is_official"`
	// Points 积分余额，只允许通过积分服务的原子操作变更，任何时刻 >= 0
	Points    int64     `gorm:"default:0;not null;column:points" json:"points"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
