package models

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID       uint64         `gorm:"not null;index:idx_question_user;column:user_id" json:"user_id"`
	Title        string         `gorm:"size:255;not null;column:title" json:"title"`
	Content      string         `gorm:"type:text;not null;column:content" json:"content"`
	Category     string         `gorm:"size:32;index:idx_question_category;column:category" json:"category"`
	Difficulty   string         `gorm:"size:16;column:difficulty" json:"difficulty"`
	Status       string         `gorm:"size:16;default:open;not null;column:status" json:"status"` // open / solved / closed
	Images       datatypes.JSON `gorm:"column:images" json:"images"`
	Tags         datatypes.JSON `gorm:"column:tags" json:"tags"`
	AnswerCount  int64          `gorm:"default:0;not null;column:answer_count" json:"answer_count"`
	ViewCount    int64          `gorm:"default:0;not null;column:view_count" json:"view_count"`
	BestAnswerID *uint64        `gorm:"column:best_answer_id" json:"best_answer_id"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

type Answer struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	QuestionID   uint64         `gorm:"not null;index:idx_answer_question;column:question_id" json:"question_id"`
	UserID       uint64         `gorm:"not null;column:user_id" json:"user_id"`
	Content      string         `gorm:"type:text;not null;column:content" json:"content"`
	Images       datatypes.JSON `gorm:"column:images" json:"images"`
	LikeCount    int64          `gorm:"default:0;not null;column:like_count" json:"like_count"`
	IsBestAnswer bool           `gorm:"default:false;not null;column:is_best_answer" json:"is_best_answer"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Answer) TableName() string {
	return "answers"
}
