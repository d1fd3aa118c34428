package dao

import (
	"Railfan/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionDAO struct {
	Repo[models.Question]
}

func NewQuestionDAO(db *gorm.DB) *QuestionDAO {
	return &QuestionDAO{
		Repo: NewRepo[models.Question](db),
	}
}

type QuestionRecord struct {
	ID          uint64         `json:"id"`
	UserID      uint64         `json:"user_id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Category    string         `json:"category"`
	Difficulty  string         `json:"difficulty"`
	Status      string         `json:"status"`
	Images      datatypes.JSON `json:"images"`
	Tags        datatypes.JSON `json:"tags"`
	AnswerCount int64          `json:"answer_count"`
	ViewCount   int64          `json:"view_count"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	AvatarURL   string         `json:"avatar_url"`
	CreatedAt   time.Time      `json:"created_at"`
}

const questionSelect = `q.id, q.user_id, q.title, q.content, q.category, q.difficulty,
	q.status, q.images, q.tags, q.answer_count, q.view_count, q.created_at,
	u.username, u.display_name, u.avatar_url`

// List 问题列表。sort: latest / popular / unanswered
func (d *QuestionDAO) List(ctx context.Context, category, status, sort string, limit, offset int) ([]QuestionRecord, error) {
	var records []QuestionRecord
	query := d.Db.WithContext(ctx).
		Table("questions q").
		Select(questionSelect).
		Joins("LEFT JOIN users u ON q.user_id = u.id")

	if category != "" {
		query = query.Where("q.category = ?", category)
	}
	if status != "" {
		query = query.Where("q.status = ?", status)
	}

	switch sort {
	case "popular":
		query = query.Order("q.answer_count DESC, q.created_at DESC")
	case "unanswered":
		query = query.Where("q.answer_count = 0").Order("q.created_at DESC")
	default:
		query = query.Order("q.created_at DESC")
	}

	err := query.Limit(limit).Offset(offset).Scan(&records).Error
	return records, err
}

func (d *QuestionDAO) GetWithUser(ctx context.Context, id uint64) (*QuestionRecord, error) {
	var record QuestionRecord
	err := d.Db.WithContext(ctx).
		Table("questions q").
		Select(questionSelect).
		Joins("LEFT JOIN users u ON q.user_id = u.id").
		Where("q.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (d *QuestionDAO) IncrViewCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (d *QuestionDAO) IncrAnswerCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Model(&models.Question{}).
		Where("id = ?", id).
		Update("answer_count", gorm.Expr("answer_count + ?", 1)).Error
}

// Search 标题/内容模糊搜索
func (d *QuestionDAO) Search(ctx context.Context, keyword string, limit int) ([]QuestionRecord, error) {
	var records []QuestionRecord
	kw := "%" + keyword + "%"
	err := d.Db.WithContext(ctx).
		Table("questions q").
		Select(questionSelect).
		Joins("LEFT JOIN users u ON q.user_id = u.id").
		Where("q.title LIKE ? OR q.content LIKE ?", kw, kw).
		Order("q.created_at DESC").
		Limit(limit).
		Scan(&records).Error
	return records, err
}

type AnswerDAO struct {
	Repo[models.Answer]
}

func NewAnswerDAO(db *gorm.DB) *AnswerDAO {
	return &AnswerDAO{
		Repo: NewRepo[models.Answer](db),
	}
}

type AnswerRecord struct {
	ID           uint64         `json:"id"`
	QuestionID   uint64         `json:"question_id"`
	UserID       uint64         `json:"user_id"`
	Content      string         `json:"content"`
	Images       datatypes.JSON `json:"images"`
	LikeCount    int64          `json:"like_count"`
	IsBestAnswer bool           `json:"is_best_answer"`
	Username     string         `json:"username"`
	DisplayName  string         `json:"display_name"`
	AvatarURL    string         `json:"avatar_url"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ListByQuestion 最佳回答优先，其次按点赞数、时间
func (d *AnswerDAO) ListByQuestion(ctx context.Context, questionID uint64) ([]AnswerRecord, error) {
	var records []AnswerRecord
	err := d.Db.WithContext(ctx).
		Table("answers a").
		Select(`a.id, a.question_id, a.user_id, a.content, a.images, a.like_count,
			a.is_best_answer, a.created_at,
			u.username, u.display_name, u.avatar_url`).
		Joins("LEFT JOIN users u ON a.user_id = u.id").
		Where("a.question_id = ?", questionID).
		Order("a.is_best_answer DESC, a.like_count DESC, a.created_at ASC").
		Scan(&records).Error
	return records, err
}

func (d *AnswerDAO) IncrLikeCount(ctx context.Context, id uint64, delta int) error {
	return d.Db.WithContext(ctx).Model(&models.Answer{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}
