package dao

import (
	"Railfan/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{
		Repo: NewRepo[models.Post](db),
	}
}

// PostRecord 作品 + 作者信息
type PostRecord struct {
	ID          uint64         `json:"id"`
	UserID      uint64         `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Visibility  string         `json:"visibility"`
	Images      datatypes.JSON `json:"images"`
	Tags        datatypes.JSON `json:"tags"`
	LikeCount   int64          `json:"like_count"`
	ViewCount   int64          `json:"view_count"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	AvatarURL   string         `json:"avatar_url"`
	IsOfficial  bool           `json:"is_official"`
	CreatedAt   time.Time      `json:"created_at"`
}

const postSelect = `p.id, p.user_id, p.title, p.description, p.category, p.visibility,
	p.images, p.tags, p.like_count, p.view_count, p.created_at,
	u.username, u.display_name, u.avatar_url, u.is_official`

// List 公开作品列表，latest 按时间、popular 按点赞数排序
func (d *PostDAO) List(ctx context.Context, category, sort string, limit, offset int) ([]PostRecord, error) {
	var records []PostRecord
	query := d.Db.WithContext(ctx).
		Table("posts p").
		Select(postSelect).
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Where("p.visibility = ?", "public")

	if category != "" {
		query = query.Where("p.category = ?", category)
	}

	if sort == "popular" {
		query = query.Order("p.like_count DESC, p.created_at DESC")
	} else {
		query = query.Order("p.created_at DESC")
	}

	err := query.Limit(limit).Offset(offset).Scan(&records).Error
	return records, err
}

func (d *PostDAO) GetWithUser(ctx context.Context, id uint64) (*PostRecord, error) {
	var record PostRecord
	err := d.Db.WithContext(ctx).
		Table("posts p").
		Select(postSelect).
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Where("p.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

// IncrViewCount 阅览数 +1，热点计数直接走原子更新
func (d *PostDAO) IncrViewCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// IncrLikeCount 点赞计数增减
func (d *PostDAO) IncrLikeCount(ctx context.Context, id uint64, delta int) error {
	return d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}

// Search 标题/描述模糊搜索
func (d *PostDAO) Search(ctx context.Context, keyword string, limit int) ([]PostRecord, error) {
	var records []PostRecord
	kw := "%" + keyword + "%"
	err := d.Db.WithContext(ctx).
		Table("posts p").
		Select(postSelect).
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Where("p.visibility = ?", "public").
		Where("p.title LIKE ? OR p.description LIKE ?", kw, kw).
		Order("p.created_at DESC").
		Limit(limit).
		Scan(&records).Error
	return records, err
}
