package dao

import (
	"Railfan/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnnouncementDAO struct {
	Repo[models.Announcement]
}

func NewAnnouncementDAO(db *gorm.DB) *AnnouncementDAO {
	return &AnnouncementDAO{
		Repo: NewRepo[models.Announcement](db),
	}
}

type AnnouncementRecord struct {
	ID              uint64         `json:"id"`
	UserID          uint64         `json:"user_id"`
	Title           string         `json:"title"`
	ProductName     string         `json:"product_name"`
	ProductCode     string         `json:"product_code"`
	Price           int64          `json:"price"`
	ReleaseDate     string         `json:"release_date"`
	Description     string         `json:"description"`
	Images          datatypes.JSON `json:"images"`
	VideoURL        string         `json:"video_url"`
	OfficialURL     string         `json:"official_url"`
	Category        string         `json:"category"`
	LikeCount       int64          `json:"like_count"`
	CommentCount    int64          `json:"comment_count"`
	NotifyOnRelease bool           `json:"notify_on_release"`
	Username        string         `json:"username"`
	DisplayName     string         `json:"display_name"`
	AvatarURL       string         `json:"avatar_url"`
	IsOfficial      bool           `json:"is_official"`
	CreatedAt       time.Time      `json:"created_at"`
}

const announcementSelect = `a.id, a.user_id, a.title, a.product_name, a.product_code,
	a.price, a.release_date, a.description, a.images, a.video_url, a.official_url,
	a.category, a.like_count, a.comment_count, a.notify_on_release, a.created_at,
	u.username, u.display_name, u.avatar_url, u.is_official`

// List 新商品情报列表。sort: latest / popular / upcoming
func (d *AnnouncementDAO) List(ctx context.Context, category, sort string, limit, offset int) ([]AnnouncementRecord, error) {
	var records []AnnouncementRecord
	query := d.Db.WithContext(ctx).
		Table("announcements a").
		Select(announcementSelect).
		Joins("LEFT JOIN users u ON a.user_id = u.id")

	if category != "" {
		query = query.Where("a.category = ?", category)
	}

	switch sort {
	case "popular":
		query = query.Order("a.like_count DESC, a.created_at DESC")
	case "upcoming":
		query = query.Where("a.release_date >= ?", time.Now().Format("2006-01-02")).
			Order("a.release_date ASC")
	default:
		query = query.Order("a.created_at DESC")
	}

	err := query.Limit(limit).Offset(offset).Scan(&records).Error
	return records, err
}

func (d *AnnouncementDAO) GetWithUser(ctx context.Context, id uint64) (*AnnouncementRecord, error) {
	var record AnnouncementRecord
	err := d.Db.WithContext(ctx).
		Table("announcements a").
		Select(announcementSelect).
		Joins("LEFT JOIN users u ON a.user_id = u.id").
		Where("a.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (d *AnnouncementDAO) IncrLikeCount(ctx context.Context, id uint64, delta int) error {
	return d.Db.WithContext(ctx).Model(&models.Announcement{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}

func (d *AnnouncementDAO) IncrCommentCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Model(&models.Announcement{}).
		Where("id = ?", id).
		Update("comment_count", gorm.Expr("comment_count + ?", 1)).Error
}

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

type CommentRecord struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"user_id"`
	AnnouncementID uint64    `json:"announcement_id"`
	Content        string    `json:"content"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	AvatarURL      string    `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
}

func (d *CommentDAO) ListByAnnouncement(ctx context.Context, announcementID uint64) ([]CommentRecord, error) {
	var records []CommentRecord
	err := d.Db.WithContext(ctx).
		Table("comments c").
		Select(`c.id, c.user_id, c.announcement_id, c.content, c.created_at,
			u.username, u.display_name, u.avatar_url`).
		Joins("LEFT JOIN users u ON c.user_id = u.id").
		Where("c.announcement_id = ?", announcementID).
		Order("c.created_at DESC").
		Scan(&records).Error
	return records, err
}
