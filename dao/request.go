package dao

import (
	"Railfan/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RequestDAO struct {
	Repo[models.Request]
}

func NewRequestDAO(db *gorm.DB) *RequestDAO {
	return &RequestDAO{
		Repo: NewRepo[models.Request](db),
	}
}

type RequestRecord struct {
	ID                   uint64         `json:"id"`
	UserID               uint64         `json:"user_id"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Category             string         `json:"category"`
	Images               datatypes.JSON `json:"images"`
	Status               string         `json:"status"`
	SupportCount         int64          `json:"support_count"`
	ManufacturerResponse string         `json:"manufacturer_response"`
	Username             string         `json:"username"`
	DisplayName          string         `json:"display_name"`
	AvatarURL            string         `json:"avatar_url"`
	CreatedAt            time.Time      `json:"created_at"`
}

const requestSelect = `r.id, r.user_id, r.title, r.description, r.category, r.images,
	r.status, r.support_count, r.manufacturer_response, r.created_at,
	u.username, u.display_name, u.avatar_url`

// List 要望列表，默认按赞同数排序
func (d *RequestDAO) List(ctx context.Context, category, status, sort string, limit, offset int) ([]RequestRecord, error) {
	var records []RequestRecord
	query := d.Db.WithContext(ctx).
		Table("requests r").
		Select(requestSelect).
		Joins("LEFT JOIN users u ON r.user_id = u.id")

	if category != "" {
		query = query.Where("r.category = ?", category)
	}
	if status != "" {
		query = query.Where("r.status = ?", status)
	}

	if sort == "latest" {
		query = query.Order("r.created_at DESC")
	} else {
		query = query.Order("r.support_count DESC, r.created_at DESC")
	}

	err := query.Limit(limit).Offset(offset).Scan(&records).Error
	return records, err
}

func (d *RequestDAO) GetWithUser(ctx context.Context, id uint64) (*RequestRecord, error) {
	var record RequestRecord
	err := d.Db.WithContext(ctx).
		Table("requests r").
		Select(requestSelect).
		Joins("LEFT JOIN users u ON r.user_id = u.id").
		Where("r.id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (d *RequestDAO) IncrSupportCount(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Model(&models.Request{}).
		Where("id = ?", id).
		Update("support_count", gorm.Expr("support_count + ?", 1)).Error
}

type RequestSupportDAO struct {
	Repo[models.RequestSupport]
}

func NewRequestSupportDAO(db *gorm.DB) *RequestSupportDAO {
	return &RequestSupportDAO{
		Repo: NewRepo[models.RequestSupport](db),
	}
}

// IsSupported 是否已赞同过
func (d *RequestSupportDAO) IsSupported(ctx context.Context, userID, requestID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND request_id = ?", userID, requestID)
}
