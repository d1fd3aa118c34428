package dao

import (
	"Railfan/models"
	"context"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

func (i *Image) CreateImage(ctx context.Context, img *models.Image) error {
	return i.Db.WithContext(ctx).Create(img).Error
}

func (i *Image) FindByKey(ctx context.Context, ossKey string) (*models.Image, error) {
	return i.FindByWhere(ctx, "oss_key = ?", ossKey)
}
