package dao

import (
	"Railfan/models"
	"context"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{
		Repo: NewRepo[models.Like](db),
	}
}

// IsLiked 是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, userID uint64, targetType string, targetID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID)
}

// Delete 取消点赞，返回是否删到了记录
func (d *LikeDAO) Delete(ctx context.Context, userID uint64, targetType string, targetID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
