package dao

import (
	"Railfan/models"
	"context"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

// IsFollowing 是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// Delete 取消关注，返回是否删到了记录
func (d *FollowDAO) Delete(ctx context.Context, followerID, followingID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetFollowerCount 粉丝数
func (d *FollowDAO) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

// GetFollowingCount 关注数
func (d *FollowDAO) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
