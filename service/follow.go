package service

import (
	"Railfan/dao"
	"Railfan/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
}

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
}

// Follow 关注。重复关注由 (follower_id, following_id) 唯一索引兜底
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	exist, err := s.UserDAO.IsExist(ctx, "id = ?", followingID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrUserNotFound
	}

	following, err := s.FollowDAO.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if following {
		return ErrAlreadyFollowing
	}

	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := s.FollowDAO.Create(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	deleted, err := s.FollowDAO.Delete(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFollowing
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followingID)
}
