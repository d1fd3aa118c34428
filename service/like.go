package service

import (
	"Railfan/dao"
	"Railfan/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeService struct {
	LikeDAO         *dao.LikeDAO
	PostDAO         *dao.PostDAO
	QuestionDAO     *dao.QuestionDAO
	AnswerDAO       *dao.AnswerDAO
	AnnouncementDAO *dao.AnnouncementDAO
}

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID uint64, targetType string, targetID uint64) error
	Unlike(ctx context.Context, userID uint64, targetType string, targetID uint64) error
}

// targetExists 校验点赞目标存在
func (s *LikeService) targetExists(ctx context.Context, targetType string, targetID uint64) (bool, error) {
	switch targetType {
	case models.LikeTargetPost:
		return s.PostDAO.IsExist(ctx, "id = ?", targetID)
	case models.LikeTargetQuestion:
		return s.QuestionDAO.IsExist(ctx, "id = ?", targetID)
	case models.LikeTargetAnswer:
		return s.AnswerDAO.IsExist(ctx, "id = ?", targetID)
	case models.LikeTargetAnnouncement:
		return s.AnnouncementDAO.IsExist(ctx, "id = ?", targetID)
	default:
		return false, nil
	}
}

// incrLikeCount 各目标表上的冗余点赞计数
func (s *LikeService) incrLikeCount(ctx context.Context, targetType string, targetID uint64, delta int) error {
	switch targetType {
	case models.LikeTargetPost:
		return s.PostDAO.IncrLikeCount(ctx, targetID, delta)
	case models.LikeTargetQuestion:
		return nil
	case models.LikeTargetAnswer:
		return s.AnswerDAO.IncrLikeCount(ctx, targetID, delta)
	case models.LikeTargetAnnouncement:
		return s.AnnouncementDAO.IncrLikeCount(ctx, targetID, delta)
	default:
		return nil
	}
}

// Like 点赞。重复点赞由 (user_id, target_type, target_id) 唯一索引兜底
func (s *LikeService) Like(ctx context.Context, userID uint64, targetType string, targetID uint64) error {
	exist, err := s.targetExists(ctx, targetType, targetID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrTargetNotFound
	}

	liked, err := s.LikeDAO.IsLiked(ctx, userID, targetType, targetID)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}

	like := &models.Like{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return s.incrLikeCount(ctx, targetType, targetID, 1)
}

func (s *LikeService) Unlike(ctx context.Context, userID uint64, targetType string, targetID uint64) error {
	deleted, err := s.LikeDAO.Delete(ctx, userID, targetType, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotLiked
	}
	return s.incrLikeCount(ctx, targetType, targetID, -1)
}
