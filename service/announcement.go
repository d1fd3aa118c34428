package service

import (
	"Railfan/dao"
	"Railfan/models"
	"Railfan/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AnnouncementService struct {
	AnnouncementDAO *dao.AnnouncementDAO
	CommentDAO      *dao.CommentDAO
}

var _ IAnnouncementService = (*AnnouncementService)(nil)

type IAnnouncementService interface {
	ListAnnouncements(ctx context.Context, req *types.ListAnnouncementsReq) ([]dao.AnnouncementRecord, error)
	GetAnnouncement(ctx context.Context, id uint64) (*dao.AnnouncementRecord, []dao.CommentRecord, error)
	CreateComment(ctx context.Context, userID, announcementID uint64, content string) (uint64, error)
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context, req *types.ListAnnouncementsReq) ([]dao.AnnouncementRecord, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.AnnouncementDAO.List(ctx, req.Category, req.Sort, limit, req.Offset)
}

// GetAnnouncement 情报详情连同评论一并返回
func (s *AnnouncementService) GetAnnouncement(ctx context.Context, id uint64) (*dao.AnnouncementRecord, []dao.CommentRecord, error) {
	record, err := s.AnnouncementDAO.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTargetNotFound
		}
		return nil, nil, err
	}

	comments, err := s.CommentDAO.ListByAnnouncement(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return record, comments, nil
}

func (s *AnnouncementService) CreateComment(ctx context.Context, userID, announcementID uint64, content string) (uint64, error) {
	exist, err := s.AnnouncementDAO.IsExist(ctx, "id = ?", announcementID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, ErrTargetNotFound
	}

	comment := &models.Comment{
		UserID:         userID,
		AnnouncementID: announcementID,
		Content:        content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return 0, err
	}
	if err := s.AnnouncementDAO.IncrCommentCount(ctx, announcementID); err != nil {
		return 0, err
	}
	return comment.ID, nil
}
