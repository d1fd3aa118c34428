package service

import (
	"Railfan/dao"
	"Railfan/models"
	"Railfan/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

type RequestService struct {
	RequestDAO *dao.RequestDAO
	SupportDAO *dao.RequestSupportDAO
}

var _ IRequestService = (*RequestService)(nil)

type IRequestService interface {
	ListRequests(ctx context.Context, req *types.ListRequestsReq) ([]dao.RequestRecord, error)
	GetRequest(ctx context.Context, id uint64) (*dao.RequestRecord, error)
	CreateRequest(ctx context.Context, userID uint64, req *types.CreateRequestReq) (uint64, error)
	SupportRequest(ctx context.Context, userID, requestID uint64) error
}

func (s *RequestService) ListRequests(ctx context.Context, req *types.ListRequestsReq) ([]dao.RequestRecord, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.RequestDAO.List(ctx, req.Category, req.Status, req.Sort, limit, req.Offset)
}

func (s *RequestService) GetRequest(ctx context.Context, id uint64) (*dao.RequestRecord, error) {
	record, err := s.RequestDAO.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	return record, nil
}

func (s *RequestService) CreateRequest(ctx context.Context, userID uint64, req *types.CreateRequestReq) (uint64, error) {
	images, err := marshalList(req.Images)
	if err != nil {
		return 0, err
	}

	request := &models.Request{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Images:      images,
		Status:      models.RequestStatusPending,
	}
	if err := s.RequestDAO.Create(ctx, request); err != nil {
		return 0, err
	}
	return request.ID, nil
}

// SupportRequest 赞同要望。重复赞同由 (user_id, request_id) 唯一索引兜底
func (s *RequestService) SupportRequest(ctx context.Context, userID, requestID uint64) error {
	exist, err := s.RequestDAO.IsExist(ctx, "id = ?", requestID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrTargetNotFound
	}

	supported, err := s.SupportDAO.IsSupported(ctx, userID, requestID)
	if err != nil {
		return err
	}
	if supported {
		return ErrAlreadySupported
	}

	support := &models.RequestSupport{
		UserID:    userID,
		RequestID: requestID,
	}
	if err := s.SupportDAO.Create(ctx, support); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySupported
		}
		return err
	}
	return s.RequestDAO.IncrSupportCount(ctx, requestID)
}
