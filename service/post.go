package service

import (
	"Railfan/dao"
	"Railfan/models"
	"Railfan/pkg/llm"
	"Railfan/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostService struct {
	PostDAO   *dao.PostDAO
	UserDAO   *dao.Users
	TagClient *llm.TagClient
}

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	ListPosts(ctx context.Context, req *types.ListPostsReq) ([]dao.PostRecord, error)
	GetPost(ctx context.Context, id uint64) (*dao.PostRecord, error)
	CreatePost(ctx context.Context, userID uint64, req *types.CreatePostReq) (uint64, error)
	SuggestTags(ctx context.Context, imageURL string) []string
}

func (s *PostService) ListPosts(ctx context.Context, req *types.ListPostsReq) ([]dao.PostRecord, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.PostDAO.List(ctx, req.Category, req.Sort, limit, req.Offset)
}

func (s *PostService) GetPost(ctx context.Context, id uint64) (*dao.PostRecord, error) {
	record, err := s.PostDAO.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	// 计数失败不影响详情返回
	_ = s.PostDAO.IncrViewCount(ctx, id)
	record.ViewCount++
	return record, nil
}

func (s *PostService) CreatePost(ctx context.Context, userID uint64, req *types.CreatePostReq) (uint64, error) {
	images, err := marshalList(req.Images)
	if err != nil {
		return 0, err
	}
	tags, err := marshalList(req.Tags)
	if err != nil {
		return 0, err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = "public"
	}

	post := &models.Post{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Visibility:  visibility,
		Images:      images,
		Tags:        tags,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// SuggestTags 标签推荐，模型未配置或出错时返回空列表
func (s *PostService) SuggestTags(ctx context.Context, imageURL string) []string {
	return s.TagClient.GenPostTags(ctx, imageURL)
}
