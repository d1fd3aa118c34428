package service

import (
	"Railfan/dao"
	"Railfan/types"
	"context"

	"golang.org/x/sync/errgroup"
)

type SearchService struct {
	PostDAO     *dao.PostDAO
	QuestionDAO *dao.QuestionDAO
	UserDAO     *dao.Users
}

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	Search(ctx context.Context, req *types.GlobalSearchReq) (*types.GlobalSearchResp, error)
}

// Search 全局搜索，type=all 时并发查三类结果
func (s *SearchService) Search(ctx context.Context, req *types.GlobalSearchReq) (*types.GlobalSearchResp, error) {
	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	resp := &types.GlobalSearchResp{}
	g, gctx := errgroup.WithContext(ctx)

	if req.Type == "all" || req.Type == "posts" {
		g.Go(func() error {
			posts, err := s.PostDAO.Search(gctx, req.Keyword, limit)
			if err != nil {
				return err
			}
			resp.Posts = posts
			return nil
		})
	}
	if req.Type == "all" || req.Type == "questions" {
		g.Go(func() error {
			questions, err := s.QuestionDAO.Search(gctx, req.Keyword, limit)
			if err != nil {
				return err
			}
			resp.Questions = questions
			return nil
		})
	}
	if req.Type == "all" || req.Type == "users" {
		g.Go(func() error {
			users, err := s.UserDAO.Search(gctx, req.Keyword, limit)
			if err != nil {
				return err
			}
			for i := range users {
				users[i].PasswordHash = ""
			}
			resp.Users = users
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
