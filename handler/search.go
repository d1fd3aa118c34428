package handler

import (
	"Railfan/pkg/context"
	"Railfan/pkg/response"
	"Railfan/service"
	"Railfan/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Search struct {
	SearchService service.ISearchService
}

func (s *Search) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/search")
	g.GET("", context.Wrap(s.Search))
}

func (s *Search) Search(c *gin.Context) error {
	var req types.GlobalSearchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "缺少搜索关键词")
	}

	resp, err := s.SearchService.Search(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
