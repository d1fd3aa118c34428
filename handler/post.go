package handler

import (
	"Railfan/config"
	"Railfan/middleware"
	"Railfan/pkg/context"
	"Railfan/pkg/response"
	"Railfan/service"
	"Railfan/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/posts")
	g.GET("", context.Wrap(p.ListPosts))
	g.GET("/:id", context.Wrap(p.GetPost))

	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g.POST("", authorize, context.Wrap(p.CreatePost))
	g.POST("/suggest-tags", authorize, context.Wrap(p.SuggestTags))
}

func (p *Post) ListPosts(c *gin.Context) error {
	var req types.ListPostsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	records, err := p.PostService.ListPosts(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}

func (p *Post) GetPost(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "作品ID格式错误")
	}

	record, err := p.PostService.GetPost(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, record)
	return nil
}

func (p *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	id, err := p.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreatedResp{ID: id})
	return nil
}

func (p *Post) SuggestTags(c *gin.Context) error {
	var req types.SuggestTagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	tags := p.PostService.SuggestTags(c.Request.Context(), req.ImageURL)
	response.Success(c, tags)
	return nil
}
