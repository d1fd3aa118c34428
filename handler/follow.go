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

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/follows")
	g.Use(authorize)
	g.POST("", context.Wrap(f.Follow))
	g.DELETE("/:id", context.Wrap(f.Unfollow))
	g.GET("/:id", context.Wrap(f.IsFollowing))
}

func (f *Follow) Follow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.FollowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := f.FollowService.Follow(c.Request.Context(), userID, req.FollowingID); err != nil {
		return err
	}
	response.Success(c, "关注成功")
	return nil
}

func (f *Follow) Unfollow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "用户ID格式错误")
	}

	if err := f.FollowService.Unfollow(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, "已取消关注")
	return nil
}

func (f *Follow) IsFollowing(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "用户ID格式错误")
	}

	following, err := f.FollowService.IsFollowing(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"following": following})
	return nil
}
