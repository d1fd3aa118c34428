package handler

import (
	"Railfan/config"
	"Railfan/middleware"
	"Railfan/pkg/context"
	"Railfan/pkg/response"
	"Railfan/service"
	"Railfan/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	g := r.Group("/v1/likes")
	g.Use(authorize)
	g.POST("", context.Wrap(l.Like))
	g.DELETE("", context.Wrap(l.Unlike))
}

func (l *Like) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.LikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := l.LikeService.Like(c.Request.Context(), userID, req.TargetType, req.TargetID); err != nil {
		return err
	}
	response.Success(c, "点赞成功")
	return nil
}

func (l *Like) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.LikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := l.LikeService.Unlike(c.Request.Context(), userID, req.TargetType, req.TargetID); err != nil {
		return err
	}
	response.Success(c, "已取消点赞")
	return nil
}
