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

type Announcement struct {
	Config              *config.Config
	AnnouncementService service.IAnnouncementService
}

func (a *Announcement) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/announcements")
	g.GET("", context.Wrap(a.ListAnnouncements))
	g.GET("/:id", context.Wrap(a.GetAnnouncement))

	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g.POST("/:id/comments", authorize, context.Wrap(a.CreateComment))
}

func (a *Announcement) ListAnnouncements(c *gin.Context) error {
	var req types.ListAnnouncementsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	records, err := a.AnnouncementService.ListAnnouncements(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}

func (a *Announcement) GetAnnouncement(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "情报ID格式错误")
	}

	record, comments, err := a.AnnouncementService.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{
		"announcement": record,
		"comments":     comments,
	})
	return nil
}

func (a *Announcement) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "情报ID格式错误")
	}

	var req types.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	commentID, err := a.AnnouncementService.CreateComment(c.Request.Context(), userID, id, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, types.CreatedResp{ID: commentID})
	return nil
}
