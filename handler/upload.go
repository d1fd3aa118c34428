package handler

import (
	"Railfan/config"
	"Railfan/middleware"
	"Railfan/pkg/context"
	"Railfan/pkg/response"
	"Railfan/service"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config     *config.Config
	OssService service.IOssService
}

func (u *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/upload")
	g.Use(authorize)
	g.POST("/image", context.Wrap(u.UploadImage))

	// 图片回源走 CDN，这里留一条直连兜底
	r.GET("/v1/images/*key", context.Wrap(u.GetImage))
}

func (u *Upload) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "请选择图片")
	}

	resp, err := u.OssService.UploadImage(c.Request.Context(), userID, header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (u *Upload) GetImage(c *gin.Context) error {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		return response.NewError(http.StatusBadRequest, "缺少图片路径")
	}

	body, err := u.OssService.DownloadReader(c.Request.Context(), key)
	if err != nil {
		return response.NewError(http.StatusNotFound, "图片不存在")
	}
	defer body.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
	return nil
}
