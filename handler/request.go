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

type Request struct {
	Config         *config.Config
	RequestService service.IRequestService
}

func (h *Request) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/requests")
	g.GET("", context.Wrap(h.ListRequests))
	g.GET("/:id", context.Wrap(h.GetRequest))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g.POST("", authorize, context.Wrap(h.CreateRequest))
	g.POST("/:id/support", authorize, context.Wrap(h.SupportRequest))
}

func (h *Request) ListRequests(c *gin.Context) error {
	var req types.ListRequestsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	records, err := h.RequestService.ListRequests(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}

func (h *Request) GetRequest(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "要望ID格式错误")
	}

	record, err := h.RequestService.GetRequest(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, record)
	return nil
}

func (h *Request) CreateRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	id, err := h.RequestService.CreateRequest(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreatedResp{ID: id})
	return nil
}

func (h *Request) SupportRequest(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "要望ID格式错误")
	}

	if err := h.RequestService.SupportRequest(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, "赞同成功")
	return nil
}
