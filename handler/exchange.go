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

type Exchange struct {
	Config       *config.Config
	PointService service.IPointService
}

func (e *Exchange) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/exchange")

	// 商品浏览无需登录
	g.GET("/items", context.Wrap(e.ListItems))
	g.GET("/items/:id", context.Wrap(e.GetItem))

	authorize := middleware.Auth([]byte(e.Config.Jwt.Secret))
	g.POST("", authorize, context.Wrap(e.Exchange))
	g.GET("/history", authorize, context.Wrap(e.ListHistory))
}

func (e *Exchange) ListItems(c *gin.Context) error {
	var req types.ListItemsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	items, err := e.PointService.ListItems(c.Request.Context(), req.Category)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (e *Exchange) GetItem(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "商品ID格式错误")
	}

	item, err := e.PointService.GetItem(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (e *Exchange) Exchange(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ExchangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	history, remaining, err := e.PointService.ExchangeItem(c.Request.Context(), userID, req.ItemID, req.ShippingInfo)
	if err != nil {
		return err
	}
	response.Success(c, types.ExchangeResp{
		ExchangeID:      history.ID,
		OrderCode:       history.OrderCode,
		RemainingPoints: remaining,
	})
	return nil
}

func (e *Exchange) ListHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListTransactionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	records, err := e.PointService.ListExchanges(c.Request.Context(), userID, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}
