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

type Point struct {
	Config       *config.Config
	PointService service.IPointService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/v1/points")
	g.Use(authorize)
	g.GET("/balance", context.Wrap(p.Balance))
	g.POST("/daily-bonus", context.Wrap(p.ClaimDailyBonus))
	g.POST("/tip", context.Wrap(p.SendTip))
	g.GET("/transactions", context.Wrap(p.ListTransactions))
}

func (p *Point) Balance(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	// 支持查看他人余额：/balance?user_id=xx
	if q := c.Query("user_id"); q != "" {
		target, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "user_id 格式错误")
		}
		userID = target
	}

	points, err := p.PointService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.BalanceResp{Points: points})
	return nil
}

func (p *Point) ClaimDailyBonus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	newBalance, bonus, err := p.PointService.ClaimDailyBonus(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.DailyBonusResp{Points: newBalance, Bonus: bonus})
	return nil
}

func (p *Point) SendTip(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SendTipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := p.PointService.SendTip(c.Request.Context(), userID, req.ToUserID,
		req.Amount, req.TargetType, req.TargetID, req.Message); err != nil {
		return err
	}
	response.Success(c, "投喂成功")
	return nil
}

func (p *Point) ListTransactions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListTransactionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	records, err := p.PointService.ListTransactions(c.Request.Context(), userID, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}
