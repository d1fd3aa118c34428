package handler

import (
	"Railfan/pkg/context"
	"Railfan/pkg/response"
	"Railfan/service"
	"Railfan/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := a.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := a.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
