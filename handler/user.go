package handler

import (
	"Railfan/config"
	"Railfan/middleware"
	"Railfan/pkg/context"
	"Railfan/pkg/response"
	"Railfan/service"
	"Railfan/types"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/users")
	g.GET("", context.Wrap(u.ListUsers))
	g.GET("/:id", context.Wrap(u.GetProfile))

	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g.PUT("/me", authorize, context.Wrap(u.UpdateProfile))
	g.GET("/me", authorize, context.Wrap(u.GetMe))
}

func (u *User) ListUsers(c *gin.Context) error {
	var req types.ListUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	users, err := u.UserService.ListUsers(c.Request.Context(), req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}

func (u *User) GetProfile(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "用户ID格式错误")
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) GetMe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	// 只放行资料类字段，身份和余额不允许从这里改
	allowed := map[string]bool{
		"display_name":    true,
		"avatar_url":      true,
		"bio":             true,
		"plarail_history": true,
		"specialty_tags":  true,
		"owned_trains":    true,
		"social_links":    true,
	}
	jsonFields := map[string]bool{
		"specialty_tags": true,
		"owned_trains":   true,
		"social_links":   true,
	}
	updates := make(map[string]interface{}, len(req))
	for k, v := range req {
		if !allowed[k] {
			continue
		}
		if jsonFields[k] {
			// JSON 列按原样序列化落库
			b, err := json.Marshal(v)
			if err != nil {
				return response.NewError(http.StatusBadRequest, "参数格式错误")
			}
			updates[k] = datatypes.JSON(b)
			continue
		}
		updates[k] = v
	}

	if err := u.UserService.UpdateProfile(c.Request.Context(), userID, updates); err != nil {
		return err
	}
	response.Success(c, "更新成功")
	return nil
}
