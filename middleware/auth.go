package middleware

import (
	"net/http"
	"strings"

	"Railfan/pkg/context"
	"Railfan/pkg/jwt"
	"Railfan/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 解析 Bearer Token，把用户身份写进请求上下文。
// 身份一律以 Token 为准，不信任请求体里带的任何用户ID
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "登录状态无效")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}
