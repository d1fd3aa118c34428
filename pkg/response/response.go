package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "ok",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	httpStatus := http.StatusOK
	if code >= 400 && code < 600 {
		httpStatus = code
	}
	c.JSON(httpStatus, Response{
		Code: code,
		Msg:  msg,
	})
}
