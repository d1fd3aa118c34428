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

type Question struct {
	Config          *config.Config
	QuestionService service.IQuestionService
}

func (q *Question) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/questions")
	g.GET("", context.Wrap(q.ListQuestions))
	g.GET("/:id", context.Wrap(q.GetQuestion))

	authorize := middleware.Auth([]byte(q.Config.Jwt.Secret))
	g.POST("", authorize, context.Wrap(q.CreateQuestion))
	g.POST("/answers", authorize, context.Wrap(q.CreateAnswer))
}

func (q *Question) ListQuestions(c *gin.Context) error {
	var req types.ListQuestionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	records, err := q.QuestionService.ListQuestions(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, records)
	return nil
}

func (q *Question) GetQuestion(c *gin.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "问题ID格式错误")
	}

	record, answers, err := q.QuestionService.GetQuestion(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{
		"question": record,
		"answers":  answers,
	})
	return nil
}

func (q *Question) CreateQuestion(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	id, err := q.QuestionService.CreateQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreatedResp{ID: id})
	return nil
}

func (q *Question) CreateAnswer(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	id, err := q.QuestionService.CreateAnswer(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreatedResp{ID: id})
	return nil
}
