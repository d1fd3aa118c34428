package service

import (
	"Railfan/dao"
	"Railfan/models"
	"Railfan/types"
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionDAO *dao.QuestionDAO
	AnswerDAO   *dao.AnswerDAO
}

var _ IQuestionService = (*QuestionService)(nil)

type IQuestionService interface {
	ListQuestions(ctx context.Context, req *types.ListQuestionsReq) ([]dao.QuestionRecord, error)
	GetQuestion(ctx context.Context, id uint64) (*dao.QuestionRecord, []dao.AnswerRecord, error)
	CreateQuestion(ctx context.Context, userID uint64, req *types.CreateQuestionReq) (uint64, error)
	CreateAnswer(ctx context.Context, userID uint64, req *types.CreateAnswerReq) (uint64, error)
}

func (s *QuestionService) ListQuestions(ctx context.Context, req *types.ListQuestionsReq) ([]dao.QuestionRecord, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.QuestionDAO.List(ctx, req.Category, req.Status, req.Sort, limit, req.Offset)
}

// GetQuestion 问题详情连同回答一并返回
func (s *QuestionService) GetQuestion(ctx context.Context, id uint64) (*dao.QuestionRecord, []dao.AnswerRecord, error) {
	record, err := s.QuestionDAO.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrQuestionNotFound
		}
		return nil, nil, err
	}

	answers, err := s.AnswerDAO.ListByQuestion(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	_ = s.QuestionDAO.IncrViewCount(ctx, id)
	record.ViewCount++
	return record, answers, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, userID uint64, req *types.CreateQuestionReq) (uint64, error) {
	images, err := marshalList(req.Images)
	if err != nil {
		return 0, err
	}
	tags, err := marshalList(req.Tags)
	if err != nil {
		return 0, err
	}

	question := &models.Question{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Status:     "open",
		Images:     images,
		Tags:       tags,
	}
	if err := s.QuestionDAO.Create(ctx, question); err != nil {
		return 0, err
	}
	return question.ID, nil
}

func (s *QuestionService) CreateAnswer(ctx context.Context, userID uint64, req *types.CreateAnswerReq) (uint64, error) {
	exist, err := s.QuestionDAO.IsExist(ctx, "id = ?", req.QuestionID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, ErrQuestionNotFound
	}

	images, err := marshalList(req.Images)
	if err != nil {
		return 0, err
	}

	answer := &models.Answer{
		QuestionID: req.QuestionID,
		UserID:     userID,
		Content:    req.Content,
		Images:     images,
	}
	if err := s.AnswerDAO.Create(ctx, answer); err != nil {
		return 0, err
	}
	if err := s.QuestionDAO.IncrAnswerCount(ctx, req.QuestionID); err != nil {
		return 0, err
	}
	return answer.ID, nil
}

// marshalList nil 列表统一写成空数组，省得前端判空
func marshalList(items []string) ([]byte, error) {
	if items == nil {
		items = make([]string, 0)
	}
	return json.Marshal(items)
}
