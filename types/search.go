package types

import (
	"Railfan/dao"
	"Railfan/models"
)

// GlobalSearchReq 全局搜索。type: all / posts / questions / users
type GlobalSearchReq struct {
	Keyword string `form:"q" binding:"required"`
	Type    string `form:"type,default=all" binding:"omitempty,oneof=all posts questions users"`
	Limit   int    `form:"limit,default=20" binding:"omitempty,min=1,max=50"`
}

type GlobalSearchResp struct {
	Posts     []dao.PostRecord     `json:"posts,omitempty"`
	Questions []dao.QuestionRecord `json:"questions,omitempty"`
	Users     []models.Users       `json:"users,omitempty"`
}
