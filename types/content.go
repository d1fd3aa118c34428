package types

// ListPostsReq 作品列表查询
type ListPostsReq struct {
	Category string `form:"category"`
	Sort     string `form:"sort,default=latest" binding:"omitempty,oneof=latest popular"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

type CreatePostReq struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required,max=32"`
	Visibility  string   `json:"visibility" binding:"omitempty,oneof=public followers private"`
	Images      []string `json:"images" binding:"required,min=1"`
	Tags        []string `json:"tags"`
}

type SuggestTagsReq struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

type ListQuestionsReq struct {
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=open solved closed"`
	Sort     string `form:"sort,default=latest" binding:"omitempty,oneof=latest popular unanswered"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

type CreateQuestionReq struct {
	Title      string   `json:"title" binding:"required,max=255"`
	Content    string   `json:"content" binding:"required"`
	Category   string   `json:"category" binding:"required,max=32"`
	Difficulty string   `json:"difficulty" binding:"max=16"`
	Images     []string `json:"images"`
	Tags       []string `json:"tags"`
}

type CreateAnswerReq struct {
	QuestionID uint64   `json:"question_id" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Images     []string `json:"images"`
}

type ListAnnouncementsReq struct {
	Category string `form:"category"`
	Sort     string `form:"sort,default=latest" binding:"omitempty,oneof=latest popular upcoming"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

type CreateCommentReq struct {
	Content string `json:"content" binding:"required"`
}

type ListRequestsReq struct {
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed in_review planned rejected"`
	Sort     string `form:"sort,default=popular" binding:"omitempty,oneof=latest popular"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

type CreateRequestReq struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required,max=32"`
	Images      []string `json:"images"`
}

type LikeReq struct {
	TargetType string `json:"target_type" binding:"required,oneof=post question answer announcement"`
	TargetID   uint64 `json:"target_id" binding:"required"`
}

type FollowReq struct {
	FollowingID uint64 `json:"following_id" binding:"required"`
}

// CreatedResp 创建类接口的统一返回
type CreatedResp struct {
	ID uint64 `json:"id"`
}
