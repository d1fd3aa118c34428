package types

import "Railfan/models"

// UserProfileResp 用户详情 + 关注统计
type UserProfileResp struct {
	User           *models.Users `json:"user"`
	FollowerCount  int64         `json:"follower_count"`
	FollowingCount int64         `json:"following_count"`
}

type ListUsersReq struct {
	Limit int `form:"limit,default=50" binding:"omitempty,min=1,max=100"`
}
