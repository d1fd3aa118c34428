package service

import "Railfan/pkg/response"

// 业务错误码沿用 HTTP 状态语义：校验类 400、不存在 404、冲突 409。
// 所有规则校验在写入发生之前完成，校验失败不会留下任何部分变更
var (
	ErrUserNotFound      = response.NewError(404, "用户不存在")
	ErrItemNotFound      = response.NewError(404, "兑换商品不存在")
	ErrPostNotFound      = response.NewError(404, "作品不存在")
	ErrQuestionNotFound  = response.NewError(404, "问题不存在")
	ErrTargetNotFound    = response.NewError(404, "目标内容不存在")
	ErrInvalidAmount     = response.NewError(400, "投喂数额必须在 10 到 1000 之间")
	ErrSelfTransfer      = response.NewError(400, "不能投喂给自己")
	ErrSelfFollow        = response.NewError(400, "不能关注自己")
	ErrInsufficientFunds = response.NewError(400, "积分余额不足")
	ErrItemUnavailable   = response.NewError(400, "该商品已下架")
	ErrOutOfStock        = response.NewError(400, "该商品已兑完")
	ErrAlreadyClaimed    = response.NewError(409, "今天已经领取过登录奖励")
	ErrAlreadyLiked      = response.NewError(409, "已经点过赞了")
	ErrNotLiked          = response.NewError(409, "还没有点过赞")
	ErrAlreadyFollowing  = response.NewError(409, "已经关注过了")
	ErrNotFollowing      = response.NewError(409, "还没有关注过")
	ErrAlreadySupported  = response.NewError(409, "已经赞同过该要望")
	ErrUsernameTaken     = response.NewError(409, "用户名已被占用")
	ErrBadCredentials    = response.NewError(401, "用户名或密码错误")
)
