package types

// BalanceResp 积分余额
type BalanceResp struct {
	Points int64 `json:"points"`
}

// DailyBonusResp 登录奖励领取结果
type DailyBonusResp struct {
	Points int64 `json:"points"` // 领取后的余额
	Bonus  int64 `json:"bonus"`  // 本次发放数额
}

// SendTipReq 投喂请求。发起方以登录身份为准，不从请求体读取
type SendTipReq struct {
	ToUserID   uint64 `json:"to_user_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	TargetType string `json:"target_type" binding:"omitempty,oneof=post question answer announcement"`
	TargetID   uint64 `json:"target_id"`
	Message    string `json:"message" binding:"max=255"`
}

// ListTransactionsReq 流水查询
type ListTransactionsReq struct {
	Limit int `form:"limit,default=50" binding:"omitempty,min=1,max=100"`
}

// ExchangeReq 兑换请求。兑换人以登录身份为准
type ExchangeReq struct {
	ItemID       uint64 `json:"item_id" binding:"required"`
	ShippingInfo string `json:"shipping_info" binding:"max=1024"`
}

// ExchangeResp 兑换结果
type ExchangeResp struct {
	ExchangeID uint64 `json:"exchange_id"`
	OrderCode  string `json:"order_code"`
	// RemainingPoints 以扣减后落库的余额为准，不做调用侧换算
	RemainingPoints int64 `json:"remaining_points"`
}

// ListItemsReq 兑换商品列表查询
type ListItemsReq struct {
	Category string `form:"category" binding:"omitempty,oneof=goods event privilege"`
}
