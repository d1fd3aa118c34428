package models

import "time"

// 积分流水类型
const (
	KindLogin    = "login"    // 每日登录奖励
	KindTip      = "tip"      // 用户间投喂
	KindExchange = "exchange" // 兑换商品扣减
)

// PointTransaction 积分流水，只增不改不删
type PointTransaction struct {
	ID uint64 `gorm:"primaryKey;autoIncrement;column:id"`
	// FromUserID 系统发放（登录奖励）时为空
	FromUserID *uint64 `gorm:"column:from_user_id;index:idx_from_user"`
	// ToUserID 收款方，兑换扣减时记录扣减的用户本人
	ToUserID *uint64 `gorm:"column:to_user_id;index:idx_to_user;uniqueIndex:idx_daily_bonus,priority:1"`
	// Amount 统一约定：入账为正、扣减为负
	Amount     int64  `gorm:"not null;column:amount"`
	Kind       string `gorm:"size:16;not null;column:kind;uniqueIndex:idx_daily_bonus,priority:2"`
	TargetType string `gorm:"size:16;column:target_type"`
	TargetID   uint64 `gorm:"column:target_id"`
	Message    string `gorm:"size:255;column:message"`
	// BonusDate 仅 login 类型写入（UTC 日期），配合唯一索引保证每天最多领取一次；
	// 其他类型为 NULL，不参与唯一约束
	BonusDate *string   `gorm:"size:10;column:bonus_date;uniqueIndex:idx_daily_bonus,priority:3"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}
