package models

import "time"

// ExchangeItem 兑换商品
type ExchangeItem struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name           string `gorm:"size:255;not null;column:name" json:"name"`
	Description    string `gorm:"type:text;column:description" json:"description"`
	ImageURL       string `gorm:"size:512;column:image_url" json:"image_url"`
	Category       string `gorm:"size:32;index:idx_category;column:category" json:"category"` // goods / event / privilege
	RequiredPoints int64  `gorm:"not null;column:required_points" json:"required_points"`
	// StockQuantity -1 表示不限量，>=0 表示剩余库存
	StockQuantity int64     `gorm:"default:-1;not null;column:stock_quantity" json:"stock_quantity"`
	IsAvailable   bool      `gorm:"default:true;not null;column:is_available" json:"is_available"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExchangeItem) TableName() string {
	return "exchange_items"
}

// 兑换单状态流转：pending -> fulfilled / cancelled
const (
	ExchangeStatusPending   = "pending"
	ExchangeStatusFulfilled = "fulfilled"
	ExchangeStatusCancelled = "cancelled"
)

// ExchangeHistory 兑换记录，兑换成功时写入，永久保留
type ExchangeHistory struct {
	ID uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	// OrderCode 对外展示的兑换单号（hashid），避免暴露自增ID
	OrderCode    string    `gorm:"size:32;index:idx_order_code;column:order_code" json:"order_code"`
	UserID       uint64    `gorm:"not null;index:idx_eh_user;column:user_id" json:"user_id"`
	ItemID       uint64    `gorm:"not null;column:item_id" json:"item_id"`
	PointsUsed   int64     `gorm:"not null;column:points_used" json:"points_used"`
	ShippingInfo string    `gorm:"type:text;column:shipping_info" json:"shipping_info"`
	Status       string    `gorm:"size:16;default:pending;not null;column:status" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ExchangeHistory) TableName() string {
	return "exchange_history"
}
