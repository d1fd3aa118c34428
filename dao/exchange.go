package dao

import (
	"Railfan/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Exchange struct {
	Repo[models.ExchangeItem]
}

func NewExchange(db *gorm.DB) *Exchange {
	return &Exchange{
		Repo: NewRepo[models.ExchangeItem](db),
	}
}

// ListItems 上架商品，按所需积分升序；category 为空时不过滤
func (e *Exchange) ListItems(ctx context.Context, category string) ([]models.ExchangeItem, error) {
	var items []models.ExchangeItem
	query := e.Db.WithContext(ctx).Where("is_available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("required_points ASC").Find(&items).Error
	return items, err
}

// DecrementStock 限量商品扣库存。条件更新保证并发下不会把库存扣成负数，
// RowsAffected=0 表示已售罄
func (e *Exchange) DecrementStock(ctx context.Context, tx *gorm.DB, itemID uint64) (bool, error) {
	res := tx.WithContext(ctx).Model(&models.ExchangeItem{}).
		Where("id = ? AND stock_quantity > 0", itemID).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (e *Exchange) CreateHistory(ctx context.Context, tx *gorm.DB, record *models.ExchangeHistory) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (e *Exchange) UpdateHistoryOrderCode(ctx context.Context, tx *gorm.DB, id uint64, orderCode string) error {
	return tx.WithContext(ctx).Model(&models.ExchangeHistory{}).
		Where("id = ?", id).
		Update("order_code", orderCode).Error
}

// ExchangeRecord 兑换记录 + 商品信息
type ExchangeRecord struct {
	ID           uint64    `json:"id"`
	OrderCode    string    `json:"order_code"`
	ItemID       uint64    `json:"item_id"`
	PointsUsed   int64     `json:"points_used"`
	ShippingInfo string    `json:"shipping_info"`
	Status       string    `json:"status"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListHistoryByUser 用户的兑换记录，按时间倒序
func (e *Exchange) ListHistoryByUser(ctx context.Context, userID uint64, limit int) ([]ExchangeRecord, error) {
	var records []ExchangeRecord
	err := e.Db.WithContext(ctx).
		Table("exchange_history eh").
		Select(`eh.id, eh.order_code, eh.item_id, eh.points_used, eh.shipping_info,
			eh.status, eh.created_at,
			ei.name, ei.description, ei.image_url, ei.category`).
		Joins("LEFT JOIN exchange_items ei ON eh.item_id = ei.id").
		Where("eh.user_id = ?", userID).
		Order("eh.id DESC").
		Limit(limit).
		Scan(&records).Error
	return records, err
}
