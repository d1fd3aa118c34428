package dao

import (
	"Railfan/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.PointTransaction]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.PointTransaction](db),
	}
}

// GetBalance 读取用户当前积分余额
func (p *Point) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	var user models.Users
	err := p.Db.WithContext(ctx).Select("id", "points").First(&user, userID).Error
	if err != nil {
		return 0, err
	}
	return user.Points, nil
}

// Credit 入账。gorm.Expr 保证并发下的原子加，避免数据覆盖
func (p *Point) Credit(ctx context.Context, tx *gorm.DB, userID uint64, amount int64) error {
	res := tx.WithContext(ctx).Model(&models.Users{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Debit 扣减。条件更新只在余额充足时生效，RowsAffected=0 表示余额不足，
// 由数据库保证并发扣减不会把余额打成负数
func (p *Point) Debit(ctx context.Context, tx *gorm.DB, userID uint64, amount int64) (bool, error) {
	res := tx.WithContext(ctx).Model(&models.Users{}).
		Where("id = ? AND points >= ?", userID, amount).
		Update("points", gorm.Expr("points - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (p *Point) CreateTransaction(ctx context.Context, tx *gorm.DB, record *models.PointTransaction) error {
	return tx.WithContext(ctx).Create(record).Error
}

// HasClaimedToday 当天（UTC 日历日）是否已领取登录奖励。
// 只是友好提示用的预检查，真正的防并发靠 (to_user_id, kind, bonus_date) 唯一索引
func (p *Point) HasClaimedToday(ctx context.Context, userID uint64, date string) (bool, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.PointTransaction{}).
		Where("to_user_id = ? AND kind = ? AND bonus_date = ?", userID, models.KindLogin, date).
		Count(&count).Error
	return count > 0, err
}

// TransactionRecord 流水 + 对手方昵称
type TransactionRecord struct {
	ID              uint64    `json:"id"`
	FromUserID      *uint64   `json:"from_user_id"`
	ToUserID        *uint64   `json:"to_user_id"`
	Amount          int64     `json:"amount"`
	Kind            string    `json:"kind"`
	TargetType      string    `json:"target_type"`
	TargetID        uint64    `json:"target_id"`
	Message         string    `json:"message"`
	FromUsername    string    `json:"from_username"`
	FromDisplayName string    `json:"from_display_name"`
	ToUsername      string    `json:"to_username"`
	ToDisplayName   string    `json:"to_display_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListByUser 用户作为任意一方的流水，按时间倒序
func (p *Point) ListByUser(ctx context.Context, userID uint64, limit int) ([]TransactionRecord, error) {
	var records []TransactionRecord
	err := p.Db.WithContext(ctx).
		Table("point_transactions pt").
		Select(`pt.id, pt.from_user_id, pt.to_user_id, pt.amount, pt.kind,
			pt.target_type, pt.target_id, pt.message, pt.created_at,
			fu.username AS from_username, fu.display_name AS from_display_name,
			tu.username AS to_username, tu.display_name AS to_display_name`).
		Joins("LEFT JOIN users fu ON pt.from_user_id = fu.id").
		Joins("LEFT JOIN users tu ON pt.to_user_id = tu.id").
		Where("pt.from_user_id = ? OR pt.to_user_id = ?", userID, userID).
		Order("pt.id DESC").
		Limit(limit).
		Scan(&records).Error
	return records, err
}

// SumByUser 对账用：该用户全部入账减全部支出
func (p *Point) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var res struct {
		Total int64
	}
	// 转账类流水金额记正数，发起方取负；系统类流水（登录奖励、兑换扣减）
	// 金额本身已带方向
	err := p.Db.WithContext(ctx).Model(&models.PointTransaction{}).
		Select(`COALESCE(SUM(CASE WHEN from_user_id = ? THEN -amount ELSE amount END), 0) AS total`, userID).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Scan(&res).Error
	return res.Total, err
}
