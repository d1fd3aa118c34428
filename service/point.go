package service

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/models"
	"Railfan/pkg/log"
	mq "Railfan/pkg/rocketmq"
	"Railfan/pkg/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// DailyBonusAmount 每日登录奖励数额
	DailyBonusAmount int64 = 10
	// 投喂数额区间（两端闭区间）
	TipMinAmount int64 = 10
	TipMaxAmount int64 = 1000

	// TopicTipNotify 投喂到账通知的消息主题
	TopicTipNotify = "railfan_tip_notify"
)

type PointService struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Producer    rocketmq.Producer
	PointDAO    *dao.Point
	UserDAO     *dao.Users
	ExchangeDAO *dao.Exchange
}

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	GetBalance(ctx context.Context, userID uint64) (int64, error)
	ClaimDailyBonus(ctx context.Context, userID uint64) (newBalance int64, bonus int64, err error)
	SendTip(ctx context.Context, fromUserID, toUserID uint64, amount int64, targetType string, targetID uint64, message string) error
	ExchangeItem(ctx context.Context, userID, itemID uint64, shippingInfo string) (*models.ExchangeHistory, int64, error)
	ListTransactions(ctx context.Context, userID uint64, limit int) ([]dao.TransactionRecord, error)
	ListExchanges(ctx context.Context, userID uint64, limit int) ([]dao.ExchangeRecord, error)
	ListItems(ctx context.Context, category string) ([]models.ExchangeItem, error)
	GetItem(ctx context.Context, itemID uint64) (*models.ExchangeItem, error)
}

// bonusDay 登录奖励的日历日统一按 UTC 计算
func bonusDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (p *PointService) bonusKey(userID uint64, day string) string {
	return fmt.Sprintf("points:bonus:%s:%d", day, userID)
}

func (p *PointService) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	balance, err := p.PointDAO.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}

// ClaimDailyBonus 领取每日登录奖励。
// 加余额和写流水在同一事务内完成，要么都成功要么都失败；
// 同一天重复领取由 (to_user_id, kind, bonus_date) 唯一索引兜底，
// 并发下第二笔插入直接撞唯一键
func (p *PointService) ClaimDailyBonus(ctx context.Context, userID uint64) (int64, int64, error) {
	exist, err := p.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return 0, 0, err
	}
	if !exist {
		return 0, 0, ErrUserNotFound
	}

	today := bonusDay(time.Now())

	// Redis 标记只是挡掉重复请求的快路径，不依赖它保证正确性
	if p.Redis != nil {
		if n, err := p.Redis.Exists(ctx, p.bonusKey(userID, today)).Result(); err == nil && n > 0 {
			return 0, 0, ErrAlreadyClaimed
		}
	}

	claimed, err := p.PointDAO.HasClaimedToday(ctx, userID, today)
	if err != nil {
		return 0, 0, err
	}
	if claimed {
		return 0, 0, ErrAlreadyClaimed
	}

	var newBalance int64
	err = p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := &models.PointTransaction{
			ToUserID:  &userID,
			Amount:    DailyBonusAmount,
			Kind:      models.KindLogin,
			BonusDate: &today,
		}
		if err := p.PointDAO.CreateTransaction(ctx, tx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyClaimed
			}
			return err
		}

		if err := p.PointDAO.Credit(ctx, tx, userID, DailyBonusAmount); err != nil {
			return err
		}

		// 以落库后的余额为准
		var user models.Users
		if err := tx.WithContext(ctx).Select("id", "points").First(&user, userID).Error; err != nil {
			return err
		}
		newBalance = user.Points
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	if p.Redis != nil {
		// 标记到当天 UTC 结束自动过期
		now := time.Now().UTC()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
		p.Redis.Set(ctx, p.bonusKey(userID, today), 1, midnight.Sub(now))
	}

	return newBalance, DailyBonusAmount, nil
}

// SendTip 投喂。扣减、入账、写流水必须在同一事务内，
// 不允许出现只扣了一边的中间状态；余额不足由条件更新保证，
// 并发下不会把余额打成负数
func (p *PointService) SendTip(ctx context.Context, fromUserID, toUserID uint64, amount int64, targetType string, targetID uint64, message string) error {
	if amount < TipMinAmount || amount > TipMaxAmount {
		return ErrInvalidAmount
	}
	if fromUserID == toUserID {
		return ErrSelfTransfer
	}

	for _, id := range []uint64{fromUserID, toUserID} {
		exist, err := p.UserDAO.IsExist(ctx, "id = ?", id)
		if err != nil {
			return err
		}
		if !exist {
			return ErrUserNotFound
		}
	}

	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := p.PointDAO.Debit(ctx, tx, fromUserID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientFunds
		}

		if err := p.PointDAO.Credit(ctx, tx, toUserID, amount); err != nil {
			return err
		}

		record := &models.PointTransaction{
			FromUserID: &fromUserID,
			ToUserID:   &toUserID,
			Amount:     amount,
			Kind:       models.KindTip,
			TargetType: targetType,
			TargetID:   targetID,
			Message:    message,
		}
		return p.PointDAO.CreateTransaction(ctx, tx, record)
	})
	if err != nil {
		return err
	}

	p.notifyTip(fromUserID, toUserID, amount, message)
	return nil
}

// notifyTip 投喂到账通知，尽力而为，失败只记日志
func (p *PointService) notifyTip(fromUserID, toUserID uint64, amount int64, message string) {
	if p.Producer == nil {
		return
	}
	body, _ := json.Marshal(map[string]interface{}{
		"from_user_id": fromUserID,
		"to_user_id":   toUserID,
		"amount":       amount,
		"message":      message,
	})
	go func() {
		if err := mq.SendMsg(p.Producer, TopicTipNotify, body); err != nil {
			log.L.Error("send tip notify", zap.Error(err), zap.Uint64("to_user_id", toUserID))
		}
	}()
}

// ExchangeItem 积分兑换。扣余额、扣库存、写兑换单、写流水在同一事务内；
// 限量商品的库存扣减用条件更新兜底，最后一件只会被一个人兑到
func (p *PointService) ExchangeItem(ctx context.Context, userID, itemID uint64, shippingInfo string) (*models.ExchangeHistory, int64, error) {
	item, err := p.ExchangeDAO.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrItemNotFound
		}
		return nil, 0, err
	}
	if !item.IsAvailable {
		return nil, 0, ErrItemUnavailable
	}
	// 0 件的限量商品直接拒绝；-1 表示不限量
	if item.StockQuantity >= 0 && item.StockQuantity <= 0 {
		return nil, 0, ErrOutOfStock
	}

	exist, err := p.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, 0, err
	}
	if !exist {
		return nil, 0, ErrUserNotFound
	}

	var (
		history         models.ExchangeHistory
		remainingPoints int64
	)
	err = p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 限量商品先占库存，占不到说明已兑完
		if item.StockQuantity >= 0 {
			ok, err := p.ExchangeDAO.DecrementStock(ctx, tx, itemID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrOutOfStock
			}
		}

		ok, err := p.PointDAO.Debit(ctx, tx, userID, item.RequiredPoints)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientFunds
		}

		history = models.ExchangeHistory{
			UserID:       userID,
			ItemID:       itemID,
			PointsUsed:   item.RequiredPoints,
			ShippingInfo: shippingInfo,
			Status:       models.ExchangeStatusPending,
		}
		if err := p.ExchangeDAO.CreateHistory(ctx, tx, &history); err != nil {
			return err
		}

		// 单号依赖自增ID，插入后补写
		history.OrderCode = utils.GenHashID(p.Config.App.HashSalt, int(history.ID))
		if err := p.ExchangeDAO.UpdateHistoryOrderCode(ctx, tx, history.ID, history.OrderCode); err != nil {
			return err
		}

		record := &models.PointTransaction{
			ToUserID:   &userID,
			Amount:     -item.RequiredPoints,
			Kind:       models.KindExchange,
			TargetType: "exchange_item",
			TargetID:   itemID,
		}
		if err := p.PointDAO.CreateTransaction(ctx, tx, record); err != nil {
			return err
		}

		// 剩余积分以扣减后落库的余额为准，不用事务外读到的旧值换算
		var user models.Users
		if err := tx.WithContext(ctx).Select("id", "points").First(&user, userID).Error; err != nil {
			return err
		}
		remainingPoints = user.Points
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &history, remainingPoints, nil
}

func (p *PointService) ListTransactions(ctx context.Context, userID uint64, limit int) ([]dao.TransactionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	exist, err := p.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrUserNotFound
	}
	return p.PointDAO.ListByUser(ctx, userID, limit)
}

func (p *PointService) ListExchanges(ctx context.Context, userID uint64, limit int) ([]dao.ExchangeRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	exist, err := p.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrUserNotFound
	}
	return p.ExchangeDAO.ListHistoryByUser(ctx, userID, limit)
}

func (p *PointService) ListItems(ctx context.Context, category string) ([]models.ExchangeItem, error) {
	return p.ExchangeDAO.ListItems(ctx, category)
}

func (p *PointService) GetItem(ctx context.Context, itemID uint64) (*models.ExchangeItem, error) {
	item, err := p.ExchangeDAO.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
