package service

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/models"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个测试用独立的 in-memory SQLite。
// cache=shared + 单连接，保证并发用例走同一个库且写入串行
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.Users{},
		&models.PointTransaction{},
		&models.ExchangeItem{},
		&models.ExchangeHistory{},
	)
	require.NoError(t, err, "failed to migrate database schema")

	return db
}

func newPointService(db *gorm.DB) *PointService {
	return &PointService{
		Config: &config.Config{
			App: &config.App{HashSalt: "test-salt"},
		},
		DB:          db,
		PointDAO:    dao.NewPoint(db),
		UserDAO:     dao.NewUsers(db),
		ExchangeDAO: dao.NewExchange(db),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string, points int64) *models.Users {
	t.Helper()
	user := &models.Users{
		Username:    username,
		DisplayName: username,
		Points:      points,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func getPoints(t *testing.T, db *gorm.DB, userID uint64) int64 {
	t.Helper()
	var user models.Users
	require.NoError(t, db.Select("id", "points").First(&user, userID).Error)
	return user.Points
}

func TestClaimDailyBonus_FirstClaim(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	user := createTestUser(t, db, "alice", 0)

	balance, bonus, err := svc.ClaimDailyBonus(context.Background(), user.Id)

	require.NoError(t, err)
	assert.Equal(t, DailyBonusAmount, bonus)
	assert.Equal(t, DailyBonusAmount, balance)
	assert.Equal(t, DailyBonusAmount, getPoints(t, db, user.Id))

	// 留下一条带发放日的登录奖励流水
	var record models.PointTransaction
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, models.KindLogin, record.Kind)
	assert.Equal(t, DailyBonusAmount, record.Amount)
	assert.Nil(t, record.FromUserID)
	require.NotNil(t, record.ToUserID)
	assert.Equal(t, user.Id, *record.ToUserID)
	assert.NotNil(t, record.BonusDate)
}

func TestClaimDailyBonus_SecondClaimSameDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	user := createTestUser(t, db, "alice", 0)

	_, _, err := svc.ClaimDailyBonus(context.Background(), user.Id)
	require.NoError(t, err)

	_, _, err = svc.ClaimDailyBonus(context.Background(), user.Id)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	// 余额没有二次增加
	assert.Equal(t, DailyBonusAmount, getPoints(t, db, user.Id))

	var count int64
	require.NoError(t, db.Model(&models.PointTransaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestClaimDailyBonus_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	user := createTestUser(t, db, "alice", 0)

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.ClaimDailyBonus(context.Background(), user.Id)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyClaimed):
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	// 唯一索引保证同一天只有一次发放成功
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicted)
	assert.Equal(t, DailyBonusAmount, getPoints(t, db, user.Id))
}

func TestClaimDailyBonus_UserNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)

	_, _, err := svc.ClaimDailyBonus(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendTip_Success(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 100)
	bob := createTestUser(t, db, "bob", 5)

	err := svc.SendTip(context.Background(), alice.Id, bob.Id, 30, "post", 1, "素敵な作品！")

	require.NoError(t, err)
	assert.Equal(t, int64(70), getPoints(t, db, alice.Id))
	assert.Equal(t, int64(35), getPoints(t, db, bob.Id))

	var record models.PointTransaction
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, models.KindTip, record.Kind)
	assert.Equal(t, int64(30), record.Amount)
	require.NotNil(t, record.FromUserID)
	require.NotNil(t, record.ToUserID)
	assert.Equal(t, alice.Id, *record.FromUserID)
	assert.Equal(t, bob.Id, *record.ToUserID)
	assert.Equal(t, "素敵な作品！", record.Message)
}

func TestSendTip_AmountBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 5000)
	bob := createTestUser(t, db, "bob", 0)

	// 两端闭区间：10 和 1000 合法，9 和 1001 拒绝
	assert.ErrorIs(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 9, "", 0, ""), ErrInvalidAmount)
	assert.ErrorIs(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 1001, "", 0, ""), ErrInvalidAmount)
	assert.NoError(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 10, "", 0, ""))
	assert.NoError(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 1000, "", 0, ""))

	assert.Equal(t, int64(5000-10-1000), getPoints(t, db, alice.Id))
	assert.Equal(t, int64(10+1000), getPoints(t, db, bob.Id))
}

func TestSendTip_SelfTransfer(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 100)

	err := svc.SendTip(context.Background(), alice.Id, alice.Id, 50, "", 0, "")
	assert.ErrorIs(t, err, ErrSelfTransfer)
	assert.Equal(t, int64(100), getPoints(t, db, alice.Id))
}

func TestSendTip_InsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 20)
	bob := createTestUser(t, db, "bob", 0)

	err := svc.SendTip(context.Background(), alice.Id, bob.Id, 30, "", 0, "")

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	// 失败的投喂不留任何痕迹
	assert.Equal(t, int64(20), getPoints(t, db, alice.Id))
	assert.Equal(t, int64(0), getPoints(t, db, bob.Id))

	var count int64
	require.NoError(t, db.Model(&models.PointTransaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSendTip_UserNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 100)

	err := svc.SendTip(context.Background(), alice.Id, 999, 50, "", 0, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendTip_ConcurrentNoOverdraw(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 100)
	bob := createTestUser(t, db, "bob", 0)

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.SendTip(context.Background(), alice.Id, bob.Id, 30, "", 0, "")
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInsufficientFunds):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	// 100 的余额最多成交 3 笔 30，余额永不为负
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, int64(100-30*3), getPoints(t, db, alice.Id))
	assert.Equal(t, int64(30*3), getPoints(t, db, bob.Id))
	assert.GreaterOrEqual(t, getPoints(t, db, alice.Id), int64(0))
}

func createTestItem(t *testing.T, db *gorm.DB, name string, points, stock int64) *models.ExchangeItem {
	t.Helper()
	item := &models.ExchangeItem{
		Name:           name,
		Category:       "goods",
		RequiredPoints: points,
		StockQuantity:  stock,
		IsAvailable:    true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestExchangeItem_Success(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 500)
	item := createTestItem(t, db, "限定プラレール", 300, 5)

	history, remaining, err := svc.ExchangeItem(context.Background(), alice.Id, item.ID, "東京都...")

	require.NoError(t, err)
	assert.NotEmpty(t, history.OrderCode)
	assert.Equal(t, models.ExchangeStatusPending, history.Status)
	assert.Equal(t, int64(300), history.PointsUsed)
	// 剩余积分以落库余额为准
	assert.Equal(t, int64(200), remaining)
	assert.Equal(t, int64(200), getPoints(t, db, alice.Id))

	// 库存 -1
	var got models.ExchangeItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, int64(4), got.StockQuantity)

	// 兑换流水：负数金额、只记兑换人
	var record models.PointTransaction
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, models.KindExchange, record.Kind)
	assert.Equal(t, int64(-300), record.Amount)
	assert.Nil(t, record.FromUserID)
	require.NotNil(t, record.ToUserID)
	assert.Equal(t, alice.Id, *record.ToUserID)
}

func TestExchangeItem_LastUnit(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 500)
	bob := createTestUser(t, db, "bob", 500)
	item := createTestItem(t, db, "限定プラレール", 100, 1)

	_, _, err := svc.ExchangeItem(context.Background(), alice.Id, item.ID, "")
	require.NoError(t, err)

	_, _, err = svc.ExchangeItem(context.Background(), bob.Id, item.ID, "")
	assert.ErrorIs(t, err, ErrOutOfStock)

	// 抢空后 bob 分文未动
	assert.Equal(t, int64(500), getPoints(t, db, bob.Id))

	var got models.ExchangeItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, int64(0), got.StockQuantity)
}

func TestExchangeItem_UnlimitedStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 500)
	item := createTestItem(t, db, "会員限定壁紙", 50, -1)

	for i := 0; i < 3; i++ {
		_, _, err := svc.ExchangeItem(context.Background(), alice.Id, item.ID, "")
		require.NoError(t, err)
	}

	// 不限量商品的库存标记保持 -1
	var got models.ExchangeItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, int64(-1), got.StockQuantity)
	assert.Equal(t, int64(500-3*50), getPoints(t, db, alice.Id))
}

func TestExchangeItem_InsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 100)
	item := createTestItem(t, db, "限定プラレール", 300, 5)

	_, _, err := svc.ExchangeItem(context.Background(), alice.Id, item.ID, "")

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100), getPoints(t, db, alice.Id))

	// 扣库存的事务整体回滚
	var got models.ExchangeItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, int64(5), got.StockQuantity)

	var count int64
	require.NoError(t, db.Model(&models.ExchangeHistory{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestExchangeItem_Unavailable(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 500)
	item := &models.ExchangeItem{
		Name:           "下架商品",
		RequiredPoints: 100,
		StockQuantity:  5,
		IsAvailable:    false,
	}
	require.NoError(t, db.Create(item).Error)

	_, _, err := svc.ExchangeItem(context.Background(), alice.Id, item.ID, "")
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestExchangeItem_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 500)

	_, _, err := svc.ExchangeItem(context.Background(), alice.Id, 999, "")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListTransactions_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 1000)
	bob := createTestUser(t, db, "bob", 0)

	require.NoError(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 10, "", 0, "第一笔"))
	require.NoError(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 20, "", 0, "第二笔"))
	require.NoError(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 30, "", 0, "第三笔"))

	records, err := svc.ListTransactions(context.Background(), alice.Id, 50)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// 新的在前
	assert.Equal(t, int64(30), records[0].Amount)
	assert.Equal(t, int64(20), records[1].Amount)
	assert.Equal(t, int64(10), records[2].Amount)

	// 对手方昵称一并带出
	assert.Equal(t, "alice", records[0].FromUsername)
	assert.Equal(t, "bob", records[0].ToUsername)
}

func TestListTransactions_Limit(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 1000)
	bob := createTestUser(t, db, "bob", 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.SendTip(context.Background(), alice.Id, bob.Id, 10, "", 0, ""))
	}

	records, err := svc.ListTransactions(context.Background(), alice.Id, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLedger_Reconciliation(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	pointDAO := dao.NewPoint(db)

	// 两人都从 0 开始，全部变动走积分服务
	alice := createTestUser(t, db, "alice", 0)
	bob := createTestUser(t, db, "bob", 0)
	item := createTestItem(t, db, "壁紙", 10, -1)

	ctx := context.Background()
	_, _, err := svc.ClaimDailyBonus(ctx, alice.Id)
	require.NoError(t, err)
	_, _, err = svc.ClaimDailyBonus(ctx, bob.Id)
	require.NoError(t, err)
	require.NoError(t, svc.SendTip(ctx, alice.Id, bob.Id, 10, "", 0, ""))
	_, _, err = svc.ExchangeItem(ctx, bob.Id, item.ID, "")
	require.NoError(t, err)

	// 流水求和必须等于余额
	for _, u := range []*models.Users{alice, bob} {
		sum, err := pointDAO.SumByUser(ctx, u.Id)
		require.NoError(t, err)
		assert.Equal(t, getPoints(t, db, u.Id), sum, "ledger sum mismatch for %s", u.Username)
	}
	assert.Equal(t, int64(0), getPoints(t, db, alice.Id))
	assert.Equal(t, int64(10), getPoints(t, db, bob.Id))
}

func TestGetBalance(t *testing.T) {
	db := setupTestDB(t)
	svc := newPointService(db)
	alice := createTestUser(t, db, "alice", 42)

	points, err := svc.GetBalance(context.Background(), alice.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), points)

	_, err = svc.GetBalance(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
