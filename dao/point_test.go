package dao

import (
	"Railfan/models"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.PointTransaction{},
		&models.ExchangeItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, points int64) *models.Users {
	t.Helper()
	user := &models.Users{Username: username, DisplayName: username, Points: points}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPoint_Debit_Guard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoint(db)
	user := seedUser(t, db, "alice", 50)
	ctx := context.Background()

	// 余额充足：扣减生效
	ok, err := repo.Debit(ctx, db, user.Id, 50)
	require.NoError(t, err)
	assert.True(t, ok)

	// 余额归零后再扣：条件更新不命中
	ok, err = repo.Debit(ctx, db, user.Id, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	var got models.Users
	require.NoError(t, db.First(&got, user.Id).Error)
	assert.Equal(t, int64(0), got.Points)
}

func TestPoint_Credit_MissingUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoint(db)

	err := repo.Credit(context.Background(), db, 999, 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPoint_DailyBonusUniqueIndex(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoint(db)
	user := seedUser(t, db, "alice", 0)
	ctx := context.Background()

	date := "2026-08-28"
	first := &models.PointTransaction{
		ToUserID:  &user.Id,
		Amount:    10,
		Kind:      models.KindLogin,
		BonusDate: &date,
	}
	require.NoError(t, repo.CreateTransaction(ctx, db, first))

	// 同人同日第二条直接撞唯一键
	dup := &models.PointTransaction{
		ToUserID:  &user.Id,
		Amount:    10,
		Kind:      models.KindLogin,
		BonusDate: &date,
	}
	err := repo.CreateTransaction(ctx, db, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 投喂类流水 bonus_date 为 NULL，不受唯一索引限制
	bob := seedUser(t, db, "bob", 0)
	for i := 0; i < 2; i++ {
		tip := &models.PointTransaction{
			FromUserID: &bob.Id,
			ToUserID:   &user.Id,
			Amount:     20,
			Kind:       models.KindTip,
		}
		require.NoError(t, repo.CreateTransaction(ctx, db, tip))
	}

	claimed, err := repo.HasClaimedToday(ctx, user.Id, date)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.HasClaimedToday(ctx, user.Id, "2026-08-29")
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestExchange_DecrementStock_Guard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExchange(db)
	ctx := context.Background()

	item := &models.ExchangeItem{
		Name:           "限定商品",
		RequiredPoints: 100,
		StockQuantity:  1,
		IsAvailable:    true,
	}
	require.NoError(t, db.Create(item).Error)

	ok, err := repo.DecrementStock(ctx, db, item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 库存为 0 后条件更新不再命中
	ok, err = repo.DecrementStock(ctx, db, item.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	var got models.ExchangeItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, int64(0), got.StockQuantity)
}

func TestPoint_SumByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoint(db)
	alice := seedUser(t, db, "alice", 0)
	bob := seedUser(t, db, "bob", 0)
	ctx := context.Background()

	date := "2026-08-28"
	require.NoError(t, repo.CreateTransaction(ctx, db, &models.PointTransaction{
		ToUserID: &alice.Id, Amount: 10, Kind: models.KindLogin, BonusDate: &date,
	}))
	require.NoError(t, repo.CreateTransaction(ctx, db, &models.PointTransaction{
		FromUserID: &alice.Id, ToUserID: &bob.Id, Amount: 10, Kind: models.KindTip,
	}))
	require.NoError(t, repo.CreateTransaction(ctx, db, &models.PointTransaction{
		ToUserID: &bob.Id, Amount: -5, Kind: models.KindExchange,
	}))

	sum, err := repo.SumByUser(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	sum, err = repo.SumByUser(ctx, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), sum)
}
