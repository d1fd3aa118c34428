package handler

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/models"
	"Railfan/pkg/jwt"
	"Railfan/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
		&models.ExchangeHistory{},
	))

	cfg := &config.Config{
		App: &config.App{HashSalt: "test-salt"},
		Jwt: &config.Jwt{Secret: testSecret, Expire: 3600},
	}
	svc := &service.PointService{
		Config:      cfg,
		DB:          db,
		PointDAO:    dao.NewPoint(db),
		UserDAO:     dao.NewUsers(db),
		ExchangeDAO: dao.NewExchange(db),
	}

	r := gin.New()
	api := r.Group("/api")
	point := &Point{Config: cfg, PointService: svc}
	point.RegisterRouter(api)
	exchange := &Exchange{Config: cfg, PointService: svc}
	exchange.RegisterRouter(api)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, username string, points int64) *models.Users {
	t.Helper()
	user := &models.Users{Username: username, DisplayName: username, Points: points}
	require.NoError(t, db.Create(user).Error)
	return user
}

func authToken(t *testing.T, user *models.Users) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(testSecret), user.Id, user.Username, "access", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBalanceEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	alice := seedUser(t, db, "alice", 120)

	w := doRequest(r, http.MethodGet, "/api/v1/points/balance", authToken(t, alice), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Code int `json:"code"`
		Data struct {
			Points int64 `json:"points"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, int64(120), resp.Data.Points)
}

func TestBalanceEndpoint_Unauthorized(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/points/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDailyBonusEndpoint_Conflict(t *testing.T) {
	r, db := setupRouter(t)
	alice := seedUser(t, db, "alice", 0)
	token := authToken(t, alice)

	w := doRequest(r, http.MethodPost, "/api/v1/points/daily-bonus", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Points int64 `json:"points"`
			Bonus  int64 `json:"bonus"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Data.Bonus)
	assert.Equal(t, int64(10), resp.Data.Points)

	// 同一天再领：409
	w = doRequest(r, http.MethodPost, "/api/v1/points/daily-bonus", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTipEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	alice := seedUser(t, db, "alice", 100)
	bob := seedUser(t, db, "bob", 0)

	w := doRequest(r, http.MethodPost, "/api/v1/points/tip", authToken(t, alice), gin.H{
		"to_user_id": bob.Id,
		"amount":     30,
		"message":    "ナイス車両！",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 非法数额：400
	w = doRequest(r, http.MethodPost, "/api/v1/points/tip", authToken(t, alice), gin.H{
		"to_user_id": bob.Id,
		"amount":     5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 余额不足：400
	w = doRequest(r, http.MethodPost, "/api/v1/points/tip", authToken(t, alice), gin.H{
		"to_user_id": bob.Id,
		"amount":     1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionsEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	alice := seedUser(t, db, "alice", 100)
	bob := seedUser(t, db, "bob", 0)

	w := doRequest(r, http.MethodPost, "/api/v1/points/tip", authToken(t, alice), gin.H{
		"to_user_id": bob.Id,
		"amount":     30,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/points/transactions", authToken(t, bob), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Amount       int64  `json:"amount"`
			Kind         string `json:"kind"`
			FromUsername string `json:"from_username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(30), resp.Data[0].Amount)
	assert.Equal(t, "tip", resp.Data[0].Kind)
	assert.Equal(t, "alice", resp.Data[0].FromUsername)
}

func TestExchangeEndpoint(t *testing.T) {
	r, db := setupRouter(t)
	alice := seedUser(t, db, "alice", 500)
	item := &models.ExchangeItem{
		Name:           "限定プラレール",
		Category:       "goods",
		RequiredPoints: 300,
		StockQuantity:  1,
		IsAvailable:    true,
	}
	require.NoError(t, db.Create(item).Error)

	// 商品列表免登录
	w := doRequest(r, http.MethodGet, "/api/v1/exchange/items", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/exchange", authToken(t, alice), gin.H{
		"item_id":       item.ID,
		"shipping_info": "東京都...",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			OrderCode       string `json:"order_code"`
			RemainingPoints int64  `json:"remaining_points"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.OrderCode)
	assert.Equal(t, int64(200), resp.Data.RemainingPoints)

	// 库存兑完：400
	bob := seedUser(t, db, "bob", 500)
	w = doRequest(r, http.MethodPost, "/api/v1/exchange", authToken(t, bob), gin.H{
		"item_id": item.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
