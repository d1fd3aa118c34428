package service

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/models"
	"Railfan/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return &UserService{
		Config: &config.Config{
			Jwt: &config.Jwt{Secret: "test-secret", Expire: 3600},
		},
		UserDAO:   dao.NewUsers(db),
		FollowDAO: dao.NewFollowDAO(db),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Follow{}))
	svc := newUserService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &types.RegisterReq{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "alice", resp.Username)
	// 未填昵称时回落到用户名
	assert.Equal(t, "alice", resp.DisplayName)

	// 用户名占用
	_, err = svc.Register(ctx, &types.RegisterReq{
		Username: "alice",
		Password: "password456",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// 登录成功
	login, err := svc.Login(ctx, &types.LoginReq{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, login.UserID)

	// 密码错误
	_, err = svc.Login(ctx, &types.LoginReq{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredentials)

	// 不存在的用户
	_, err = svc.Login(ctx, &types.LoginReq{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestGetProfile_FollowCounts(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Follow{}))
	svc := newUserService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", 0)
	bob := createTestUser(t, db, "bob", 0)
	carol := createTestUser(t, db, "carol", 0)

	require.NoError(t, db.Create(&models.Follow{FollowerID: bob.Id, FollowingID: alice.Id}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: carol.Id, FollowingID: alice.Id}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: alice.Id, FollowingID: bob.Id}).Error)

	profile, err := svc.GetProfile(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.FollowerCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.Empty(t, profile.User.PasswordHash)

	_, err = svc.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
