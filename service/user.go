package service

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/models"
	"Railfan/pkg/jwt"
	"Railfan/types"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Config    *config.Config
	UserDAO   *dao.Users
	FollowDAO *dao.FollowDAO
}

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterReq) (*types.LoginResp, error)
	Login(ctx context.Context, req *types.LoginReq) (*types.LoginResp, error)
	GetProfile(ctx context.Context, userID uint64) (*types.UserProfileResp, error)
	ListUsers(ctx context.Context, limit int) ([]models.Users, error)
	UpdateProfile(ctx context.Context, userID uint64, updates map[string]interface{}) error
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterReq) (*types.LoginResp, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}
	user := &models.Users{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		// 并发注册同名时交给唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.issueToken(user)
}

func (s *UserService) Login(ctx context.Context, req *types.LoginReq) (*types.LoginResp, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.Users) (*types.LoginResp, error) {
	expire := time.Duration(s.Config.Jwt.Expire) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.Id, user.Username, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.LoginResp{
		UserID:      user.Id,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AccessToken: token,
		ExpiresIn:   s.Config.Jwt.Expire,
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.UserProfileResp, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""

	followerCount, err := s.FollowDAO.GetFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.FollowDAO.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.UserProfileResp{
		User:           user,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit int) ([]models.Users, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	users, err := s.UserDAO.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, updates map[string]interface{}) error {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrUserNotFound
	}
	return s.UserDAO.Update(ctx, userID, updates)
}
