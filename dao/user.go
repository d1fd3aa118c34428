package dao

import (
	"Railfan/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// List 用户列表，按注册时间倒序
func (u *Users) List(ctx context.Context, limit int) ([]models.Users, error) {
	var users []models.Users
	err := u.Db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// Search 按用户名/昵称模糊搜索
func (u *Users) Search(ctx context.Context, keyword string, limit int) ([]models.Users, error) {
	var users []models.Users
	kw := "%" + keyword + "%"
	err := u.Db.WithContext(ctx).
		Where("username LIKE ? OR display_name LIKE ?", kw, kw).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Updates(updates).Error
}
