package service

import (
	"Railfan/dao"
	"Railfan/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		LikeDAO:         dao.NewLikeDAO(db),
		PostDAO:         dao.NewPostDAO(db),
		QuestionDAO:     dao.NewQuestionDAO(db),
		AnswerDAO:       dao.NewAnswerDAO(db),
		AnnouncementDAO: dao.NewAnnouncementDAO(db),
	}
}

func TestLikeAndUnlike(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Like{}, &models.Post{}))
	svc := newLikeService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", 0)
	post := &models.Post{UserID: alice.Id, Title: "レイアウト公開", Images: datatypes.JSON(`[]`)}
	require.NoError(t, db.Create(post).Error)

	require.NoError(t, svc.Like(ctx, alice.Id, models.LikeTargetPost, post.ID))

	// 重复点赞：冲突
	assert.ErrorIs(t, svc.Like(ctx, alice.Id, models.LikeTargetPost, post.ID), ErrAlreadyLiked)

	// 点赞计数跟随
	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, int64(1), got.LikeCount)

	require.NoError(t, svc.Unlike(ctx, alice.Id, models.LikeTargetPost, post.ID))
	assert.ErrorIs(t, svc.Unlike(ctx, alice.Id, models.LikeTargetPost, post.ID), ErrNotLiked)

	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, int64(0), got.LikeCount)
}

func TestLike_TargetNotFound(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Like{}, &models.Post{}))
	svc := newLikeService(db)

	alice := createTestUser(t, db, "alice", 0)
	err := svc.Like(context.Background(), alice.Id, models.LikeTargetPost, 999)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}
