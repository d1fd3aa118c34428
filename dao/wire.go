package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewPoint,
	NewExchange,
	NewPostDAO,
	NewQuestionDAO,
	NewAnswerDAO,
	NewAnnouncementDAO,
	NewCommentDAO,
	NewRequestDAO,
	NewRequestSupportDAO,
	NewLikeDAO,
	NewFollowDAO,
	NewImage,
)
