package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(QuestionService), "*"),
	wire.Bind(new(IQuestionService), new(*QuestionService)),

	wire.Struct(new(AnnouncementService), "*"),
	wire.Bind(new(IAnnouncementService), new(*AnnouncementService)),

	wire.Struct(new(RequestService), "*"),
	wire.Bind(new(IRequestService), new(*RequestService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(SearchService), "*"),
	wire.Bind(new(ISearchService), new(*SearchService)),

	NewOssService,
)
