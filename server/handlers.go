package server

import (
	"Railfan/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	User         *handler.User
	Point        *handler.Point
	Exchange     *handler.Exchange
	Post         *handler.Post
	Question     *handler.Question
	Announcement *handler.Announcement
	Request      *handler.Request
	Like         *handler.Like
	Follow       *handler.Follow
	Search       *handler.Search
	Upload       *handler.Upload
}
