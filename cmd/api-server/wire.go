//go:build wireinject
// +build wireinject

package main

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/handler"
	"Railfan/pkg/client"
	"Railfan/pkg/database"
	"Railfan/pkg/llm"
	"Railfan/pkg/rocketmq"
	"Railfan/server"
	"Railfan/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		config.ProvideLLMConfig,
		rocketmq.InitProducer,
		llm.NewTagClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.Exchange), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Question), "*"),
		wire.Struct(new(handler.Announcement), "*"),
		wire.Struct(new(handler.Request), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Search), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
