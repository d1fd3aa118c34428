package rocketmq

import (
	"Railfan/config"
	"Railfan/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 初始化消息生产者。未启用或启动失败时返回 nil，
// 上层对 nil 生产者做降级处理（通知消息直接丢弃）。
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if cfg == nil || !cfg.Enable {
		return nil
	}

	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		log.L.Error("new rocketmq producer", zap.Error(err))
		return nil
	}
	if err := p.Start(); err != nil {
		log.L.Error("start rocketmq producer", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")

	return p
}

func SendMsg(p rocketmq.Producer, topic string, body []byte) error {
	msg := &primitive.Message{
		Topic: topic,
		Body:  body,
	}

	res, err := p.SendSync(context.Background(), msg)
	if err != nil {
		return err
	}
	log.L.Info("send message success", zap.Any("msg", res.MsgID))
	return nil
}
