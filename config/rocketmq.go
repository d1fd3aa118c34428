package config

type RocketMQConfig struct {
	// Enable 为 false 时不初始化生产者，通知走降级（直接丢弃）
	Enable     bool     `json:"enable" yaml:"enable"`
	NameServer []string `json:"nameserver" yaml:"nameserver"`

	Producer Producer `json:"producer" yaml:"producer"`
}

type Producer struct {
	Group string `json:"group" yaml:"group"`
	Retry int    `json:"retry" yaml:"retry"`
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
