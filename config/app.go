package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt 用于生成兑换单号等对外展示的短码
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// Expire 访问令牌有效期（秒）
	Expire int `json:"expire" yaml:"expire"`
}
