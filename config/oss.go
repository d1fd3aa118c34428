package config

type OssConfig struct {
	Endpoint         string `json:"endpoint" yaml:"endpoint"`
	InternalEndpoint string `json:"internal_endpoint" yaml:"internal_endpoint"`
	Region           string `json:"region" yaml:"region"`
	Bucket           string `json:"bucket" yaml:"bucket"`
	AccessKeyID      string `json:"ak" yaml:"ak"`
	AccessKeySecret  string `json:"sk" yaml:"sk"`
	// CdnDomain 对外访问图片时拼接的域名
	CdnDomain string `json:"cdn_domain" yaml:"cdn_domain"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
