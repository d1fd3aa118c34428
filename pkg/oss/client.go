package oss

import (
	"Railfan/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

func GetOssClient(conf *config.OssConfig) (*oss.Client, error) {
	provider := credentials.NewStaticCredentialsProvider(
		conf.AccessKeyID,
		conf.AccessKeySecret,
	)
	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).WithRegion(conf.Region)
	client := oss.NewClient(cfg)
	return client, nil
}
