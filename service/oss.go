package service

import (
	"Railfan/config"
	"Railfan/dao"
	"Railfan/models"
	ossclient "Railfan/pkg/oss"
	"Railfan/pkg/snowflake"
	"Railfan/types"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

type OssService struct {
	Client    *oss.Client
	Conf      *config.OssConfig
	ImageRepo *dao.Image
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 校验并上传用户图片，写 image 表
	UploadImage(ctx context.Context, userID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error)

	// DownloadReader 下载为流
	DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// SignURL 生成临时访问 URL（秒）
	SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)
}

func NewOssService(conf *config.OssConfig, imageRepo *dao.Image) IOssService {
	client, _ := ossclient.GetOssClient(conf)
	return &OssService{
		Client:    client,
		Conf:      conf,
		ImageRepo: imageRepo,
	}
}

func (s *OssService) UploadImage(ctx context.Context, userID uint64, header *multipart.FileHeader) (*types.UploadImageResp, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 要能 Seek，否则无法在读头校验、取尺寸后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// 1) MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 2) 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 3) 生成 ID / objectKey
	imageID := snowflake.GenID()
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("community/%s/%d%s",
		time.Now().Format("2006/01/02"),
		imageID,
		ext,
	)

	// 4) 上传 OSS（强制限制读取）
	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	// 5) 写 image 表（status=uploaded）
	img := models.Image{
		ID:          imageID,
		UserID:      userID,
		OssKey:      objectKey,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Status:      models.ImageStatusUploaded,
	}
	if err := s.ImageRepo.CreateImage(ctx, &img); err != nil {
		return nil, err
	}

	return &types.UploadImageResp{
		ImageID: imageID,
		Key:     objectKey,
		Url:     s.Conf.CdnDomain + "/" + objectKey,
		Width:   cfg.Width,
		Height:  cfg.Height,
	}, nil
}

func (s *OssService) DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// SignURL 生成临时访问 URL
func (s *OssService) SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error) {
	result, err := s.Client.Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}
	return result.URL, nil
}
