package llm

import (
	"Railfan/config"
	"Railfan/pkg/log"
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

type TagClient struct {
	client openai.Client
	model  string
}

func NewTagClient(cfg *config.LLMConfig) *TagClient {
	if cfg == nil || cfg.APIKey == "" {
		return nil
	}
	return &TagClient{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
		),
		model: cfg.Model,
	}
}

var tagPattern = regexp.MustCompile(`#[^\s#]+`)

// GenPostTags 根据作品图片生成推荐话题标签
func (t *TagClient) GenPostTags(ctx context.Context, imageURL string) []string {
	if t == nil {
		return make([]string, 0)
	}

	contentParts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfText: &openai.ChatCompletionContentPartTextParam{
				Text: "作为铁道模型社区运营专家，根据图片只输出5个适合该作品的话题标签，用#开头，用空格分隔，不要任何其他内容",
			},
		},
		{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageURL,
				},
			},
		},
	}
	startTime := time.Now()
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: contentParts,
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}
	completion, err := t.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen tag", zap.Error(err))
		return make([]string, 0)
	}
	content := completion.Choices[0].Message.Content

	tags := make([]string, 0, 5)
	for _, m := range tagPattern.FindAllString(content, -1) {
		tags = append(tags, strings.TrimPrefix(m, "#"))
	}
	log.L.Info("gen post tags",
		zap.Strings("tags", tags),
		zap.Duration("cost", time.Since(startTime)),
	)
	return tags
}
