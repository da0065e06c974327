// Package textkit 帖子流程用到的文本工具：@提及、markdown 渲染、头像地址
package textkit

import (
	"community_bbs/internal/pkg/config"
	"fmt"
	"regexp"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/russross/blackfriday/v2"
	"go.uber.org/zap"
)

// ImageSize 头像尺寸
type ImageSize int

const (
	ImageSmall  ImageSize = 48
	ImageNormal ImageSize = 73
	ImageLarge  ImageSize = 120
)

// DefaultAvatar 用户未设置头像时使用
const DefaultAvatar = "/static/img/avatar/default.png"

var mentionPattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9_@])@([A-Za-z0-9_-]{1,32})`)

// URLSigner *oss.Bucket 满足该接口
type URLSigner interface {
	SignURL(objectKey string, method oss.HTTPMethod, expiredInSec int64, options ...oss.Option) (string, error)
}

// TextKit 文本工具
type TextKit struct {
	signer     URLSigner
	publicBase string
	signExpire int64
	log        *zap.Logger
}

// New signer 为空时头像走公开地址
func New(signer URLSigner, publicBase string, signExpire int64, log *zap.Logger) *TextKit {
	if signExpire <= 0 {
		signExpire = 3600
	}
	return &TextKit{
		signer:     signer,
		publicBase: strings.TrimRight(publicBase, "/"),
		signExpire: signExpire,
		log:        log,
	}
}

// NewFromConfig 配置了 OSS 凭证时使用私有 bucket 签名
func NewFromConfig(cfg config.OSSConfig, log *zap.Logger) (*TextKit, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.BucketName == "" {
		return New(nil, cfg.PublicBaseURL, cfg.SignExpire, log), nil
	}

	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, err
	}
	return New(bucket, cfg.PublicBaseURL, cfg.SignExpire, log), nil
}

// ExtractMentions 提取 @用户名，按首次出现顺序去重
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ExtractMentions 见包级函数
func (k *TextKit) ExtractMentions(text string) []string {
	return ExtractMentions(text)
}

// RenderContent markdown 转 HTML，原始 HTML 标签被丢弃，非安全协议的链接不输出 href
func (k *TextKit) RenderContent(raw string) string {
	if raw == "" {
		return ""
	}
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML | blackfriday.Safelink | blackfriday.NofollowLinks,
	})
	out := blackfriday.Run([]byte(raw),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak),
		blackfriday.WithRenderer(renderer),
	)
	return string(out)
}

// AvatarURL 头像地址
func (k *TextKit) AvatarURL(raw string, size ImageSize) string {
	if raw == "" {
		return DefaultAvatar
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "/") {
		return raw
	}

	process := fmt.Sprintf("image/resize,m_fill,w_%d,h_%d", size, size)
	if k.signer != nil {
		signed, err := k.signer.SignURL(raw, oss.HTTPGet, k.signExpire, oss.Process(process))
		if err == nil {
			return signed
		}
		k.log.Warn("sign avatar url failed", zap.String("key", raw), zap.Error(err))
	}
	if k.publicBase != "" {
		return fmt.Sprintf("%s/%s?x-oss-process=%s", k.publicBase, raw, process)
	}
	return DefaultAvatar
}
