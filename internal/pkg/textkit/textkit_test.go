package textkit

import (
	"errors"
	"testing"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSigner struct {
	err      error
	gotKey   string
	gotOpts  int
	gotValid int64
}

func (s *fakeSigner) SignURL(objectKey string, method oss.HTTPMethod, expiredInSec int64, options ...oss.Option) (string, error) {
	s.gotKey = objectKey
	s.gotOpts = len(options)
	s.gotValid = expiredInSec
	if s.err != nil {
		return "", s.err
	}
	return "https://signed.example.com/" + objectKey + "?sig=1", nil
}

func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"No mentions", "plain text", nil},
		{"Duplicates collapse", "hello @alice @alice, cc @bob", []string{"alice", "bob"}},
		{"Leading mention", "@carol look", []string{"carol"}},
		{"Email is not a mention", "mail me at dev@example.com", nil},
		{"Punctuation ends name", "thanks @dave! and @erin:", []string{"dave", "erin"}},
		{"Chinese text around", "你好@frank_1，欢迎", []string{"frank_1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMentions(tt.text))
		})
	}
}

func TestRenderContent(t *testing.T) {
	k := New(nil, "", 0, zap.NewNop())

	assert.Equal(t, "", k.RenderContent(""))
	assert.Contains(t, k.RenderContent("**bold**"), "<strong>bold</strong>")
	assert.NotContains(t, k.RenderContent("hi <script>alert(1)</script>"), "<script>")

	unsafe := k.RenderContent("[click](javascript:alert(document.cookie))")
	assert.NotContains(t, unsafe, `href="javascript:`)
	assert.Contains(t, unsafe, "click")
	assert.NotContains(t, k.RenderContent("[x](vbscript:msgbox(1))"), `href="vbscript:`)

	safe := k.RenderContent("[site](https://example.com)")
	assert.Contains(t, safe, `href="https://example.com"`)
	assert.Contains(t, safe, `rel="nofollow"`)
}

func TestAvatarURL(t *testing.T) {
	t.Run("Empty uses default", func(t *testing.T) {
		k := New(nil, "", 0, zap.NewNop())
		assert.Equal(t, DefaultAvatar, k.AvatarURL("", ImageSmall))
	})

	t.Run("Absolute url kept", func(t *testing.T) {
		k := New(nil, "", 0, zap.NewNop())
		assert.Equal(t, "https://cdn.example.com/a.png", k.AvatarURL("https://cdn.example.com/a.png", ImageSmall))
	})

	t.Run("Public base with resize", func(t *testing.T) {
		k := New(nil, "https://img.example.com/", 0, zap.NewNop())
		assert.Equal(t,
			"https://img.example.com/avatar/1.png?x-oss-process=image/resize,m_fill,w_48,h_48",
			k.AvatarURL("avatar/1.png", ImageSmall))
	})

	t.Run("Signed when signer configured", func(t *testing.T) {
		s := &fakeSigner{}
		k := New(s, "", 600, zap.NewNop())
		assert.Equal(t, "https://signed.example.com/avatar/1.png?sig=1", k.AvatarURL("avatar/1.png", ImageSmall))
		assert.Equal(t, "avatar/1.png", s.gotKey)
		assert.Equal(t, 1, s.gotOpts)
		assert.Equal(t, int64(600), s.gotValid)
	})

	t.Run("Signer failure falls back", func(t *testing.T) {
		s := &fakeSigner{err: errors.New("denied")}
		k := New(s, "", 0, zap.NewNop())
		assert.Equal(t, DefaultAvatar, k.AvatarURL("avatar/1.png", ImageSmall))
	})
}
