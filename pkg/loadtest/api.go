package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// TopicAPI 帖子接口的压测请求
type TopicAPI struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewTopicAPI token 为空时只能压测只读接口
func NewTopicAPI(baseURL, token string) *TopicAPI {
	return &TopicAPI{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Health 健康检查
func (a *TopicAPI) Health() RequestFunc {
	return a.get("/health")
}

// HotTopics 热门列表第 1 页
func (a *TopicAPI) HotTopics(nid int64) RequestFunc {
	return a.get(fmt.Sprintf("/topics/hot?nid=%d", nid))
}

// RecentTopics 最新列表，页码在 [1, pages] 内随机
func (a *TopicAPI) RecentTopics(pages int) RequestFunc {
	if pages <= 0 {
		pages = 1
	}
	return func(ctx context.Context) error {
		return a.get(fmt.Sprintf("/topics/recent?page=%d", rand.Intn(pages)+1))(ctx)
	}
}

// TopicDetail 详情页，tid 在 [1, maxTID] 内随机，404 视为正常
func (a *TopicAPI) TopicDetail(maxTID int64) RequestFunc {
	if maxTID <= 0 {
		maxTID = 1
	}
	return func(ctx context.Context) error {
		path := fmt.Sprintf("/topics/%d", rand.Int63n(maxTID)+1)
		return a.do(ctx, http.MethodGet, path, nil, http.StatusOK, http.StatusNotFound)
	}
}

// CreateTopic 发帖，需要 token
func (a *TopicAPI) CreateTopic(nid int64) RequestFunc {
	return func(ctx context.Context) error {
		body := map[string]interface{}{
			"nid":     nid,
			"title":   fmt.Sprintf("loadtest %d", time.Now().UnixNano()),
			"content": "generated by perf_test",
		}
		return a.do(ctx, http.MethodPost, "/topics", body, http.StatusOK)
	}
}

func (a *TopicAPI) get(path string) RequestFunc {
	return func(ctx context.Context) error {
		return a.do(ctx, http.MethodGet, path, nil, http.StatusOK)
	}
}

func (a *TopicAPI) do(ctx context.Context, method, path string, body interface{}, okCodes ...int) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	for _, code := range okCodes {
		if resp.StatusCode == code {
			return nil
		}
	}
	return fmt.Errorf("%s %s: unexpected status code %d", method, path, resp.StatusCode)
}
