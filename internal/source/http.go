package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPFetcher 从远程地址拉取 JSON 数据集：GET <baseURL>/<path>
type HTTPFetcher struct {
	httpClient *resty.Client
}

const (
	fetchTimeout = 30 * time.Second
	retryMaxWait = 5 * time.Second
)

// NewHTTPFetcher 创建 HTTP 拉取器
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(fetchTimeout).
		SetRetryCount(3).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(retryMaxWait).
		SetHeader("Accept", "application/json")

	return &HTTPFetcher{httpClient: client}
}

func (h *HTTPFetcher) Fetch(ctx context.Context, ds Dataset) ([]byte, error) {
	resp, err := h.httpClient.R().
		SetContext(ctx).
		Get("/" + strings.TrimLeft(ds.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset %s: %w", ds.Name, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch dataset %s: status %d", ds.Name, resp.StatusCode())
	}
	return resp.Body(), nil
}
