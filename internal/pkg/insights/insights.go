package insights

import (
	"context"
	"fmt"
	"time"
)

// Insights 平台返回的指标集合，key 与指标目录中的 key 一致
type Insights map[string]float64

// Fetcher 单个平台的洞察数据抓取契约。
// 对平台 API 只做一次尽力而为的请求，不重试不退避，
// 失败以 error 返回，由上层决定降级策略
type Fetcher interface {
	FetchInsights(ctx context.Context, externalID, accountType, accessToken string, from, to time.Time) (Insights, error)
}

// Registry 按平台标识分发 Fetcher，新增平台只需注册，无需改动解析流程
type Registry struct {
	fetchers map[string]Fetcher
}

func NewRegistry() *Registry {
	return &Registry{
		fetchers: make(map[string]Fetcher),
	}
}

func (s *Registry) Register(platform string, fetcher Fetcher) {
	s.fetchers[platform] = fetcher
}

func (s *Registry) Fetch(ctx context.Context, platform, externalID, accountType, accessToken string, from, to time.Time) (Insights, error) {
	fetcher, ok := s.fetchers[platform]
	if !ok {
		return nil, fmt.Errorf("no insight fetcher registered for platform %s", platform)
	}
	return fetcher.FetchInsights(ctx, externalID, accountType, accessToken, from, to)
}
