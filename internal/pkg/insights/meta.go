package insights

import (
	"Pulseboard/internal/pkg/catalog"
	"Pulseboard/internal/pkg/consts"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// MetaFetcher 调用 Meta Graph API 拉取 Facebook 主页 / Instagram 商业账号洞察
type MetaFetcher struct {
	client *resty.Client
}

func NewMetaFetcher(baseURL string, timeout time.Duration) *MetaFetcher {
	return &MetaFetcher{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

type metaInsightValue struct {
	Value float64 `json:"value"`
}

type metaInsightEntry struct {
	Name   string             `json:"name"`
	Values []metaInsightValue `json:"values"`
}

type metaInsightsResponse struct {
	Data []metaInsightEntry `json:"data"`
}

func (s *MetaFetcher) FetchInsights(ctx context.Context, externalID, accountType, accessToken string, from, to time.Time) (Insights, error) {
	keys := make([]string, 0)
	for _, d := range catalog.MetricsFor(consts.PlatformMeta, accountType) {
		keys = append(keys, d.Key)
	}
	if len(keys) == 0 {
		return Insights{}, nil
	}

	var body metaInsightsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"metric":       strings.Join(keys, ","),
			"period":       "day",
			"since":        from.Format(time.DateOnly),
			"until":        to.Format(time.DateOnly),
			"access_token": accessToken,
		}).
		SetResult(&body).
		Get(fmt.Sprintf("/%s/insights", externalID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("meta insights request failed: %s", resp.Status())
	}

	result := make(Insights, len(body.Data))
	for _, entry := range body.Data {
		if len(entry.Values) == 0 {
			continue
		}
		// 取窗口内最后一个值
		result[entry.Name] = entry.Values[len(entry.Values)-1].Value
	}
	return result, nil
}
