package insights

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// YouTubeFetcher 调用 YouTube Analytics API 拉取频道洞察
type YouTubeFetcher struct {
	client *resty.Client
}

func NewYouTubeFetcher(baseURL string, timeout time.Duration) *YouTubeFetcher {
	return &YouTubeFetcher{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

type youtubeColumnHeader struct {
	Name string `json:"name"`
}

type youtubeReportResponse struct {
	ColumnHeaders []youtubeColumnHeader `json:"columnHeaders"`
	Rows          [][]any               `json:"rows"`
}

// Analytics 报表的列名 → 指标目录 key
var youtubeMetricKeys = map[string]string{
	"views":                   "view_count",
	"estimatedMinutesWatched": "estimated_minutes_watched",
	"likes":                   "likes",
	"comments":                "comments",
	"subscribersGained":       "subscribers_gained",
}

func (s *YouTubeFetcher) FetchInsights(ctx context.Context, externalID, accountType, accessToken string, from, to time.Time) (Insights, error) {
	metrics := make([]string, 0, len(youtubeMetricKeys))
	for name := range youtubeMetricKeys {
		metrics = append(metrics, name)
	}

	var body youtubeReportResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"ids":       fmt.Sprintf("channel==%s", externalID),
			"startDate": from.Format(time.DateOnly),
			"endDate":   to.Format(time.DateOnly),
			"metrics":   strings.Join(metrics, ","),
		}).
		SetResult(&body).
		Get("/reports")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("youtube analytics request failed: %s", resp.Status())
	}

	result := make(Insights)
	if len(body.Rows) == 0 {
		return result, nil
	}
	// 无日期维度时只有一行聚合值，列顺序与 columnHeaders 对应
	row := body.Rows[0]
	for i, header := range body.ColumnHeaders {
		key, ok := youtubeMetricKeys[header.Name]
		if !ok || i >= len(row) {
			continue
		}
		result[key] = toFloat(row[i])
	}
	return result, nil
}

func toFloat(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int64:
		return float64(value)
	case string:
		f, _ := strconv.ParseFloat(value, 64)
		return f
	default:
		return 0
	}
}
