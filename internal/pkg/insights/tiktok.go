package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// TikTokFetcher 调用 TikTok Business API 拉取商业账号洞察
type TikTokFetcher struct {
	client *resty.Client
}

func NewTikTokFetcher(baseURL string, timeout time.Duration) *TikTokFetcher {
	return &TikTokFetcher{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

type tiktokUserInsights struct {
	FollowerCount float64 `json:"follower_count"`
	ProfileViews  float64 `json:"profile_view"`
	VideoViews    float64 `json:"video_views"`
	Likes         float64 `json:"likes"`
	Comments      float64 `json:"comments"`
	Shares        float64 `json:"shares"`
}

type tiktokInsightsResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		User tiktokUserInsights `json:"user"`
	} `json:"data"`
}

func (s *TikTokFetcher) FetchInsights(ctx context.Context, externalID, accountType, accessToken string, from, to time.Time) (Insights, error) {
	var body tiktokInsightsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Access-Token", accessToken).
		SetQueryParams(map[string]string{
			"business_id": externalID,
			"start_date":  from.Format(time.DateOnly),
			"end_date":    to.Format(time.DateOnly),
			"fields":      `["follower_count","profile_view","video_views","likes","comments","shares"]`,
		}).
		SetResult(&body).
		Get("/business/get/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() || body.Code != 0 {
		return nil, fmt.Errorf("tiktok insights request failed: code=%d message=%s", body.Code, body.Message)
	}

	user := body.Data.User
	return Insights{
		"follower_count": user.FollowerCount,
		"profile_views":  user.ProfileViews,
		"video_views":    user.VideoViews,
		"likes":          user.Likes,
		"comments":       user.Comments,
		"shares":         user.Shares,
	}, nil
}
