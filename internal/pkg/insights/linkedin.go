package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// LinkedInFetcher 调用 LinkedIn Organization API 拉取机构主页洞察
type LinkedInFetcher struct {
	client *resty.Client
}

func NewLinkedInFetcher(baseURL string, timeout time.Duration) *LinkedInFetcher {
	return &LinkedInFetcher{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("X-Restli-Protocol-Version", "2.0.0"),
	}
}

type linkedInTotalShareStatistics struct {
	ImpressionCount        float64 `json:"impressionCount"`
	UniqueImpressionsCount float64 `json:"uniqueImpressionsCount"`
	ClickCount             float64 `json:"clickCount"`
	Engagement             float64 `json:"engagement"`
	ShareCount             float64 `json:"shareCount"`
}

type linkedInStatsElement struct {
	TotalShareStatistics linkedInTotalShareStatistics `json:"totalShareStatistics"`
	FollowerGains        struct {
		OrganicFollowerGain float64 `json:"organicFollowerGain"`
		PaidFollowerGain    float64 `json:"paidFollowerGain"`
	} `json:"followerGains"`
}

type linkedInStatsResponse struct {
	Elements []linkedInStatsElement `json:"elements"`
}

type linkedInNetworkSizeResponse struct {
	FirstDegreeSize float64 `json:"firstDegreeSize"`
}

func (s *LinkedInFetcher) FetchInsights(ctx context.Context, externalID, accountType, accessToken string, from, to time.Time) (Insights, error) {
	orgURN := fmt.Sprintf("urn:li:organization:%s", externalID)

	var stats linkedInStatsResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParams(map[string]string{
			"q":                              "organizationalEntity",
			"organizationalEntity":           orgURN,
			"timeIntervals.timeGranularityType": "DAY",
			"timeIntervals.timeRange.start":  fmt.Sprintf("%d", from.UnixMilli()),
			"timeIntervals.timeRange.end":    fmt.Sprintf("%d", to.UnixMilli()),
		}).
		SetResult(&stats).
		Get("/organizationalEntityShareStatistics")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("linkedin share statistics request failed: %s", resp.Status())
	}

	result := make(Insights)
	for _, element := range stats.Elements {
		result["impression_count"] += element.TotalShareStatistics.ImpressionCount
		result["unique_impressions_count"] += element.TotalShareStatistics.UniqueImpressionsCount
		result["click_count"] += element.TotalShareStatistics.ClickCount
		result["engagement"] = element.TotalShareStatistics.Engagement
		result["share_count"] += element.TotalShareStatistics.ShareCount
		result["follower_gains"] += element.FollowerGains.OrganicFollowerGain + element.FollowerGains.PaidFollowerGain
	}

	// 关注者总数走单独的 networkSizes 端点，失败时不影响已取到的统计
	var network linkedInNetworkSizeResponse
	resp, err = s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("edgeType", "COMPANY_FOLLOWED_BY_MEMBER").
		SetResult(&network).
		Get(fmt.Sprintf("/networkSizes/%s", orgURN))
	if err == nil && !resp.IsError() {
		result["follower_count"] = network.FirstDegreeSize
	}

	return result, nil
}
