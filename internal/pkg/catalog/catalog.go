package catalog

import "Pulseboard/internal/pkg/consts"

// 指标分类
const (
	CategoryAudience   = "Audience"
	CategoryReach      = "Reach"
	CategoryEngagement = "Engagement"
	CategoryGrowth     = "Growth"
	CategoryActions    = "Actions"
	CategoryContent    = "Content"
	CategoryVideo      = "Video"
)

// Descriptor 描述某个平台账号类型下可用的一项指标
type Descriptor struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

type pair struct {
	platform    string
	accountType string
}

// 静态指标注册表，key 为 (平台, 账号类型)
var registry = map[pair][]Descriptor{
	{consts.PlatformMeta, consts.AccountTypeFacebookPage}: {
		{Key: "page_follows", Label: "主页粉丝数", Category: CategoryAudience},
		{Key: "page_fan_adds", Label: "新增粉丝", Category: CategoryGrowth},
		{Key: "page_impressions", Label: "曝光量", Category: CategoryReach},
		{Key: "page_impressions_unique", Label: "触达人数", Category: CategoryReach},
		{Key: "page_post_engagements", Label: "帖子互动量", Category: CategoryEngagement},
		{Key: "page_views_total", Label: "主页浏览量", Category: CategoryActions},
		{Key: "page_video_views", Label: "视频播放量", Category: CategoryVideo},
	},
	{consts.PlatformMeta, consts.AccountTypeInstagramBusiness}: {
		{Key: "followers_count", Label: "粉丝数", Category: CategoryAudience},
		{Key: "follower_growth", Label: "粉丝增长", Category: CategoryGrowth},
		{Key: "reach", Label: "触达人数", Category: CategoryReach},
		{Key: "impressions", Label: "曝光量", Category: CategoryReach},
		{Key: "profile_views", Label: "主页访问量", Category: CategoryActions},
		{Key: "total_interactions", Label: "互动总量", Category: CategoryEngagement},
		{Key: "media_count", Label: "内容数量", Category: CategoryContent},
	},
	{consts.PlatformLinkedIn, consts.AccountTypeLinkedInOrg}: {
		{Key: "follower_count", Label: "关注者数", Category: CategoryAudience},
		{Key: "follower_gains", Label: "新增关注", Category: CategoryGrowth},
		{Key: "impression_count", Label: "曝光量", Category: CategoryReach},
		{Key: "unique_impressions_count", Label: "触达人数", Category: CategoryReach},
		{Key: "click_count", Label: "点击量", Category: CategoryActions},
		{Key: "engagement", Label: "互动率", Category: CategoryEngagement},
		{Key: "share_count", Label: "分享量", Category: CategoryEngagement},
	},
	{consts.PlatformYouTube, consts.AccountTypeYouTubeChannel}: {
		{Key: "subscriber_count", Label: "订阅者数", Category: CategoryAudience},
		{Key: "subscribers_gained", Label: "新增订阅", Category: CategoryGrowth},
		{Key: "view_count", Label: "观看次数", Category: CategoryVideo},
		{Key: "estimated_minutes_watched", Label: "观看时长(分钟)", Category: CategoryVideo},
		{Key: "likes", Label: "点赞量", Category: CategoryEngagement},
		{Key: "comments", Label: "评论量", Category: CategoryEngagement},
		{Key: "video_count", Label: "视频数量", Category: CategoryContent},
	},
	{consts.PlatformTikTok, consts.AccountTypeTikTokBusiness}: {
		{Key: "follower_count", Label: "粉丝数", Category: CategoryAudience},
		{Key: "follower_growth", Label: "粉丝增长", Category: CategoryGrowth},
		{Key: "video_views", Label: "视频播放量", Category: CategoryVideo},
		{Key: "profile_views", Label: "主页访问量", Category: CategoryActions},
		{Key: "likes", Label: "点赞量", Category: CategoryEngagement},
		{Key: "comments", Label: "评论量", Category: CategoryEngagement},
		{Key: "shares", Label: "分享量", Category: CategoryEngagement},
	},
}

// MetricsFor 返回指定平台账号类型下可用的指标列表，
// 未知组合返回空切片而不是错误，调用方需把空列表当作合法状态处理
func MetricsFor(platform, accountType string) []Descriptor {
	descriptors, ok := registry[pair{platform: platform, accountType: accountType}]
	if !ok {
		return []Descriptor{}
	}
	result := make([]Descriptor, len(descriptors))
	copy(result, descriptors)
	return result
}

// Has 判断指标 key 是否属于指定平台账号类型
func Has(platform, accountType, key string) bool {
	for _, d := range registry[pair{platform: platform, accountType: accountType}] {
		if d.Key == key {
			return true
		}
	}
	return false
}

// LabelFor 返回指标的展示名，找不到时回退为 key 本身
func LabelFor(platform, accountType, key string) string {
	for _, d := range registry[pair{platform: platform, accountType: accountType}] {
		if d.Key == key {
			return d.Label
		}
	}
	return key
}
