package catalog

import (
	"Pulseboard/internal/pkg/consts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsFor(t *testing.T) {
	t.Run("已知平台账号类型返回指标列表", func(t *testing.T) {
		metrics := MetricsFor(consts.PlatformMeta, consts.AccountTypeFacebookPage)
		assert.NotEmpty(t, metrics)
		for _, m := range metrics {
			assert.NotEmpty(t, m.Key)
			assert.NotEmpty(t, m.Label)
			assert.NotEmpty(t, m.Category)
		}
	})

	t.Run("未知组合返回空切片而不是 nil", func(t *testing.T) {
		metrics := MetricsFor("weibo", "official")
		assert.NotNil(t, metrics)
		assert.Empty(t, metrics)
	})

	t.Run("平台与账号类型交叉不匹配时为空", func(t *testing.T) {
		assert.Empty(t, MetricsFor(consts.PlatformMeta, consts.AccountTypeYouTubeChannel))
	})

	t.Run("返回的是拷贝，修改不影响注册表", func(t *testing.T) {
		metrics := MetricsFor(consts.PlatformTikTok, consts.AccountTypeTikTokBusiness)
		metrics[0].Key = "mutated"
		again := MetricsFor(consts.PlatformTikTok, consts.AccountTypeTikTokBusiness)
		assert.NotEqual(t, "mutated", again[0].Key)
	})
}

func TestHas(t *testing.T) {
	assert.True(t, Has(consts.PlatformYouTube, consts.AccountTypeYouTubeChannel, "subscriber_count"))
	assert.False(t, Has(consts.PlatformYouTube, consts.AccountTypeYouTubeChannel, "page_follows"))
	assert.False(t, Has("weibo", "official", "followers"))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "粉丝数", LabelFor(consts.PlatformTikTok, consts.AccountTypeTikTokBusiness, "follower_count"))
	// 找不到时回退为 key 本身
	assert.Equal(t, "unknown_metric", LabelFor(consts.PlatformTikTok, consts.AccountTypeTikTokBusiness, "unknown_metric"))
}

func TestIsValidCombination(t *testing.T) {
	cases := []struct {
		widgetType string
		size       string
		want       bool
	}{
		{consts.WidgetTypeMetricCard, consts.WidgetSizeSmall, true},
		{consts.WidgetTypeMetricCard, consts.WidgetSizeMedium, true},
		{consts.WidgetTypeMetricCard, consts.WidgetSizeLarge, false},
		{consts.WidgetTypeLineChart, consts.WidgetSizeSmall, false},
		{consts.WidgetTypeLineChart, consts.WidgetSizeMedium, true},
		{consts.WidgetTypeLineChart, consts.WidgetSizeLarge, true},
		{consts.WidgetTypeBarChart, consts.WidgetSizeSmall, false},
		{consts.WidgetTypeBarChart, consts.WidgetSizeMedium, true},
		{consts.WidgetTypeBarChart, consts.WidgetSizeLarge, true},
		{consts.WidgetTypePieChart, consts.WidgetSizeSmall, false},
		{consts.WidgetTypePieChart, consts.WidgetSizeMedium, true},
		{consts.WidgetTypePieChart, consts.WidgetSizeLarge, false},
		{"gauge", consts.WidgetSizeMedium, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsValidCombination(c.widgetType, c.size), "%s/%s", c.widgetType, c.size)
	}
}

func TestIsKnownWidgetType(t *testing.T) {
	assert.True(t, IsKnownWidgetType(consts.WidgetTypePieChart))
	assert.False(t, IsKnownWidgetType("gauge"))
	assert.False(t, IsKnownWidgetType(""))
}
