package consts

// 平台标识
const (
	PlatformMeta     = "meta"
	PlatformLinkedIn = "linkedin"
	PlatformYouTube  = "youtube"
	PlatformTikTok   = "tiktok"
	PlatformAll      = "all"
)

// 平台账号类型
const (
	AccountTypeFacebookPage      = "facebook_page"
	AccountTypeInstagramBusiness = "instagram_business"
	AccountTypeLinkedInOrg       = "organization"
	AccountTypeYouTubeChannel    = "channel"
	AccountTypeTikTokBusiness    = "business"
)

// 组件类型
const (
	WidgetTypeMetricCard = "metric_card"
	WidgetTypeLineChart  = "line_chart"
	WidgetTypeBarChart   = "bar_chart"
	WidgetTypePieChart   = "pie_chart"
)

// 组件尺寸
const (
	WidgetSizeSmall  = "small"
	WidgetSizeMedium = "medium"
	WidgetSizeLarge  = "large"
)

// 数据来源标记：snapshot 为真实快照，estimated 为估算的展示值
const (
	DataSourceSnapshot  = "snapshot"
	DataSourceEstimated = "estimated"
)

// 报告状态
const (
	ReportStatusPending = "pending"
	ReportStatusReady   = "ready"
	ReportStatusFailed  = "failed"
)

// 时间序列单次最多返回的点数
const MaxSeriesPoints = 30
