package dto

// SeriesPointDTO 时间序列中的一个点
type SeriesPointDTO struct {
	Date  string  `json:"date"`  // 格式化后的日期：2026-01-07
	Value float64 `json:"value"` // 当日指标数值
}

// WidgetDataDTO 组件数据解析结果。
// Source 为 estimated 时序列或上期值含估算成分，仅用于展示，
// 不应当作真实历史数据使用
type WidgetDataDTO struct {
	WidgetID uint64            `json:"widgetId"`
	Metric   string            `json:"metric"`
	Current  float64           `json:"current"`
	Previous float64           `json:"previous"`
	Change   float64           `json:"change"` // 环比变化百分比，保留一位小数
	Series   []*SeriesPointDTO `json:"series"`
	Source   string            `json:"source"` // snapshot | estimated
}
