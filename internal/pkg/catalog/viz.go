package catalog

import "Pulseboard/internal/pkg/consts"

// 各组件类型允许的尺寸
var allowedSizes = map[string][]string{
	consts.WidgetTypeMetricCard: {consts.WidgetSizeSmall, consts.WidgetSizeMedium},
	consts.WidgetTypeLineChart:  {consts.WidgetSizeMedium, consts.WidgetSizeLarge},
	consts.WidgetTypeBarChart:   {consts.WidgetSizeMedium, consts.WidgetSizeLarge},
	consts.WidgetTypePieChart:   {consts.WidgetSizeMedium},
}

// IsValidCombination 校验组件类型与尺寸组合是否合法，
// 非法组合由调用方拒绝请求，不做静默降级
func IsValidCombination(widgetType, size string) bool {
	for _, s := range allowedSizes[widgetType] {
		if s == size {
			return true
		}
	}
	return false
}

// IsKnownWidgetType 判断组件类型是否存在
func IsKnownWidgetType(widgetType string) bool {
	_, ok := allowedSizes[widgetType]
	return ok
}
