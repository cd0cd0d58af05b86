package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrDashboardNotFound = errors.New("看板不存在")
	ErrWidgetNotFound    = errors.New("组件不存在")
	ErrAccountNotFound   = errors.New("账号不存在或未激活")
	ErrMissingCredential = errors.New("账号缺少访问凭证")
	ErrReportNotFound    = errors.New("报告不存在")
	ErrInvalidSizeCombo  = errors.New("组件类型与尺寸不匹配")
	ErrUnknownMetric     = errors.New("指标不在可用范围内")
	ErrUnknownPlatform   = errors.New("不支持的平台")
	ErrReportNotReady    = errors.New("报告尚未生成完成")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrDashboardNotFound: NotFound,
	ErrWidgetNotFound:    NotFound,
	ErrAccountNotFound:   NotFound,
	ErrMissingCredential: BadRequest,
	ErrReportNotFound:    NotFound,
	ErrInvalidSizeCombo:  BadRequest,
	ErrUnknownMetric:     BadRequest,
	ErrUnknownPlatform:   BadRequest,
	ErrReportNotReady:    BadRequest,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
