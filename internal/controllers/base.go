package controllers

import (
	"context"
	"time"
)

// HandlerType 区分不同类型请求的超时策略。
type HandlerType int

const (
	// HandlerTypeQuery 为 JSON 查询类请求。
	HandlerTypeQuery HandlerType = iota
	// HandlerTypeUpload 为文件上传类请求。
	HandlerTypeUpload
)

const (
	defaultQueryTimeout  = 30 * time.Second
	defaultUploadTimeout = 60 * time.Second
)

// HandlerTimeouts 配置各类请求的超时时间，零值使用默认值。
type HandlerTimeouts struct {
	Query  time.Duration
	Upload time.Duration
}

// BaseHandler 提供各 Handler 共用的超时控制。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	if timeouts.Upload <= 0 {
		timeouts.Upload = defaultUploadTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 按请求类型派生带超时的上下文。
func (b *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	timeout := b.timeouts.Query
	if kind == HandlerTypeUpload {
		timeout = b.timeouts.Upload
	}
	return context.WithTimeout(ctx, timeout)
}
