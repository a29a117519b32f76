// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数校验、DTO 转换和错误映射。
package controllers

import (
	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-discover/internal/services"
	"github.com/google/wire"
)

// ProvideRecommendationServiceAPI 将 RecommendationService 适配为 Handler 依赖的接口。
func ProvideRecommendationServiceAPI(s *services.RecommendationService) RecommendationServiceAPI {
	return s
}

// ProvideHandlerTimeouts 从配置派生 Handler 超时。
func ProvideHandlerTimeouts(cfg *configloader.Config) HandlerTimeouts {
	timeout := cfg.Server.HTTP.RequestTimeoutDuration()
	return HandlerTimeouts{Query: timeout, Upload: 2 * timeout}
}

// ProviderSet collects controller constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideHandlerTimeouts,
	NewBaseHandler,
	ProvideRecommendationServiceAPI,
	NewRecommendationHandler,
)
