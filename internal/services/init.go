// Package services 实现推荐用例编排：解析源视频、调用上游、过滤与排序。
package services

import (
	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-discover/internal/ranking"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProvideOptions 从配置构造推荐参数。
func ProvideOptions(cfg *configloader.Config) Options {
	return Options{
		MaxResults:   cfg.Recommend.MaxResults,
		MaxURLs:      cfg.Recommend.MaxURLs,
		HistoryLimit: cfg.Recommend.HistoryLimit,
		Ranking:      RankingMode(cfg.Recommend.RankingMode),
	}
}

// ProvideRecommendationService 使用进程级随机源构造 RecommendationService。
func ProvideRecommendationService(source VideoSource, opts Options, logger log.Logger) *RecommendationService {
	return NewRecommendationService(source, opts, ranking.NewRand(), logger)
}

// ProviderSet collects service constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideVideoSource,
	ProvideOptions,
	ProvideRecommendationService,
)
