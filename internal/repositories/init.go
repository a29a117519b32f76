// Package repositories 封装对上游视频平台的访问。
package repositories

import (
	"context"

	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-discover/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// VideoStore 是仓储层对外暴露的视频读取能力。
type VideoStore interface {
	GetVideo(ctx context.Context, videoID string) (*po.VideoItem, error)
	SearchRelated(ctx context.Context, videoID, pageToken string) (*po.RelatedPage, error)
}

var (
	_ VideoStore = (*YouTubeVideoRepository)(nil)
	_ VideoStore = (*FixtureVideoSource)(nil)
)

// ProvideVideoStore 根据配置选择离线数据或 YouTube Data API。
func ProvideVideoStore(cfg *configloader.Config, logger log.Logger) (VideoStore, error) {
	if path := cfg.YouTube.FixturePath; path != "" {
		log.NewHelper(logger).Infow("msg", "using fixture video source", "path", path)
		return NewFixtureVideoSource(path, logger)
	}
	return NewYouTubeVideoRepository(context.Background(), YouTubeOptions{
		APIKey:            cfg.YouTube.APIKey,
		Endpoint:          cfg.YouTube.Endpoint,
		CallTimeout:       cfg.YouTube.CallTimeoutDuration(),
		SearchMaxResults:  cfg.YouTube.SearchMaxResults,
		RequestsPerSecond: cfg.YouTube.RequestsPerSecond,
		Burst:             cfg.YouTube.Burst,
	}, logger)
}

// ProviderSet collects repository constructors for Wire DI.
var ProviderSet = wire.NewSet(ProvideVideoStore)
