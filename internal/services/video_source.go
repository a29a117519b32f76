package services

import (
	"context"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/repositories"
)

// VideoSource 抽象上游视频平台的调用能力。
// 视频不存在时返回 repositories.ErrVideoNotFound，配额耗尽时返回 repositories.ErrQuotaExceeded。
type VideoSource interface {
	GetVideo(ctx context.Context, videoID string) (*po.VideoItem, error)
	SearchRelated(ctx context.Context, videoID, pageToken string) (*po.RelatedPage, error)
}

// ProvideVideoSource adapts the repository store into VideoSource for dependency injection.
func ProvideVideoSource(store repositories.VideoStore) VideoSource { return store }
