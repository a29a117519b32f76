package services

import (
	"context"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/models/vo"
)

// RecommendationServiceInterface 抽象推荐用例，便于测试替换。
type RecommendationServiceInterface interface {
	ProcessURLs(ctx context.Context, input ProcessURLsInput) (*vo.ResultPage, error)
	ProcessHistory(ctx context.Context, entries []po.HistoryEntry) (*vo.ResultPage, error)
}

var _ RecommendationServiceInterface = (*RecommendationService)(nil)
