package po

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecommendationLogParams 描述构造推荐日志所需的参数。
type RecommendationLogParams struct {
	Mode           string
	RankingMode    string
	RequestedCount int
	ResolvedIDs    []string
	SkippedSources []SkippedSource
	CandidateCount int
	FilteredCount  int
	ReturnedItems  []RecommendedItemLog
	NextPageToken  string
	LatencyMS      int32
	ErrorKind      string
	GeneratedAt    time.Time
}

// NewRecommendationLog 基于参数构造 RecommendationLog 实例。
func NewRecommendationLog(params RecommendationLogParams) RecommendationLog {
	entry := RecommendationLog{
		LogID:          uuid.NewString(),
		Mode:           strings.TrimSpace(params.Mode),
		RankingMode:    strings.TrimSpace(params.RankingMode),
		RequestedCount: int32(params.RequestedCount),
		ResolvedIDs:    cloneStrings(params.ResolvedIDs),
		SkippedSources: cloneSkipped(params.SkippedSources),
		CandidateCount: int32(params.CandidateCount),
		FilteredCount:  int32(params.FilteredCount),
		ReturnedItems:  cloneRecommendedItems(params.ReturnedItems),
		NextPageToken:  optionalString(params.NextPageToken),
		LatencyMS:      optionalInt32(params.LatencyMS),
		ErrorKind:      optionalString(params.ErrorKind),
		GeneratedAt:    params.GeneratedAt,
	}
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now().UTC()
	}
	return entry
}

// KeyValues 将日志展开为 kratos log 的键值对。
func (l RecommendationLog) KeyValues() []any {
	kvs := []any{
		"log_id", l.LogID,
		"mode", l.Mode,
		"ranking_mode", l.RankingMode,
		"requested", l.RequestedCount,
		"resolved_ids", l.ResolvedIDs,
		"skipped_sources", l.SkippedSources,
		"candidates", l.CandidateCount,
		"filtered", l.FilteredCount,
		"returned", len(l.ReturnedItems),
		"items", l.ReturnedItems,
		"generated_at", l.GeneratedAt.Format(time.RFC3339Nano),
	}
	if l.NextPageToken != nil {
		kvs = append(kvs, "next_page_token", *l.NextPageToken)
	}
	if l.LatencyMS != nil {
		kvs = append(kvs, "latency_ms", *l.LatencyMS)
	}
	if l.ErrorKind != nil {
		kvs = append(kvs, "error_kind", *l.ErrorKind)
	}
	return kvs
}

func cloneRecommendedItems(src []RecommendedItemLog) []RecommendedItemLog {
	if len(src) == 0 {
		return []RecommendedItemLog{}
	}
	dst := make([]RecommendedItemLog, len(src))
	copy(dst, src)
	return dst
}

func cloneSkipped(src []SkippedSource) []SkippedSource {
	if len(src) == 0 {
		return []SkippedSource{}
	}
	dst := make([]SkippedSource, len(src))
	copy(dst, src)
	return dst
}

func cloneStrings(src []string) []string {
	if len(src) == 0 {
		return []string{}
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := strings.TrimSpace(value)
	return &v
}

func optionalInt32(value int32) *int32 {
	if value <= 0 {
		return nil
	}
	v := value
	return &v
}
