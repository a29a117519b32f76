package po

import "time"

// RecommendationLog 描述一次推荐请求的审计记录，仅输出到日志。
type RecommendationLog struct {
	LogID          string
	Mode           string
	RankingMode    string
	RequestedCount int32
	ResolvedIDs    []string
	SkippedSources []SkippedSource
	CandidateCount int32
	FilteredCount  int32
	ReturnedItems  []RecommendedItemLog
	NextPageToken  *string
	LatencyMS      *int32
	ErrorKind      *string
	GeneratedAt    time.Time
}

// SkippedSource 记录被跳过的源视频及原因。
type SkippedSource struct {
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

// RecommendedItemLog 记录最终返回的条目。
type RecommendedItemLog struct {
	VideoID   string  `json:"video_id"`
	ChannelID string  `json:"channel_id,omitempty"`
	Score     float64 `json:"score,omitempty"`
}
