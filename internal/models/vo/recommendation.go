// Package vo 定义向上层返回的推荐视图对象。
package vo

import "github.com/bionicotaku/lingo-services-discover/internal/models/po"

// ResultPage 汇总一次推荐请求的返回数据。
// NextPageToken 为 nil 表示没有后续页。
type ResultPage struct {
	Items         []po.VideoItem      `json:"items"`
	NextPageToken *string             `json:"nextPageToken"`
	Stats         RecommendationStats `json:"stats"`
}

// RecommendationStats 是按频道分组得到的统计信息。
type RecommendationStats struct {
	UniqueChannels          int            `json:"uniqueChannels"`
	AverageVideosPerChannel float64        `json:"averageVideosPerChannel"`
	ChannelCounts           map[string]int `json:"channelCounts"`
}
