package vo

import (
	"strings"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
)

// NewResultPage 根据返回条目与续页游标构造 ResultPage，并计算频道统计。
func NewResultPage(items []po.VideoItem, nextPageToken string) *ResultPage {
	page := &ResultPage{
		Items: make([]po.VideoItem, len(items)),
		Stats: StatsFromItems(items),
	}
	copy(page.Items, items)
	if token := strings.TrimSpace(nextPageToken); token != "" {
		page.NextPageToken = &token
	}
	return page
}

// StatsFromItems 按 channelId 分组统计。缺失频道的条目归入空字符串分组。
func StatsFromItems(items []po.VideoItem) RecommendationStats {
	counts := make(map[string]int)
	for i := range items {
		counts[items[i].ChannelID()]++
	}
	stats := RecommendationStats{
		UniqueChannels: len(counts),
		ChannelCounts:  counts,
	}
	if stats.UniqueChannels > 0 {
		stats.AverageVideosPerChannel = float64(len(items)) / float64(stats.UniqueChannels)
	}
	return stats
}
