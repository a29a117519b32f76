// Package mappers 提供 YouTube Data API 结构与领域模型之间的转换工具。
package mappers

import (
	"github.com/bionicotaku/lingo-services-discover/internal/models/po"

	ytapi "google.golang.org/api/youtube/v3"
)

// VideoItemFromAPI 将 videos.list 返回的记录转换为 VideoItem。
// 播放器嵌入宽高映射为 Dimension，缺失时保持为 nil。
func VideoItemFromAPI(video *ytapi.Video) po.VideoItem {
	if video == nil {
		return po.VideoItem{}
	}
	item := po.VideoItem{ID: video.Id}
	if s := video.Snippet; s != nil {
		item.Snippet = &po.Snippet{
			Title:        s.Title,
			Description:  s.Description,
			Tags:         cloneStrings(s.Tags),
			ChannelID:    s.ChannelId,
			ChannelTitle: s.ChannelTitle,
			PublishedAt:  s.PublishedAt,
			Thumbnails:   thumbnailURLs(s.Thumbnails),
		}
	}
	if cd := video.ContentDetails; cd != nil {
		item.ContentDetails = &po.ContentDetails{Duration: cd.Duration}
		if p := video.Player; p != nil && p.EmbedWidth > 0 && p.EmbedHeight > 0 {
			item.ContentDetails.Dimension = &po.Dimension{Width: p.EmbedWidth, Height: p.EmbedHeight}
		}
	}
	if st := video.Statistics; st != nil {
		item.Statistics = &po.Statistics{
			ViewCount: toInt64(st.ViewCount),
			LikeCount: toInt64(st.LikeCount),
		}
	}
	return item
}

// SearchResultVideoIDs 提取搜索结果中的视频 ID，跳过频道与播放列表。
func SearchResultVideoIDs(results []*ytapi.SearchResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		if r == nil || r.Id == nil || r.Id.VideoId == "" {
			continue
		}
		ids = append(ids, r.Id.VideoId)
	}
	return ids
}

func thumbnailURLs(details *ytapi.ThumbnailDetails) map[string]string {
	if details == nil {
		return nil
	}
	urls := make(map[string]string)
	add := func(name string, thumb *ytapi.Thumbnail) {
		if thumb != nil && thumb.Url != "" {
			urls[name] = thumb.Url
		}
	}
	add("default", details.Default)
	add("medium", details.Medium)
	add("high", details.High)
	add("standard", details.Standard)
	add("maxres", details.Maxres)
	if len(urls) == 0 {
		return nil
	}
	return urls
}

func cloneStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func toInt64(value uint64) int64 {
	const maxInt64 = 1<<63 - 1
	if value > maxInt64 {
		return maxInt64
	}
	return int64(value)
}
