package ranking

import (
	"strings"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
)

var shortsMarkers = []string{
	"#shorts",
	"#short",
	"#ytshorts",
	"shorts/",
	"/shorts",
	"youtube.com/shorts",
}

// IsShortForm 判断视频是否应作为短视频排除，规则按顺序短路求值。
// 时长无法解析的视频同样排除。
func IsShortForm(item *po.VideoItem) bool {
	if item == nil || item.ContentDetails == nil || item.Snippet == nil {
		return true
	}
	seconds, err := ParseDuration(item.ContentDetails.Duration)
	if err != nil || seconds < ShortFormMaxSeconds {
		return true
	}
	if containsShortsMarker(item.Snippet) {
		return true
	}
	if strings.Contains(item.ID, "/shorts/") {
		return true
	}
	if dim := item.ContentDetails.Dimension; dim != nil && dim.Height > dim.Width {
		return true
	}
	return false
}

// FilterShortForm 保序返回非短视频条目，video 从条目中取出待判断的视频。
func FilterShortForm[T any](items []T, video func(*T) *po.VideoItem) []T {
	kept := make([]T, 0, len(items))
	for i := range items {
		if IsShortForm(video(&items[i])) {
			continue
		}
		kept = append(kept, items[i])
	}
	return kept
}

func containsShortsMarker(snippet *po.Snippet) bool {
	text := strings.ToLower(snippet.Title + " " + snippet.Description + " " + strings.Join(snippet.Tags, " "))
	for _, marker := range shortsMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
