package services

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/videoid"
)

// DecodeHistory 解析 Takeout 导出的 watch-history.json。
// 顶层必须是数组，任何结构错误都返回 ErrMalformedHistory。
func DecodeHistory(r io.Reader) ([]po.HistoryEntry, error) {
	var entries []po.HistoryEntry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHistory, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedHistory)
	}
	return entries, nil
}

// recentWatchedIDs 选出最近 limit 条观看页记录，并按时间倒序去重提取视频 ID。
func recentWatchedIDs(entries []po.HistoryEntry, limit int) []string {
	watched := make([]po.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if videoid.IsWatchURL(entry.TitleURL) {
			watched = append(watched, entry)
		}
	}
	sort.SliceStable(watched, func(i, j int) bool {
		return watched[i].Time.After(watched[j].Time)
	})
	if len(watched) > limit {
		watched = watched[:limit]
	}
	seen := make(map[string]struct{}, len(watched))
	ids := make([]string, 0, len(watched))
	for _, entry := range watched {
		id, ok := videoid.Extract(entry.TitleURL)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
