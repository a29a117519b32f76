// Package po 定义上游视频平台与 Takeout 导出文件的原始数据结构。
// 这些结构体只读，单次请求内构造并丢弃，不做持久化。
package po

import "time"

// VideoItem 表示 YouTube Data API 返回的视频记录。
type VideoItem struct {
	ID             string          `json:"id"`
	Snippet        *Snippet        `json:"snippet,omitempty"`
	ContentDetails *ContentDetails `json:"contentDetails,omitempty"`
	Statistics     *Statistics     `json:"statistics,omitempty"`
}

// Snippet 是视频的基础描述信息。
type Snippet struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Tags         []string          `json:"tags,omitempty"`
	ChannelID    string            `json:"channelId"`
	ChannelTitle string            `json:"channelTitle,omitempty"`
	PublishedAt  string            `json:"publishedAt,omitempty"`
	Thumbnails   map[string]string `json:"thumbnails,omitempty"`
}

// ContentDetails 描述时长与画面尺寸。
type ContentDetails struct {
	Duration  string     `json:"duration"`
	Dimension *Dimension `json:"dimension,omitempty"`
}

// Dimension 为播放器画面宽高，用于识别竖屏视频。
type Dimension struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Statistics 为播放与点赞计数，上游以字符串编码数字。
type Statistics struct {
	ViewCount int64 `json:"viewCount,string"`
	LikeCount int64 `json:"likeCount,string"`
}

// ChannelID 返回频道 ID，Snippet 缺失时为空。
func (v *VideoItem) ChannelID() string {
	if v == nil || v.Snippet == nil {
		return ""
	}
	return v.Snippet.ChannelID
}

// PublishedTime 解析 publishedAt，缺失或格式错误时 ok 为 false。
func (v *VideoItem) PublishedTime() (time.Time, bool) {
	if v == nil || v.Snippet == nil || v.Snippet.PublishedAt == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// RelatedPage 是一次相关视频查询返回的单页结果。
type RelatedPage struct {
	Items         []VideoItem
	NextPageToken string
}

// HistoryEntry 表示 Google Takeout 观看记录中的一条。
type HistoryEntry struct {
	Header   string    `json:"header,omitempty"`
	Title    string    `json:"title,omitempty"`
	TitleURL string    `json:"titleUrl,omitempty"`
	Time     time.Time `json:"time"`
}
