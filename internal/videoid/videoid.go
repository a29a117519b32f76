// Package videoid 从 YouTube 链接中提取视频 ID。
package videoid

import (
	"net/url"
	"regexp"
	"strings"
)

var rawIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Extract 解析链接并返回视频 ID。
// youtube.com 取 v 参数，youtu.be 取路径；其他域名或无法解析时 ok 为 false。
func Extract(raw string) (id string, ok bool) {
	parsed, err := Parse(raw)
	if err != nil {
		return "", false
	}
	return parsed, parsed != ""
}

// Parse 与 Extract 相同，但保留 URL 解析错误以便调用方记录日志。
// 无法识别的域名返回空字符串与 nil 错误。
func Parse(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "youtube.com"):
		return u.Query().Get("v"), nil
	case strings.Contains(host, "youtu.be"):
		return strings.TrimPrefix(u.Path, "/"), nil
	default:
		return "", nil
	}
}

// WatchURL 构造标准的观看页链接。
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}

// IsWatchURL 判断链接是否指向观看页。
func IsWatchURL(raw string) bool {
	return strings.Contains(raw, "youtube.com/watch")
}

// Resolve 接受链接或 11 位原始视频 ID。
func Resolve(ref string) (string, bool) {
	if id, ok := Extract(ref); ok {
		return id, true
	}
	ref = strings.TrimSpace(ref)
	if rawIDPattern.MatchString(ref) {
		return ref, true
	}
	return "", false
}
