package services

import "errors"

var (
	// ErrNoURLs 表示请求中没有任何链接。
	ErrNoURLs = errors.New("no urls provided")
	// ErrTooManyURLs 表示链接数量超过上限。
	ErrTooManyURLs = errors.New("too many urls")
	// ErrNoValidVideoIDs 表示没有可解析的视频 ID。
	ErrNoValidVideoIDs = errors.New("no valid video ids found")
	// ErrMalformedHistory 表示观看记录文件不是合法的 JSON 数组。
	ErrMalformedHistory = errors.New("malformed history file")
	// ErrQuotaExceeded 表示上游配额耗尽或凭据被拒绝，整个请求中止。
	ErrQuotaExceeded = errors.New("upstream quota exceeded")
	// ErrUpstreamUnavailable 表示上游调用失败，整个请求中止。
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrNoRecommendations 表示过滤后没有任何推荐结果。
	ErrNoRecommendations = errors.New("no recommendations found")
)

// errorKind 返回写入审计日志的错误分类。
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrNoRecommendations):
		return "no_recommendations"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "internal"
	}
}
