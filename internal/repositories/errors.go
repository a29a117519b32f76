package repositories

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrVideoNotFound 表示上游不存在该视频（404 或空结果）。
	ErrVideoNotFound = errors.New("video not found")
	// ErrQuotaExceeded 表示上游配额耗尽或凭据被拒绝（403）。
	ErrQuotaExceeded = errors.New("upstream quota exceeded")
	// ErrUpstream 表示其他上游失败。
	ErrUpstream = errors.New("upstream request failed")
)

// classifyAPIError 将 googleapi 错误归类为仓储层哨兵错误。
func classifyAPIError(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w: %s", op, ErrQuotaExceeded, apiErrorReason(apiErr))
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, ErrVideoNotFound)
		}
		return fmt.Errorf("%s: %w: status %d: %s", op, ErrUpstream, apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

func apiErrorReason(apiErr *googleapi.Error) string {
	for _, item := range apiErr.Errors {
		if item.Reason != "" {
			return item.Reason
		}
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return http.StatusText(apiErr.Code)
}
