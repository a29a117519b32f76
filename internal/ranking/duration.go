package ranking

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedDuration 表示时长字符串不符合 ISO-8601 PT 格式。
var ErrMalformedDuration = errors.New("malformed duration")

// ShortFormMaxSeconds 以下的视频视为短视频。
const ShortFormMaxSeconds = 180

// 上游对 24h 以上的视频会带天数分量，例如 P1DT2H。
var durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseDuration 将 PT1H2M3S 形式的时长解析为秒数，缺失分量按 0 计。
func ParseDuration(value string) (int, error) {
	match := durationPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, value)
	}
	units := [...]int{86400, 3600, 60, 1}
	total := 0
	for i, unit := range units {
		group := match[i+1]
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, value)
		}
		total += n * unit
	}
	return total, nil
}
