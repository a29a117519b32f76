package repositories_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-discover/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

var stdLogger = log.NewStdLogger(io.Discard)

// fakeYouTube 模拟 YouTube Data API 的 videos.list 与 search.list。
type fakeYouTube struct {
	mu       sync.Mutex
	videos   map[string]map[string]any
	related  map[string][]string
	nextPage map[string]string
	failWith map[string]int

	searchQueries []map[string][]string
	videoQueries  [][]string
}

func newFakeYouTube() *fakeYouTube {
	return &fakeYouTube{
		videos:   map[string]map[string]any{},
		related:  map[string][]string{},
		nextPage: map[string]string{},
		failWith: map[string]int{},
	}
}

func (f *fakeYouTube) addVideo(id, channel, duration string, width, height int) {
	f.videos[id] = map[string]any{
		"id": id,
		"snippet": map[string]any{
			"title":       "Video " + id,
			"description": "About " + id,
			"channelId":   channel,
			"publishedAt": "2024-01-01T00:00:00Z",
		},
		"contentDetails": map[string]any{"duration": duration},
		"statistics":     map[string]any{"viewCount": "1000", "likeCount": "10"},
		"player":         map[string]any{"embedWidth": strconv.Itoa(width), "embedHeight": strconv.Itoa(height)},
	}
}

func (f *fakeYouTube) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	query := r.URL.Query()
	switch {
	case strings.HasSuffix(r.URL.Path, "/youtube/v3/videos"):
		var ids []string
		for _, raw := range query["id"] {
			ids = append(ids, strings.Split(raw, ",")...)
		}
		f.videoQueries = append(f.videoQueries, ids)
		if code, ok := f.failWith["videos"]; ok {
			writeAPIError(w, code)
			return
		}
		items := make([]any, 0, len(ids))
		for _, id := range ids {
			if video, ok := f.videos[id]; ok {
				items = append(items, video)
			}
		}
		writeJSON(w, map[string]any{"kind": "youtube#videoListResponse", "items": items})
	case strings.HasSuffix(r.URL.Path, "/youtube/v3/search"):
		f.searchQueries = append(f.searchQueries, query)
		if code, ok := f.failWith["search"]; ok {
			writeAPIError(w, code)
			return
		}
		source := query.Get("relatedToVideoId")
		items := make([]any, 0)
		for _, id := range f.related[source] {
			items = append(items, map[string]any{
				"kind": "youtube#searchResult",
				"id":   map[string]any{"kind": "youtube#video", "videoId": id},
			})
		}
		resp := map[string]any{"kind": "youtube#searchListResponse", "items": items}
		if token := f.nextPage[source]; token != "" {
			resp["nextPageToken"] = token
		}
		writeJSON(w, resp)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": http.StatusText(code),
			"errors":  []any{map[string]any{"reason": "quotaExceeded", "message": http.StatusText(code)}},
		},
	})
}

func newYouTubeRepo(t *testing.T, fake *fakeYouTube) *repositories.YouTubeVideoRepository {
	t.Helper()
	return newYouTubeRepoWithOptions(t, fake, nil)
}

// newYouTubeRepoWithOptions 允许用例在默认参数上调整限流等配置。
func newYouTubeRepoWithOptions(t *testing.T, fake *fakeYouTube, mutate func(*repositories.YouTubeOptions)) *repositories.YouTubeVideoRepository {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	opts := repositories.YouTubeOptions{
		APIKey:            "test-key",
		Endpoint:          srv.URL + "/",
		CallTimeout:       5 * time.Second,
		SearchMaxResults:  20,
		RequestsPerSecond: 1000,
		Burst:             10,
	}
	if mutate != nil {
		mutate(&opts)
	}
	repo, err := repositories.NewYouTubeVideoRepository(context.Background(), opts, stdLogger, option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return repo
}
