package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
)

// FixtureFile 是离线数据文件格式，videos 与 API 返回结构一致。
// related 缺省时，相关视频为除自身外的全部视频随机排列。
type FixtureFile struct {
	Videos  []po.VideoItem      `json:"videos"`
	Related map[string][]string `json:"related,omitempty"`
}

// FixtureVideoSource 基于本地 JSON 文件返回视频，用于本地联调与演示。
type FixtureVideoSource struct {
	videos  map[string]po.VideoItem
	order   []string
	related map[string][]string

	mu  sync.Mutex
	rng *rand.Rand
	log *log.Helper
}

// NewFixtureVideoSource 从文件加载离线数据。
func NewFixtureVideoSource(path string, logger log.Logger) (*FixtureVideoSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var file FixtureFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return NewFixtureVideoSourceFromData(file, rand.New(rand.NewSource(time.Now().UnixNano())), logger), nil
}

// NewFixtureVideoSourceFromData 使用内存数据构造实例。
func NewFixtureVideoSourceFromData(file FixtureFile, rng *rand.Rand, logger log.Logger) *FixtureVideoSource {
	src := &FixtureVideoSource{
		videos:  make(map[string]po.VideoItem, len(file.Videos)),
		order:   make([]string, 0, len(file.Videos)),
		related: file.Related,
		rng:     rng,
		log:     log.NewHelper(logger),
	}
	for _, video := range file.Videos {
		if _, dup := src.videos[video.ID]; !dup {
			src.order = append(src.order, video.ID)
		}
		src.videos[video.ID] = video
	}
	return src
}

// GetVideo 返回指定视频。
func (s *FixtureVideoSource) GetVideo(_ context.Context, videoID string) (*po.VideoItem, error) {
	video, ok := s.videos[videoID]
	if !ok {
		return nil, fmt.Errorf("get video %s: %w", videoID, ErrVideoNotFound)
	}
	return &video, nil
}

// SearchRelated 返回相关视频，离线数据不分页。
func (s *FixtureVideoSource) SearchRelated(ctx context.Context, videoID, _ string) (*po.RelatedPage, error) {
	if _, ok := s.videos[videoID]; !ok {
		return nil, fmt.Errorf("search related %s: %w", videoID, ErrVideoNotFound)
	}
	ids, ok := s.related[videoID]
	if !ok {
		ids = s.shuffledOthers(videoID)
	}
	items := make([]po.VideoItem, 0, len(ids))
	for _, id := range ids {
		video, found := s.videos[id]
		if !found {
			s.log.WithContext(ctx).Warnw("msg", "fixture related video missing", "video_id", videoID, "related_id", id)
			continue
		}
		items = append(items, video)
	}
	return &po.RelatedPage{Items: items}, nil
}

func (s *FixtureVideoSource) shuffledOthers(videoID string) []string {
	ids := make([]string, 0, len(s.order))
	for _, id := range s.order {
		if id != videoID {
			ids = append(ids, id)
		}
	}
	s.mu.Lock()
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	s.mu.Unlock()
	return ids
}
