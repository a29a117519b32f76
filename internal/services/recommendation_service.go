package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/models/vo"
	"github.com/bionicotaku/lingo-services-discover/internal/ranking"
	"github.com/bionicotaku/lingo-services-discover/internal/repositories"
	"github.com/bionicotaku/lingo-services-discover/internal/videoid"

	"github.com/go-kratos/kratos/v2/log"
)

// RankingMode 决定过滤后的候选如何排序。
type RankingMode string

const (
	// RankingPassthrough 保持上游返回顺序。
	RankingPassthrough RankingMode = "passthrough"
	// RankingRelevance 按相关度打分排序后分层洗牌。
	RankingRelevance RankingMode = "relevance"
)

// Options 描述推荐管线参数。
type Options struct {
	MaxResults   int
	MaxURLs      int
	HistoryLimit int
	Ranking      RankingMode
}

func (o Options) withDefaults() Options {
	if o.MaxResults <= 0 {
		o.MaxResults = 15
	}
	if o.MaxURLs <= 0 {
		o.MaxURLs = 5
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = 10
	}
	if o.Ranking == "" {
		o.Ranking = RankingPassthrough
	}
	return o
}

// ProcessURLsInput 描述链接模式的请求参数。
type ProcessURLsInput struct {
	URLs      []string
	PageToken string
}

// RecommendationService 是推荐的主用例：解析源视频、拉取相关视频、过滤短视频并截断。
type RecommendationService struct {
	source VideoSource
	opts   Options
	scorer *ranking.Scorer
	rng    ranking.Rand
	log    *log.Helper
}

// NewRecommendationService 构造 RecommendationService。rng 为 nil 时使用时间种子。
func NewRecommendationService(source VideoSource, opts Options, rng ranking.Rand, logger log.Logger) *RecommendationService {
	if rng == nil {
		rng = ranking.NewRand()
	}
	return &RecommendationService{
		source: source,
		opts:   opts.withDefaults(),
		scorer: ranking.NewScorer(rng, time.Now),
		rng:    rng,
		log:    log.NewHelper(logger),
	}
}

// ProcessURLs 基于 1 到 MaxURLs 个链接返回推荐结果。
func (s *RecommendationService) ProcessURLs(ctx context.Context, input ProcessURLsInput) (*vo.ResultPage, error) {
	if len(input.URLs) == 0 {
		return nil, ErrNoURLs
	}
	if len(input.URLs) > s.opts.MaxURLs {
		return nil, fmt.Errorf("%w: got %d, at most %d allowed", ErrTooManyURLs, len(input.URLs), s.opts.MaxURLs)
	}
	ids, skipped := s.resolve(ctx, input.URLs)
	if len(ids) == 0 {
		return nil, ErrNoValidVideoIDs
	}
	return s.recommend(ctx, pipelineRequest{
		mode:      "urls",
		requested: len(input.URLs),
		videoIDs:  ids,
		skipped:   skipped,
		pageToken: input.PageToken,
		paginate:  true,
	})
}

// ProcessHistory 基于观看记录中最近的 HistoryLimit 个视频返回推荐结果。
// 该模式不受 MaxURLs 限制，也不返回续页游标。
func (s *RecommendationService) ProcessHistory(ctx context.Context, entries []po.HistoryEntry) (*vo.ResultPage, error) {
	recent := recentWatchedIDs(entries, s.opts.HistoryLimit)
	if len(recent) == 0 {
		return nil, ErrNoValidVideoIDs
	}
	urls := make([]string, len(recent))
	for i, id := range recent {
		urls[i] = videoid.WatchURL(id)
	}
	ids, skipped := s.resolve(ctx, urls)
	if len(ids) == 0 {
		return nil, ErrNoValidVideoIDs
	}
	return s.recommend(ctx, pipelineRequest{
		mode:      "history",
		requested: len(entries),
		videoIDs:  ids,
		skipped:   skipped,
	})
}

// resolve 将链接解析为视频 ID，无法解析的链接记录日志后跳过。
func (s *RecommendationService) resolve(ctx context.Context, refs []string) ([]string, []po.SkippedSource) {
	ids := make([]string, 0, len(refs))
	skipped := make([]po.SkippedSource, 0)
	for _, ref := range refs {
		if id, ok := videoid.Resolve(ref); ok {
			ids = append(ids, id)
			continue
		}
		if _, err := videoid.Parse(ref); err != nil {
			s.log.WithContext(ctx).Warnw("msg", "parse source url failed", "url", ref, "error", err)
		} else {
			s.log.WithContext(ctx).Warnw("msg", "no video id in source url", "url", ref)
		}
		skipped = append(skipped, po.SkippedSource{Reference: ref, Reason: "invalid url"})
	}
	return ids, skipped
}

type pipelineRequest struct {
	mode      string
	requested int
	videoIDs  []string
	skipped   []po.SkippedSource
	pageToken string
	paginate  bool
}

// candidate 是候选池中的条目，记录其来源视频以便打分。
type candidate struct {
	item   po.VideoItem
	source *po.VideoItem
}

func (s *RecommendationService) recommend(ctx context.Context, req pipelineRequest) (*vo.ResultPage, error) {
	started := time.Now()
	audit := po.RecommendationLogParams{
		Mode:           req.mode,
		RankingMode:    string(s.opts.Ranking),
		RequestedCount: req.requested,
		ResolvedIDs:    req.videoIDs,
	}
	skipped := append([]po.SkippedSource(nil), req.skipped...)

	var pool []candidate
	var nextPageToken string
	for _, id := range req.videoIDs {
		source, err := s.source.GetVideo(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrVideoNotFound) {
				s.log.WithContext(ctx).Warnw("msg", "source video not found, skipping", "video_id", id)
				skipped = append(skipped, po.SkippedSource{Reference: id, Reason: "video not found"})
				continue
			}
			return nil, s.fail(ctx, audit, skipped, started, upstreamError(err))
		}
		related, err := s.source.SearchRelated(ctx, id, req.pageToken)
		if err != nil {
			if errors.Is(err, repositories.ErrVideoNotFound) {
				s.log.WithContext(ctx).Warnw("msg", "related videos not found, skipping", "video_id", id)
				skipped = append(skipped, po.SkippedSource{Reference: id, Reason: "related videos not found"})
				continue
			}
			return nil, s.fail(ctx, audit, skipped, started, upstreamError(err))
		}
		if related == nil {
			continue
		}
		if related.NextPageToken != "" {
			nextPageToken = related.NextPageToken
		}
		for _, item := range related.Items {
			pool = append(pool, candidate{item: item, source: source})
		}
	}

	kept := ranking.FilterShortForm(pool, func(c *candidate) *po.VideoItem { return &c.item })
	audit.CandidateCount = len(pool)
	audit.FilteredCount = len(pool) - len(kept)

	ordered := s.order(kept)
	if len(ordered) > s.opts.MaxResults {
		ordered = ordered[:s.opts.MaxResults]
	}
	if len(ordered) == 0 {
		return nil, s.fail(ctx, audit, skipped, started, ErrNoRecommendations)
	}

	items := make([]po.VideoItem, len(ordered))
	returned := make([]po.RecommendedItemLog, len(ordered))
	for i, sc := range ordered {
		items[i] = sc.Item
		returned[i] = po.RecommendedItemLog{VideoID: sc.Item.ID, ChannelID: sc.Item.ChannelID(), Score: sc.Score}
	}
	if !req.paginate {
		nextPageToken = ""
	}
	page := vo.NewResultPage(items, nextPageToken)

	audit.SkippedSources = skipped
	audit.ReturnedItems = returned
	audit.NextPageToken = nextPageToken
	audit.LatencyMS = latencyMS(started)
	s.emit(ctx, audit)
	return page, nil
}

// order 按配置的排序模式返回候选。passthrough 模式下分值恒为 0。
func (s *RecommendationService) order(kept []candidate) []ranking.ScoredCandidate {
	scored := make([]ranking.ScoredCandidate, len(kept))
	if s.opts.Ranking != RankingRelevance {
		for i, c := range kept {
			scored[i] = ranking.ScoredCandidate{Item: c.item}
		}
		return scored
	}
	keywords := make(map[*po.VideoItem][]string)
	for i := range kept {
		c := &kept[i]
		kw, ok := keywords[c.source]
		if !ok {
			kw = ranking.ExtractKeywords(c.source)
			keywords[c.source] = kw
		}
		scored[i] = ranking.ScoredCandidate{Item: c.item, Score: s.scorer.Score(&c.item, c.source, kw)}
	}
	return ranking.ShuffleWithRelevance(ranking.RankByScore(scored), s.rng)
}

func (s *RecommendationService) fail(ctx context.Context, audit po.RecommendationLogParams, skipped []po.SkippedSource, started time.Time, err error) error {
	audit.SkippedSources = skipped
	audit.ErrorKind = errorKind(err)
	audit.LatencyMS = latencyMS(started)
	s.emit(ctx, audit)
	return err
}

func (s *RecommendationService) emit(ctx context.Context, params po.RecommendationLogParams) {
	entry := po.NewRecommendationLog(params)
	kvs := append([]any{"msg", "recommendation served"}, entry.KeyValues()...)
	if entry.ErrorKind != nil {
		s.log.WithContext(ctx).Warnw(kvs...)
		return
	}
	s.log.WithContext(ctx).Infow(kvs...)
}

// upstreamError 将仓储错误转换为用例层错误，保留原始错误链。
func upstreamError(err error) error {
	if errors.Is(err, repositories.ErrQuotaExceeded) {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}

func latencyMS(started time.Time) int32 {
	ms := time.Since(started).Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return int32(ms)
}
