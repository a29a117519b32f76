package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/repositories/mappers"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

var (
	videoParts  = []string{"snippet", "contentDetails", "statistics", "player"}
	searchParts = []string{"snippet"}
)

// 播放器嵌入宽度，上游据此按原始比例换算嵌入高度。
const playerMaxWidth = 640

// YouTubeOptions 描述 YouTube 仓储的运行参数。
type YouTubeOptions struct {
	APIKey            string
	Endpoint          string
	CallTimeout       time.Duration
	SearchMaxResults  int64
	RequestsPerSecond float64
	Burst             int
}

// YouTubeVideoRepository 通过 YouTube Data API 读取视频详情与相关视频。
type YouTubeVideoRepository struct {
	service     *ytapi.Service
	limiter     *rate.Limiter
	callTimeout time.Duration
	maxResults  int64
	log         *log.Helper
}

// NewYouTubeVideoRepository 构造仓储实例。clientOpts 主要用于测试替换 HTTP 客户端。
func NewYouTubeVideoRepository(ctx context.Context, opts YouTubeOptions, logger log.Logger, clientOpts ...option.ClientOption) (*YouTubeVideoRepository, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}
	all := []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	if opts.Endpoint != "" {
		all = append(all, option.WithEndpoint(opts.Endpoint))
	}
	all = append(all, clientOpts...)
	service, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	maxResults := opts.SearchMaxResults
	if maxResults <= 0 {
		maxResults = configloader.DefaultSearchMaxResults
	}
	return &YouTubeVideoRepository{
		service:     service,
		limiter:     rate.NewLimiter(limit, burst),
		callTimeout: opts.CallTimeout,
		maxResults:  maxResults,
		log:         log.NewHelper(logger),
	}, nil
}

// GetVideo 返回单个视频详情，不存在时返回 ErrVideoNotFound。
func (r *YouTubeVideoRepository) GetVideo(ctx context.Context, videoID string) (*po.VideoItem, error) {
	items, err := r.listVideos(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("get video %s: %w", videoID, ErrVideoNotFound)
	}
	item := items[0]
	return &item, nil
}

// SearchRelated 查询与 videoID 相关的视频，并补全详情。
// 返回顺序与搜索结果一致，补全阶段缺失的视频会被丢弃。
func (r *YouTubeVideoRepository) SearchRelated(ctx context.Context, videoID, pageToken string) (*po.RelatedPage, error) {
	call := r.service.Search.List(searchParts).
		Type("video").
		MaxResults(r.maxResults)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	callCtx, cancel, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := call.Context(callCtx).Do(googleapi.QueryParameter("relatedToVideoId", videoID))
	cancel()
	if err != nil {
		r.log.WithContext(ctx).Warnw("msg", "youtube search related failed", "video_id", videoID, "error", err)
		return nil, classifyAPIError("search related "+videoID, err)
	}

	ids := mappers.SearchResultVideoIDs(resp.Items)
	page := &po.RelatedPage{NextPageToken: resp.NextPageToken}
	if len(ids) == 0 {
		page.Items = []po.VideoItem{}
		return page, nil
	}
	items, err := r.listVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]po.VideoItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	page.Items = make([]po.VideoItem, 0, len(ids))
	missing := make([]string, 0)
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		page.Items = append(page.Items, item)
	}
	if len(missing) > 0 {
		r.log.WithContext(ctx).Debugw("msg", "related videos missing details", "video_id", videoID, "missing", missing)
	}
	return page, nil
}

func (r *YouTubeVideoRepository) listVideos(ctx context.Context, ids []string) ([]po.VideoItem, error) {
	callCtx, cancel, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()
	resp, err := r.service.Videos.List(videoParts).
		Id(ids...).
		MaxWidth(playerMaxWidth).
		Context(callCtx).
		Do()
	if err != nil {
		r.log.WithContext(ctx).Warnw("msg", "youtube list videos failed", "video_ids", ids, "error", err)
		return nil, classifyAPIError("list videos", err)
	}
	items := make([]po.VideoItem, 0, len(resp.Items))
	for _, video := range resp.Items {
		if video == nil {
			continue
		}
		items = append(items, mappers.VideoItemFromAPI(video))
	}
	return items, nil
}

// begin 等待限流令牌并派生带超时的上下文。
func (r *YouTubeVideoRepository) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, fmt.Errorf("%w: rate limiter: %w", ErrUpstream, ctxErr)
		}
		// 令牌等待会越过截止时间时 Wait 提前返回，此时按超时处理。
		if _, ok := ctx.Deadline(); ok {
			return nil, nil, fmt.Errorf("%w: rate limiter: %w: %v", ErrUpstream, context.DeadlineExceeded, err)
		}
		return nil, nil, fmt.Errorf("%w: rate limiter: %v", ErrUpstream, err)
	}
	if r.callTimeout <= 0 {
		callCtx, cancel := context.WithCancel(ctx)
		return callCtx, cancel, nil
	}
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	return callCtx, cancel, nil
}
