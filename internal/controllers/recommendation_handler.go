package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bionicotaku/lingo-services-discover/internal/models/po"
	"github.com/bionicotaku/lingo-services-discover/internal/models/vo"
	"github.com/bionicotaku/lingo-services-discover/internal/services"
	"github.com/bionicotaku/lingo-services-discover/internal/videoid"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// defaultMaxHistoryBytes 限制观看记录上传大小。
const defaultMaxHistoryBytes = 32 << 20

// historyFormField 是上传表单中的文件字段名。
const historyFormField = "historyFile"

// RecommendationServiceAPI 定义 RecommendationHandler 依赖的 Service 能力。
type RecommendationServiceAPI interface {
	ProcessURLs(ctx context.Context, input services.ProcessURLsInput) (*vo.ResultPage, error)
	ProcessHistory(ctx context.Context, entries []po.HistoryEntry) (*vo.ResultPage, error)
}

// RecommendURLsRequest 是链接模式的请求体。
type RecommendURLsRequest struct {
	URLs      []string `json:"urls"`
	PageToken string   `json:"pageToken,omitempty"`
}

// VideoIDResponse 是链接解析接口的返回体。
type VideoIDResponse struct {
	VideoID string `json:"videoId"`
}

// RecommendationHandler 暴露推荐相关的 HTTP 接口。
type RecommendationHandler struct {
	*BaseHandler
	service         RecommendationServiceAPI
	maxHistoryBytes int64
	log             *log.Helper
}

// NewRecommendationHandler 构造 RecommendationHandler。
func NewRecommendationHandler(service RecommendationServiceAPI, base *BaseHandler, logger log.Logger) *RecommendationHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &RecommendationHandler{
		BaseHandler:     base,
		service:         service,
		maxHistoryBytes: defaultMaxHistoryBytes,
		log:             log.NewHelper(logger),
	}
}

// WithMaxHistoryBytes 调整观看记录上传大小上限，非正数保持原值。
func (h *RecommendationHandler) WithMaxHistoryBytes(n int64) *RecommendationHandler {
	if n > 0 {
		h.maxHistoryBytes = n
	}
	return h
}

// Register 将路由挂载到 HTTP Server。
func (h *RecommendationHandler) Register(srv *khttp.Server) {
	r := srv.Route("/")
	r.POST("/api/recommendations", h.RecommendByURLs)
	r.POST("/api/recommendations/history", h.RecommendByHistory)
	r.GET("/api/video-id", h.ExtractVideoID)
	r.GET("/healthz", h.Health)
}

// RecommendByURLs 基于链接列表返回推荐。
func (h *RecommendationHandler) RecommendByURLs(ctx khttp.Context) error {
	var req RecommendURLsRequest
	if err := ctx.Bind(&req); err != nil {
		return kerrors.BadRequest("INVALID_REQUEST", "request body must be {\"urls\": [...], \"pageToken\": \"...\"}")
	}
	khttp.SetOperation(ctx, "/api/recommendations")
	handler := ctx.Middleware(func(c context.Context, in any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeQuery)
		defer cancel()
		body := in.(*RecommendURLsRequest)
		return h.service.ProcessURLs(timeoutCtx, services.ProcessURLsInput{
			URLs:      body.URLs,
			PageToken: strings.TrimSpace(body.PageToken),
		})
	})
	out, err := handler(ctx, &req)
	if err != nil {
		return h.toHTTPError(ctx, err)
	}
	return ctx.Result(http.StatusOK, out)
}

// RecommendByHistory 基于上传的 Takeout 观看记录返回推荐。
// 支持 multipart 的 historyFile 字段，或直接以 JSON 数组作为请求体。
func (h *RecommendationHandler) RecommendByHistory(ctx khttp.Context) error {
	entries, err := h.readHistory(ctx)
	if err != nil {
		return h.toHTTPError(ctx, err)
	}
	khttp.SetOperation(ctx, "/api/recommendations/history")
	handler := ctx.Middleware(func(c context.Context, in any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeUpload)
		defer cancel()
		return h.service.ProcessHistory(timeoutCtx, in.([]po.HistoryEntry))
	})
	out, err := handler(ctx, entries)
	if err != nil {
		return h.toHTTPError(ctx, err)
	}
	return ctx.Result(http.StatusOK, out)
}

// ExtractVideoID 解析单个链接中的视频 ID。
func (h *RecommendationHandler) ExtractVideoID(ctx khttp.Context) error {
	raw := ctx.Query().Get("url")
	if strings.TrimSpace(raw) == "" {
		return kerrors.BadRequest("INVALID_REQUEST", "url query parameter is required")
	}
	id, ok := videoid.Extract(raw)
	if !ok {
		return kerrors.NotFound("VIDEO_ID_NOT_FOUND", "no video id found in url")
	}
	return ctx.Result(http.StatusOK, VideoIDResponse{VideoID: id})
}

// Health 用于存活探测。
func (h *RecommendationHandler) Health(ctx khttp.Context) error {
	return ctx.String(http.StatusOK, "ok")
}

func (h *RecommendationHandler) readHistory(ctx khttp.Context) ([]po.HistoryEntry, error) {
	req := ctx.Request()
	req.Body = http.MaxBytesReader(ctx.Response(), req.Body, h.maxHistoryBytes)

	var body io.Reader = req.Body
	if strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := req.FormFile(historyFormField)
		if err != nil {
			if tooLarge := h.historyTooLarge(err); tooLarge != nil {
				return nil, tooLarge
			}
			return nil, kerrors.BadRequest("MISSING_HISTORY_FILE", "multipart field historyFile is required")
		}
		defer file.Close()
		body = file
	}
	entries, err := services.DecodeHistory(body)
	if tooLarge := h.historyTooLarge(err); tooLarge != nil {
		return nil, tooLarge
	}
	return entries, err
}

// historyTooLarge 在上传超过大小上限时返回 413，否则返回 nil。
func (h *RecommendationHandler) historyTooLarge(err error) error {
	var maxErr *http.MaxBytesError
	if err == nil || !errors.As(err, &maxErr) {
		return nil
	}
	return kerrors.New(http.StatusRequestEntityTooLarge, "HISTORY_TOO_LARGE",
		fmt.Sprintf("history file exceeds %d bytes", maxErr.Limit))
}

// toHTTPError 将用例错误映射为带 reason 的 kratos 错误。
func (h *RecommendationHandler) toHTTPError(ctx context.Context, err error) error {
	var se *kerrors.Error
	switch {
	case errors.As(err, &se):
		return se
	case errors.Is(err, services.ErrNoURLs):
		return kerrors.BadRequest("NO_URLS", err.Error())
	case errors.Is(err, services.ErrTooManyURLs):
		return kerrors.BadRequest("TOO_MANY_URLS", err.Error())
	case errors.Is(err, services.ErrNoValidVideoIDs):
		return kerrors.BadRequest("NO_VALID_VIDEO_IDS", err.Error())
	case errors.Is(err, services.ErrMalformedHistory):
		return kerrors.BadRequest("MALFORMED_HISTORY", err.Error())
	case errors.Is(err, services.ErrQuotaExceeded):
		return kerrors.Forbidden("QUOTA_EXCEEDED", "YouTube API quota exceeded, try again later")
	case errors.Is(err, context.DeadlineExceeded):
		return kerrors.GatewayTimeout("REQUEST_TIMEOUT", "upstream request timed out")
	case errors.Is(err, services.ErrUpstreamUnavailable):
		h.log.WithContext(ctx).Errorw("msg", "upstream unavailable", "error", err)
		return kerrors.New(http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "video platform request failed")
	case errors.Is(err, services.ErrNoRecommendations):
		return kerrors.NotFound("NO_RECOMMENDATIONS", err.Error())
	default:
		h.log.WithContext(ctx).Errorw("msg", "recommendation failed", "error", err)
		return kerrors.InternalServer("INTERNAL", "internal error")
	}
}
