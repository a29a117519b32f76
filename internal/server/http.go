// Package server 组装 Kratos 传输层服务。
package server

import (
	"github.com/bionicotaku/lingo-services-discover/internal/controllers"
	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
)

// ProviderSet 暴露传输层构造函数。
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer 创建 HTTP Server 并注册推荐路由。
func NewHTTPServer(cfg *configloader.Config, handler *controllers.RecommendationHandler, logger log.Logger) *khttp.Server {
	opts := []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		khttp.Logger(logger),
	}
	if addr := cfg.Server.HTTP.Addr; addr != "" {
		opts = append(opts, khttp.Address(addr))
	}
	srv := khttp.NewServer(opts...)
	handler.Register(srv)
	return srv
}
