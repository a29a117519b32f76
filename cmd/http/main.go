// Command http 启动相关视频推荐 HTTP 服务。
package main

import (
	"flag"
	"os"

	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

var (
	// Name 服务名。
	Name = "lingo-services-discover"
	// Version 通过 -ldflags "-X main.Version=x.y.z" 注入。
	Version = "dev"

	flagconf string

	id = uuid.NewString()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *khttp.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

func main() {
	flag.Parse()

	cfg, err := configloader.Load(flagconf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)
	logger = log.NewFilter(logger, log.FilterLevel(log.ParseLevel(cfg.Log.Level)))

	app, cleanup, err := wireApp(cfg, logger)
	if err != nil {
		log.NewHelper(logger).Fatalw("msg", "init app failed", "error", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		log.NewHelper(logger).Errorw("msg", "app stopped with error", "error", err)
		os.Exit(1)
	}
}
