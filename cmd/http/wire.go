//go:build wireinject
// +build wireinject

package main

import (
	"github.com/bionicotaku/lingo-services-discover/internal/controllers"
	"github.com/bionicotaku/lingo-services-discover/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-discover/internal/repositories"
	"github.com/bionicotaku/lingo-services-discover/internal/server"
	"github.com/bionicotaku/lingo-services-discover/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*configloader.Config, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		server.ProviderSet,
		newApp,
	))
}
