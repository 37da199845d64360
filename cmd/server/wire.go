//go:build wireinject

package main

import (
	"autocart-server/store-api/internal/domain"
	"autocart-server/store-api/internal/infrastructure"
	"autocart-server/store-api/internal/interfaces"
	"autocart-server/store-api/internal/interfaces/httpserver/handlers"
	"autocart-server/store-api/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		handlers.HandlerProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

func CreateDataInitializer() (*DataInitializer, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		wire.Struct(new(DataInitializer), "*"),
	)
	return nil, nil
}
