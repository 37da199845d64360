package interfaces

import (
	"github.com/google/wire"

	"autocart-server/store-api/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
