package repository

import (
	"autocart-server/store-api/internal/infrastructure/database/repository/catalogrepo"
	"autocart-server/store-api/internal/infrastructure/database/repository/conversationrepo"
	"autocart-server/store-api/internal/infrastructure/database/repository/orderrepo"
	"autocart-server/store-api/internal/infrastructure/database/repository/paymanrepo"
	"autocart-server/store-api/internal/infrastructure/database/repository/userrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	userrepo.NewUserGormRepository,
	catalogrepo.NewProductGormRepository,
	conversationrepo.NewConversationGormRepository,
	orderrepo.NewOrderGormRepository,
	paymanrepo.NewTokenGormRepository,
)
