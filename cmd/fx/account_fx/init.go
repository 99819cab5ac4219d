package account_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"wanderai/internal/api/controllers"
	"wanderai/internal/repositories"
	"wanderai/internal/services"
	"wanderai/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	provideAccountController,
)

func provideAccountRepo(db *mongo.Database) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, jwtMaker *utils.JWTMaker) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtMaker)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
