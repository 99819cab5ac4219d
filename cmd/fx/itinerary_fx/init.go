package itinerary_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"wanderai/internal/api/controllers"
	"wanderai/internal/repositories"
	"wanderai/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
	provideItineraryController,
)

func provideItineraryRepo(db *mongo.Database) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository, generator services.GeneratorServiceInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, generator)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
