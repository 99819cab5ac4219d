package generator_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"wanderai/internal/infra"
	"wanderai/internal/services"
	"wanderai/pkg/utils"
)

var Module = fx.Provide(
	provideTextGenClient,
	provideGeneratorService,
)

func provideTextGenClient(lc fx.Lifecycle, cfg *infra.Config) (utils.TextGenClientInterface, error) {
	if cfg.AIAPIKey() == "" {
		log.Printf("No API key configured for provider %s, itineraries will use the built-in template", cfg.AIProvider)
		return nil, nil
	}

	log.Printf("Initializing %s text-generation client with model: %s", cfg.AIProvider, cfg.AIModel)

	client, err := utils.NewTextGenClient(cfg.AIProvider, cfg.AIAPIKey(), cfg.AIModel)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func provideGeneratorService(client utils.TextGenClientInterface, cfg *infra.Config) services.GeneratorServiceInterface {
	return services.NewGeneratorService(client, cfg.GenerateTimeout)
}
