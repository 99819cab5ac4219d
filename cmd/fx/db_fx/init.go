package db_fx

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"wanderai/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg *infra.Config) *mongo.Database {
	db := infra.InitMongo(cfg)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseMongo(db)
			return nil
		},
	})

	return db
}
