package db_fx

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderly/internal/config"
	"wanderly/internal/infra"
	"wanderly/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(provideMongoClient, provideMongoDatabase, provideAuditDB),
	fx.Invoke(ensureIndexes),
)

func provideMongoClient(lc fx.Lifecycle, cfg *config.Config) (*mongo.Client, error) {
	client, err := infra.InitMongo(context.Background(), cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseMongo(ctx, client)
			return nil
		},
	})
	return client, nil
}

func provideMongoDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.MongoDatabase)
}

// provideAuditDB returns nil when POSTGRES_URL is unset.
func provideAuditDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil || db == nil {
		return nil, err
	}
	if err := repositories.MigrateGenerationLog(db); err != nil {
		infra.ClosePostgresql(db)
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}

func ensureIndexes(lc fx.Lifecycle, accountRepo repositories.AccountRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return accountRepo.EnsureIndexes(ctx)
		},
	})
}
