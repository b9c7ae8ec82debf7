package account_fx

import (
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"wanderly/internal/config"
	"wanderly/internal/repositories"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService,
	provideAccountRepo,
	provideGoogleProvider,
	provideStateSigner)

func provideAccountRepo(db *mongo.Database) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

// provideGoogleProvider returns nil when no Google client is configured.
func provideGoogleProvider(cfg *config.Config) utils.GoogleIdentityProvider {
	if !cfg.GoogleEnabled() {
		log.Println("GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set, Google login disabled")
		return nil
	}
	return utils.NewGoogleOAuthProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
}

func provideStateSigner(cfg *config.Config) *utils.StateSigner {
	return utils.NewStateSigner(cfg.SessionSecret)
}
