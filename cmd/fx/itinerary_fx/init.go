package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderly/internal/repositories"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationLogRepo,
	provideItineraryService)

func provideGenerationLogRepo(db *gorm.DB) repositories.GenerationLogRepository {
	if db == nil {
		return repositories.NewNoopGenerationLogRepository()
	}
	return repositories.NewGenerationLogRepository(db)
}

func provideItineraryService(
	generator utils.GenerationClientInterface,
	accountRepo repositories.AccountRepository,
	auditRepo repositories.GenerationLogRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, accountRepo, auditRepo)
}
