// cmd/fx/prompt_fx/module.go
package prompt_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"wanderly/internal/config"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(ProvideGenerationClient)

// ProvideGenerationClient creates the generation client for GENERATION_PROVIDER.
func ProvideGenerationClient(lc fx.Lifecycle, cfg *config.Config) (utils.GenerationClientInterface, error) {
	client, err := utils.NewGenerationClient(utils.GenerationConfig{
		Provider:    cfg.GenerationProvider,
		APIKey:      cfg.GenerationAPIKey,
		Model:       cfg.GenerationModel,
		HTTPTimeout: cfg.GenerationHTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Initializing %s generation client with model: %s", client.Provider(), client.Model())

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}
