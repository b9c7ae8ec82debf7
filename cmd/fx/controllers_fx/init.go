package controllers_fx

import (
	"go.uber.org/fx"
	"wanderly/internal/api/controllers"
	"wanderly/internal/config"
)

var Module = fx.Options(
	fx.Provide(provideCookieSettings),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController))

func provideCookieSettings(cfg *config.Config) controllers.CookieSettings {
	return controllers.CookieSettings{
		Secure:      cfg.CookieSecure,
		FrontendURL: cfg.FrontendURL,
	}
}
