package config_fx

import (
	"go.uber.org/fx"
	"wanderly/internal/config"
)

var Module = fx.Provide(config.Load)
