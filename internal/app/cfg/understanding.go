package cfg

import (
	"github.com/raymonelina/grpc-playground/internal"
	"github.com/raymonelina/grpc-playground/internal/app/apps"
)

// UnderstandingCfg is configuration for the refined understanding the
// client sends with its second context.
type UnderstandingCfg struct {
	understanding string
}

// NewUnderstandingCfg creates a new UnderstandingCfg from the given config.
func NewUnderstandingCfg(understanding string) *UnderstandingCfg {
	return &UnderstandingCfg{
		understanding: understanding,
	}
}

// UnderstandingFromEnv creates a new UnderstandingCfg from the current environment.
func UnderstandingFromEnv() *UnderstandingCfg {
	return &UnderstandingCfg{
		understanding: internal.Understanding,
	}
}

// ApplyClientApp applies the UnderstandingCfg to a ClientApp.
func (cfg UnderstandingCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Understanding = cfg.understanding
	return nil
}
