package apps

import (
	"context"
	"fmt"

	"github.com/raymonelina/grpc-playground/internal"
	"github.com/raymonelina/grpc-playground/internal/pkg/client"
	"github.com/raymonelina/grpc-playground/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Default positional arguments for the demo client.
const (
	DefaultQuery  = "coffee maker"
	DefaultAsinID = "B000123"
)

// ClientAppCfg configures a ClientApp.
type ClientAppCfg interface {
	ApplyClientApp(*ClientApp) error
}

// ClientApp is the demo ads client application.
type ClientApp struct {
	Port          uint16 `validate:"required"`
	Understanding string
}

// NewClientApp creates a new ClientApp.
func NewClientApp(cfgs ...ClientAppCfg) (*ClientApp, error) {
	app := &ClientApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyClientApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ClientApp cfg failed")
		}
	}
	if app.Port == 0 {
		app.Port = internal.Port
	}
	if app.Understanding == "" {
		app.Understanding = internal.Understanding
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ClientApp failed")
	}
	return app, nil
}

// Run performs one best-effort retrieval against the server and logs the
// outcome. Positional args override the server address, query, and asin_id
// in that order.
func (app *ClientApp) Run(ctx context.Context, args []string) error {
	addr := fmt.Sprintf("localhost:%d", app.Port)
	query := DefaultQuery
	asinID := DefaultAsinID
	if len(args) > 0 && args[0] != "" {
		addr = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		query = args[1]
	}
	if len(args) > 2 && args[2] != "" {
		asinID = args[2]
	}

	c, err := client.NewClient(
		client.WithServerAddr(addr),
	)
	if err != nil {
		return errors.Wrap(err, "create client failed")
	}
	if err := c.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect client failed")
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.WithError(err).Warn("close client failed")
		}
	}()

	result, err := c.GetAds(ctx, query, asinID, app.Understanding)
	if err != nil {
		return errors.Wrap(err, "get ads failed")
	}
	if result == nil {
		logger.WithFields(logrus.Fields{
			"query":   query,
			"asin_id": asinID,
		}).Warn("no ads list received within deadline")
		return nil
	}
	logger.WithFields(logrus.Fields{
		"version":   result.Version,
		"ads_count": len(result.Ads),
	}).Info("final ads list")
	for i, ad := range result.Ads {
		logger.WithFields(logrus.Fields{
			"rank":    i + 1,
			"asin_id": ad.AsinId,
			"ad_id":   ad.AdId,
			"score":   fmt.Sprintf("%.3f", ad.Score),
		}).Info("ad")
	}
	return nil
}
