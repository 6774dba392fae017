package apps

import (
	"context"
	"fmt"
	"net"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"
	"github.com/raymonelina/grpc-playground/internal"
	"github.com/raymonelina/grpc-playground/internal/pkg/server"
	"github.com/raymonelina/grpc-playground/internal/pkg/session"
	"github.com/raymonelina/grpc-playground/internal/pkg/validate"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// ServerAppCfg configures a ServerApp.
type ServerAppCfg interface {
	ApplyServerApp(*ServerApp) error
}

// ServerApp is the demo ads server application.
type ServerApp struct {
	Port uint16 `validate:"required"`
}

// NewServerApp creates a new ServerApp.
func NewServerApp(cfgs ...ServerAppCfg) (*ServerApp, error) {
	app := &ServerApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyServerApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ServerApp cfg failed")
		}
	}
	if app.Port == 0 {
		app.Port = internal.Port
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ServerApp failed")
	}
	return app, nil
}

// Run serves the ads service until ctx is cancelled.
func (app *ServerApp) Run(ctx context.Context, args []string) error {
	addr := fmt.Sprintf("127.0.0.1:%d", app.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s failed", addr)
	}

	svc, err := server.NewServer(
		server.WithSessionAllocator(session.NewAtomicAllocator()),
	)
	if err != nil {
		return errors.Wrap(err, "create server failed")
	}

	grpcServer := grpc.NewServer()
	adspb.RegisterAdsServiceServer(grpcServer, svc)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	logger.WithField("addr", addr).Info("ads server listening")
	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return errors.Wrap(err, "serve failed")
	}
	return nil
}
