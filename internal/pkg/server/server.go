package server

import (
	"context"
	"io"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"
	"github.com/raymonelina/grpc-playground/internal/pkg/handler"
	"github.com/raymonelina/grpc-playground/internal/pkg/log"
	"github.com/raymonelina/grpc-playground/internal/pkg/scoring"
	"github.com/raymonelina/grpc-playground/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// outboundBuffer bounds the per-session outbound channel, applying
// backpressure to the handler when the send loop falls behind.
const outboundBuffer = 128

// Server implements the AdsService gRPC endpoint.
type Server struct {
	adspb.UnimplementedAdsServiceServer

	allocator session.Allocator
	generator scoring.Generator
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithSessionAllocator sets the session ID allocator for the server.
func WithSessionAllocator(alloc session.Allocator) Cfg {
	return func(s *Server) error {
		s.allocator = alloc
		return nil
	}
}

// WithGenerator sets the ad generator for the server.
func WithGenerator(g scoring.Generator) Cfg {
	return func(s *Server) error {
		s.generator = g
		return nil
	}
}

// NewServer creates a new Server with the given configuration.
func NewServer(cfgs ...Cfg) (*Server, error) {
	server := &Server{}
	for _, cfg := range cfgs {
		if err := cfg(server); err != nil {
			return nil, errors.Wrap(err, "apply Server cfg failed")
		}
	}
	if server.allocator == nil {
		server.allocator = session.NewAtomicAllocator()
	}
	if server.generator == nil {
		server.generator = scoring.NewMockGenerator()
	}
	return server, nil
}

// GetAds implements the gRPC endpoint for the bidirectional ads stream.
// Each stream gets its own session and handler; the only state shared
// across streams is the session ID allocator.
func (s *Server) GetAds(srv adspb.AdsService_GetAdsServer) error {
	ctx, cancel := context.WithCancel(srv.Context())
	defer cancel()

	sess := session.New(s.allocator)
	logger.WithField("session_id", sess.ID).Info("new bidirectional stream opened")

	h, err := handler.NewHandler(
		handler.WithSession(sess),
		handler.WithGenerator(s.generator),
	)
	if err != nil {
		return errors.Wrap(err, "new handler failed")
	}

	in := make(chan *adspb.Context)
	out := make(chan *adspb.AdsList, outboundBuffer)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return errors.Wrap(h.Run(ctx, in, out), "run handler failed")
	})
	g.Go(func() error {
		defer close(in)
		for {
			msg, err := srv.Recv()
			if errors.Is(err, io.EOF) {
				logger.WithFields(logrus.Fields{
					"session_id":         sess.ID,
					"contexts_received":  sess.RequestCount,
					"session_elapsed_ms": sess.Elapsed(),
				}).Info("client half-closed stream")
				return nil
			}
			if status.Code(err) == codes.Canceled {
				logger.WithField("session_id", sess.ID).Warning("client disconnected")
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "receive context failed")
			}
			logger.WithFields(log.ContextToFields(msg)).WithFields(logrus.Fields{
				"session_id":         sess.ID,
				"session_elapsed_ms": sess.Elapsed(),
			}).Info("received context")
			select {
			case in <- msg:
			case <-ctx.Done():
				return nil
			}
		}
	})
	for msg := range out {
		if err := srv.Send(msg); err != nil {
			cancel()
			logger.WithFields(logrus.Fields{
				"session_id": sess.ID,
				"version":    msg.Version,
			}).Warning("send ads list failed, receiver gone")
			break
		}
	}
	// Any receive error is forwarded to the peer exactly once, as the
	// stream's terminal status.
	return g.Wait()
}
