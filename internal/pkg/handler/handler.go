package handler

import (
	"context"
	"time"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"
	"github.com/raymonelina/grpc-playground/internal/pkg/scoring"
	"github.com/raymonelina/grpc-playground/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// DeferDelay is how long the server waits after the second request before
// emitting the final refined batch.
const DeferDelay = 50 * time.Millisecond

// DeferredVersion is the version stamped on the delayed batch, regardless
// of how many requests preceded it.
const DeferredVersion = 3

// deferTrigger is the request ordinal that arms the deferred batch.
const deferTrigger = 2

type handler struct {
	sess      *session.Session
	generator scoring.Generator
}

// HandlerCfg configures a handler.
type HandlerCfg func(*handler) error

// WithSession sets the session owned by this handler.
func WithSession(sess *session.Session) HandlerCfg {
	return func(h *handler) error {
		h.sess = sess
		return nil
	}
}

// WithGenerator sets the ad generator.
func WithGenerator(g scoring.Generator) HandlerCfg {
	return func(h *handler) error {
		h.generator = g
		return nil
	}
}

// NewHandler creates a new handler.
func NewHandler(cfgs ...HandlerCfg) (*handler, error) {
	h := &handler{}
	for _, cfg := range cfgs {
		if err := cfg(h); err != nil {
			return nil, errors.Wrap(err, "apply handler cfg failed")
		}
	}
	if h.generator == nil {
		h.generator = scoring.NewMockGenerator()
	}
	return h, nil
}

// handleRequest scores one inbound context at its arrival ordinal.
// Every request gets an immediate batch, even a 3rd or later one whose
// ordinal collides with the deferred version; the duplicate emission is
// part of the protocol and the client's buffer resolves it.
func (h *handler) handleRequest(req *adspb.Context) *adspb.AdsList {
	h.sess.RequestCount++
	start := time.Now()
	batch := h.generator.Generate(req, h.sess.RequestCount)
	logger.WithFields(logrus.Fields{
		"session_id":         h.sess.ID,
		"version":            batch.Version,
		"ads_count":          len(batch.Ads),
		"generation_ms":      time.Since(start).Milliseconds(),
		"session_elapsed_ms": h.sess.Elapsed(),
	}).Info("sending ads list")
	return batch
}

// scheduleDeferred arms the delayed final batch for the given context.
// The returned channel closes when the deferred emission has finished,
// so Run can await it as a unit instead of orphaning a timer.
func (h *handler) scheduleDeferred(ctx context.Context, req *adspb.Context, out chan<- *adspb.AdsList) <-chan struct{} {
	logger.WithFields(logrus.Fields{
		"session_id": h.sess.ID,
		"delay_ms":   DeferDelay.Milliseconds(),
	}).Info("scheduling deferred ads list")
	done := make(chan struct{})
	timer := time.NewTimer(DeferDelay)
	go func() {
		defer close(done)
		<-timer.C
		start := time.Now()
		batch := h.generator.Generate(req, DeferredVersion)
		select {
		case out <- batch:
			logger.WithFields(logrus.Fields{
				"session_id":         h.sess.ID,
				"version":            uint32(DeferredVersion),
				"ads_count":          len(batch.Ads),
				"generation_ms":      time.Since(start).Milliseconds(),
				"session_elapsed_ms": h.sess.Elapsed(),
			}).Info("sending deferred ads list")
		case <-ctx.Done():
			logger.WithField("session_id", h.sess.ID).Warn("receiver gone, dropping deferred ads list")
		}
	}()
	return done
}

// Run consumes inbound requests until the channel closes, emitting one
// immediate batch per request plus the single deferred batch armed by the
// second request. It owns the outbound channel: out is closed only after
// the inbound stream has ended and any deferred emission has completed.
// The deferred emission is deliberately not cancelled when the inbound
// side ends or errors; ending the session early must not suppress the
// final refined batch.
func (h *handler) Run(ctx context.Context, in <-chan *adspb.Context, out chan<- *adspb.AdsList) error {
	defer close(out)
	var deferred <-chan struct{}
	defer func() {
		if deferred != nil {
			<-deferred
		}
	}()
	for req := range in {
		batch := h.handleRequest(req)
		// Prefer emitting over cancellation: every request gets its
		// immediate batch as long as the outbound channel has room.
		select {
		case out <- batch:
		default:
			select {
			case out <- batch:
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "emit batch failed")
			}
		}
		if h.sess.RequestCount == deferTrigger {
			deferred = h.scheduleDeferred(ctx, req, out)
		}
	}
	return nil
}
