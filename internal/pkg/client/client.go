package client

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"
	"github.com/raymonelina/grpc-playground/internal/pkg/log"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// RefineDelay is how long the client waits between the initial context and
// the refined one.
const RefineDelay = 50 * time.Millisecond

// Deadline bounds for the receive race, in milliseconds. The drawn
// deadline is base in [DeadlineMinMS, DeadlineMaxMS] plus jitter in
// [-DeadlineJitterMS, DeadlineJitterMS], clamped back into the base range.
const (
	DeadlineMinMS    = 30
	DeadlineMaxMS    = 120
	DeadlineJitterMS = 5
)

// Client implements the caller side of the progressive ads protocol.
type Client struct {
	serverAddr string

	conn    *grpc.ClientConn
	channel adspb.AdsService_GetAdsClient
}

// Cfg configures a Client.
type Cfg func(*Client) error

// WithServerAddr sets the server address to connect to.
func WithServerAddr(addr string) Cfg {
	return func(c *Client) error {
		c.serverAddr = addr
		return nil
	}
}

// WithServerPort sets the local server port to connect to.
func WithServerPort(p uint16) Cfg {
	return func(c *Client) error {
		c.serverAddr = fmt.Sprintf("localhost:%d", p)
		return nil
	}
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfgs ...Cfg) (*Client, error) {
	client := &Client{}
	for _, cfg := range cfgs {
		if err := cfg(client); err != nil {
			return nil, errors.Wrap(err, "apply Client cfg failed")
		}
	}
	return client, nil
}

// Connect establishes the connection to the server.
func (c *Client) Connect(ctx context.Context) error {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return errors.Wrap(err, "close client connection failed")
		}
	}
	var err error
	c.conn, err = grpc.DialContext(ctx,
		c.serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // TODO: use TLS
	)
	if err != nil {
		return errors.Wrapf(err, "connect to %s failed", c.serverAddr)
	}
	return nil
}

// Close releases the client connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return errors.Wrap(c.conn.Close(), "close client connection failed")
}

type recvResult struct {
	list *adspb.AdsList
	err  error
}

// recv receives ads lists from the server and forwards them on the
// returned channel until the stream ends, errors, or ctx is cancelled.
// A message in flight when ctx is cancelled is dropped.
func (c *Client) recv(ctx context.Context) <-chan recvResult {
	out := make(chan recvResult)
	go func() {
		defer close(out)
		for {
			msg, err := c.channel.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				select {
				case out <- recvResult{err: err}:
				case <-ctx.Done():
				}
				return
			}
			if msg == nil {
				return
			}
			select {
			case out <- recvResult{list: msg}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// sendContexts performs the fixed request choreography: the bare context
// immediately, the refined context after RefineDelay, then half-close.
func (c *Client) sendContexts(ctx context.Context, query, asinID, understanding string) error {
	first := &adspb.Context{
		Query:  query,
		AsinId: asinID,
	}
	if err := c.channel.Send(first); err != nil {
		return errors.Wrap(err, "send initial context failed")
	}
	logger.WithFields(log.ContextToFields(first)).WithField("context_number", 1).Info("sent context")

	select {
	case <-time.After(RefineDelay):
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait before refined context failed")
	}

	second := &adspb.Context{
		Query:         query,
		AsinId:        asinID,
		Understanding: understanding,
	}
	if err := c.channel.Send(second); err != nil {
		return errors.Wrap(err, "send refined context failed")
	}
	logger.WithFields(log.ContextToFields(second)).WithField("context_number", 2).Info("sent context")

	if err := c.channel.CloseSend(); err != nil {
		return errors.Wrap(err, "half-close send side failed")
	}
	logger.Info("half-closed client stream")
	return nil
}

// drawDeadline computes the randomized receive deadline.
func drawDeadline() time.Duration {
	base := rand.Intn(DeadlineMaxMS-DeadlineMinMS+1) + DeadlineMinMS // nolint: gosec // timing jitter, not security
	jitter := rand.Intn(2*DeadlineJitterMS+1) - DeadlineJitterMS     // nolint: gosec
	ms := base + jitter
	if ms < DeadlineMinMS {
		ms = DeadlineMinMS
	}
	if ms > DeadlineMaxMS {
		ms = DeadlineMaxMS
	}
	return time.Duration(ms) * time.Millisecond
}

// collect races the receive loop against the deadline timer, buffering
// batches by version with last-write-wins semantics. Whatever is fully
// buffered when the race resolves is kept.
func (c *Client) collect(ctx context.Context, cancel context.CancelFunc, deadline time.Duration) map[uint32]*adspb.AdsList {
	buffer := make(map[uint32]*adspb.AdsList)
	in := c.recv(ctx)
	timer := time.NewTimer(deadline)
	defer timer.Stop()
	for {
		select {
		case res, ok := <-in:
			if !ok {
				logger.WithField("versions_received", len(buffer)).Info("stream completed before deadline")
				return buffer
			}
			if res.err != nil {
				// A receive error bounds result quality, it does not
				// fail the call.
				logger.WithError(res.err).Warn("stream error occurred")
				return buffer
			}
			_, replaced := buffer[res.list.Version]
			buffer[res.list.Version] = res.list
			logger.WithFields(log.AdsListToFields(res.list)).WithField("is_replacement", replaced).Info("received ads list")
		case <-timer.C:
			cancel()
			logger.WithFields(logrus.Fields{
				"deadline_ms":       deadline.Milliseconds(),
				"versions_received": len(buffer),
			}).Info("deadline reached, proceeding with buffered results")
			return buffer
		}
	}
}

// GetAds runs one best-effort retrieval session against the server.
//
// It sends the query context twice (bare, then refined after RefineDelay),
// half-closes, and collects versioned responses until the stream ends or a
// randomized deadline fires, whichever comes first. The buffered batch
// with the highest version wins. A nil result with a nil error means no
// batch arrived in time; only transport failures while opening or sending
// are errors.
func (c *Client) GetAds(ctx context.Context, query, asinID, understanding string) (*adspb.AdsList, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if c.channel == nil {
		if c.conn == nil {
			return nil, ErrNotConnected
		}
		channel, err := adspb.NewAdsServiceClient(c.conn).GetAds(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "open ads stream failed")
		}
		c.channel = channel
	}

	if err := c.sendContexts(ctx, query, asinID, understanding); err != nil {
		return nil, err
	}

	deadline := drawDeadline()
	logger.WithFields(logrus.Fields{
		"deadline_ms":     deadline.Milliseconds(),
		"min_deadline_ms": DeadlineMinMS,
		"max_deadline_ms": DeadlineMaxMS,
	}).Info("drew randomized deadline for result selection")

	buffer := c.collect(ctx, cancel, deadline)

	var best *adspb.AdsList
	for _, list := range buffer {
		if best == nil || list.Version > best.Version {
			best = list
		}
	}
	if best == nil {
		logger.WithField("deadline_ms", deadline.Milliseconds()).Warn("no ads list received within deadline")
		return nil, nil
	}
	logger.WithFields(logrus.Fields{
		"selected_version":    best.Version,
		"ads_count":           len(best.Ads),
		"versions_considered": len(buffer),
	}).Info("selected final ads list")
	return best, nil
}
