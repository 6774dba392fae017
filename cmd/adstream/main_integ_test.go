// build +integration
package main_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/raymonelina/grpc-playground/internal/app/apps"
	"github.com/raymonelina/grpc-playground/internal/app/cfg"

	"github.com/stretchr/testify/require"
)

func TestClientServerApp(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip()
	}
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s, err := apps.NewServerApp(cfg.NewPortCfg(51801))
		require.NoError(t, err)
		require.NoError(t, s.Run(ctx, nil))
	}()
	go func() {
		defer wg.Done()
		defer cancel()
		time.Sleep(200 * time.Millisecond)
		c, err := apps.NewClientApp(
			cfg.NewPortCfg(51801),
			cfg.NewUnderstandingCfg("refined understanding based on query analysis"),
		)
		require.NoError(t, err)
		require.NoError(t, c.Run(ctx, nil))
	}()
	wg.Wait()
}
