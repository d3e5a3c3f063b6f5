package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatekeeper/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_GracefulShutdownReturnsNil(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	cfg := &config.Config{}
	cfg.HTTP.Port = 0

	s := &httpServer{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		server: e,
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(context.Background())
	}()

	require.Eventually(t, func() bool {
		return e.ListenerAddr() != nil
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, s.stop(context.Background()))

	// A graceful shutdown is a clean exit, not a serve failure.
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}
