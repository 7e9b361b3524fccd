package main

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return e
}

func serveAsync(e *echo.Echo, addr string, quit <-chan os.Signal) <-chan error {
	done := make(chan error, 1)
	go func() { done <- serve(e, addr, quit, zap.NewNop()) }()
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
		return nil
	}
}

func TestServe_ReturnsStartError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = wait(t, serveAsync(newEcho(), ln.Addr().String(), make(chan os.Signal)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ln.Addr().String())
}

func TestServe_ShutsDownOnSignal(t *testing.T) {
	e := newEcho()
	quit := make(chan os.Signal, 1)
	done := serveAsync(e, "127.0.0.1:0", quit)

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)
	quit <- syscall.SIGTERM

	assert.NoError(t, wait(t, done))
}
