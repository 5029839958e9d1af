package handlers

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestServer_RegisterHTTPHandler(t *testing.T) {
	s := NewServer(50061, 18090, zaptest.NewLogger(t))
	s.RegisterHTTPHandler(http.NotFoundHandler())

	if s.httpServer.Handler == nil {
		t.Error("expected httpServer.Handler to be set")
	}
	if s.httpServer.Addr != s.httpEndpoint {
		t.Errorf("expected httpServer.Addr %q, got %q", s.httpEndpoint, s.httpServer.Addr)
	}
}

func TestServer_StartStop(t *testing.T) {
	logger := zaptest.NewLogger(t)
	s := NewServer(50062, 18091, logger, grpc.Creds(insecure.NewCredentials()))

	rpc, err := NewRPCHandler(failingController{}, logger)
	require.NoError(t, err)
	s.RegisterHTTPHandler(NewRouter(rpc, nil, logger))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	// Give the server a moment to start.
	time.Sleep(200 * time.Millisecond)

	conn, err := grpc.NewClient(
		"localhost"+s.grpcEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	httpResp, err := http.Get("http://localhost" + s.httpEndpoint + PathPrefix + "healthcheck")
	require.NoError(t, err)
	_ = httpResp.Body.Close()
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)

	s.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Server Start returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for server to stop")
	}

	// Both endpoints are free again after shutdown.
	for _, endpoint := range []string{s.grpcEndpoint, s.httpEndpoint} {
		lis, err := net.Listen("tcp", endpoint)
		if err != nil {
			t.Errorf("expected to be able to listen on %q after shutdown, but got error: %v", endpoint, err)
		} else {
			lis.Close()
		}
	}
}
