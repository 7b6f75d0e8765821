package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/pursuit/internal/platform/metrics"
)

func TestAdminServesHealthAndMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ConnectionOpened()

	adm, err := newAdmin("127.0.0.1:0", reg)
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() { served <- adm.serve() }()

	resp, err := http.Get("http://" + adm.addr() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "world_connections 1")

	conn, err := grpc.NewClient("passthrough:///"+adm.addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	check, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: HealthService})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check.GetStatus())

	require.NoError(t, adm.close())
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("admin listener did not stop")
	}
}

func TestAdminDisabled(t *testing.T) {
	t.Parallel()
	adm, err := newAdmin("  ", nil)
	require.NoError(t, err)
	assert.Nil(t, adm)
	assert.Empty(t, adm.addr())
	assert.NoError(t, adm.serve())
	assert.NoError(t, adm.close())
}
