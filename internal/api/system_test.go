package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"ftpbot/internal/config"
	"ftpbot/internal/mocks"
	"ftpbot/internal/models"
	"ftpbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_WithLastRun(t *testing.T) {
	h, mockAgent, _ := setupTestHandlers(t)

	lastRun := testutil.CreateTestRun(func(r *models.Run) { r.ID = 3 })
	mockAgent.EXPECT().LastRun().Return(lastRun).Once()

	rec := serve(h, http.MethodGet, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	assert.True(t, response.Success)
	assert.Equal(t, "Service is healthy", response.Message)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
	assert.NotNil(t, data["timestamp"])
	assert.NotNil(t, data["uptime"])
	assert.Equal(t, "1.2.3", data["version"])

	run, ok := data["last_run"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), run["id"])
}

func TestHealthCheck_BeforeFirstRun(t *testing.T) {
	h, mockAgent, _ := setupTestHandlers(t)

	mockAgent.EXPECT().LastRun().Return(nil).Once()

	rec := serve(h, http.MethodGet, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, data, "last_run")
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestServe_StopsOnCancel(t *testing.T) {
	mockAgent := mocks.NewMockAgent(t)
	mockAgent.EXPECT().LastRun().Return(nil).Maybe()

	cfg := config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            freePort(t),
		ShutdownTimeout: time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, cfg, NewHandlers(mockAgent, mocks.NewMockRunRepository(t), "test")) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/api/v1/health", cfg.Port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServe_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            l.Addr().(*net.TCPAddr).Port,
		ShutdownTimeout: time.Second,
	}

	err = Serve(context.Background(), cfg, NewHandlers(mocks.NewMockAgent(t), mocks.NewMockRunRepository(t), "test"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server error")
}
