package app

import (
	"context"
	"testing"

	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/client/ubus"
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/dashboard/rest"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func loadTestConfig(t *testing.T) config.DashboardConfig {
	t.Helper()
	logger.InitLogger()
	cfg, err := config.InitDashboardConfig("dashboard_config.test", "")
	require.NoError(t, err)
	return cfg
}

func TestHandlerModuleBuildsHandler(t *testing.T) {
	cfg := loadTestConfig(t)

	var handler *rest.Handler
	var svc domain.Service
	app := fxtest.New(t,
		fx.NopLogger,
		HandlerModule(ServiceModule(TransportModule(cfg))),
		fx.Populate(&handler, &svc),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, handler)
	require.NotNil(t, svc)
	// The docker socket in the test config does not exist, so the load
	// collapses into the empty snapshot.
	snapshot := svc.LoadSnapshot(context.Background())
	assert.Empty(t, snapshot.Pods)
}

func TestNewTransportUbus(t *testing.T) {
	cfg := loadTestConfig(t)
	result, err := NewTransport(TransportParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Transport: config.TransportConfig{Backend: " UBUS "},
		Ubus:      cfg.Ubus,
	})
	require.NoError(t, err)
	client, ok := result.Transport.(*ubus.Client)
	require.True(t, ok)
	assert.Same(t, client, result.CPUSource)
}

func TestNewTransportDockerHasNoCPUSource(t *testing.T) {
	cfg := loadTestConfig(t)
	lc := fxtest.NewLifecycle(t)
	result, err := NewTransport(TransportParams{
		Lifecycle: lc,
		Transport: config.TransportConfig{Backend: config.BackendDocker},
		Docker:    cfg.Docker,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Transport)
	assert.Nil(t, result.CPUSource)
	lc.RequireStart().RequireStop()
}

func TestNewTransportKubernetesNeedsConfig(t *testing.T) {
	logger.InitLogger()
	_, err := NewTransport(TransportParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Transport: config.TransportConfig{Backend: config.BackendKubernetes},
	})
	assert.ErrorIs(t, err, domain.ErrNoKubeConfig)
}

func TestNewTransportUnknownBackend(t *testing.T) {
	logger.InitLogger()
	_, err := NewTransport(TransportParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Transport: config.TransportConfig{Backend: "lxc"},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
	assert.Contains(t, err.Error(), `"lxc"`)
}

func TestNewRestAppMissingConfig(t *testing.T) {
	_, err := NewRestApp("does_not_exist", t.TempDir())
	assert.Error(t, err)
}
