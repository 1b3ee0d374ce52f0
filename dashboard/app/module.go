package app

import (
	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/rest"
	"github.com/Gthulhu/podboard/dashboard/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

func ConfigModule(cfg config.DashboardConfig) fx.Option {
	return fx.Options(
		fx.Provide(func() config.DashboardConfig {
			return cfg
		}),
		fx.Provide(func(dashboardCfg config.DashboardConfig) config.ServerConfig {
			return dashboardCfg.Server
		}),
		fx.Provide(func(dashboardCfg config.DashboardConfig) config.RenderConfig {
			return dashboardCfg.Render
		}),
		fx.Provide(func(dashboardCfg config.DashboardConfig) config.TransportConfig {
			return dashboardCfg.Transport
		}),
		fx.Provide(func(dashboardCfg config.DashboardConfig) config.UbusConfig {
			return dashboardCfg.Ubus
		}),
		fx.Provide(func(dashboardCfg config.DashboardConfig) config.DockerConfig {
			return dashboardCfg.Docker
		}),
		fx.Provide(func(dashboardCfg config.DashboardConfig) config.KubernetesConfig {
			return dashboardCfg.Kubernetes
		}),
	)
}

// MetricsModule provides one registry as both registerer and gatherer, so
// tests and the server never share the global one.
func MetricsModule() fx.Option {
	return fx.Provide(func() (prometheus.Registerer, prometheus.Gatherer) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg, reg
	})
}

// TransportModule creates an Fx module that provides the configured backend, return domain.Transport
func TransportModule(cfg config.DashboardConfig) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		fx.Provide(NewTransport),
	)
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(transportModule fx.Option) fx.Option {
	return fx.Options(
		transportModule,
		MetricsModule(),
		fx.Provide(service.NewService),
	)
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(serviceModule fx.Option) fx.Option {
	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	)
}
