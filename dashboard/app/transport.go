package app

import (
	"context"
	"strings"

	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/client/docker"
	"github.com/Gthulhu/podboard/dashboard/client/ubus"
	"github.com/Gthulhu/podboard/dashboard/domain"
	k8sadapter "github.com/Gthulhu/podboard/dashboard/k8s_adapter"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type TransportParams struct {
	fx.In
	Lifecycle  fx.Lifecycle
	Transport  config.TransportConfig
	Ubus       config.UbusConfig
	Docker     config.DockerConfig
	Kubernetes config.KubernetesConfig
}

// TransportResult leaves CPUSource nil for backends without per-core load.
type TransportResult struct {
	fx.Out
	Transport domain.Transport
	CPUSource domain.CPUSource
}

func NewTransport(params TransportParams) (TransportResult, error) {
	backend := strings.ToLower(strings.TrimSpace(params.Transport.Backend))
	logger.Logger(context.Background()).Info().Msgf("using %s transport backend", backend)

	switch backend {
	case config.BackendUbus:
		client := ubus.NewClient(params.Ubus)
		return TransportResult{Transport: client, CPUSource: client}, nil
	case config.BackendDocker:
		transport, err := docker.NewTransport(params.Docker)
		if err != nil {
			return TransportResult{}, err
		}
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return transport.Close()
			},
		})
		return TransportResult{Transport: transport}, nil
	case config.BackendKubernetes:
		adapter, err := k8sadapter.NewAdapter(params.Kubernetes)
		if err != nil {
			return TransportResult{}, err
		}
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				adapter.StopPodWatcher()
				return nil
			},
		})
		return TransportResult{Transport: adapter}, nil
	default:
		return TransportResult{}, errors.WithMessagef(domain.ErrUnknownBackend, "%q", params.Transport.Backend)
	}
}
