package service

import (
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var (
	_ domain.Service = (*Service)(nil)
)

type Params struct {
	fx.In
	Transport domain.Transport
	CPUSource domain.CPUSource `optional:"true"`
	Registry  prometheus.Registerer
}

func NewService(params Params) (domain.Service, error) {
	metrics, err := NewMetrics(params.Registry)
	if err != nil {
		return nil, err
	}
	svc := &Service{
		Transport: params.Transport,
		CPUSource: params.CPUSource,
		metrics:   metrics,
	}
	return svc, nil
}

// Service loads snapshots and forwards actions. It keeps nothing between
// refreshes.
type Service struct {
	Transport domain.Transport
	CPUSource domain.CPUSource
	metrics   *Metrics
}
