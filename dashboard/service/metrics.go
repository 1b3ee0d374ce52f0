package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "podboard"

// Metrics counts loader and dispatcher outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	loads       *prometheus.CounterVec
	dispatches  *prometheus.CounterVec
	lastPods    prometheus.Gauge
	lastRunning prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "snapshot_loads_total",
			Help:      "Snapshot loads by result.",
		}, []string{"result"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "container_actions_total",
			Help:      "Container actions forwarded to the transport by verb and result.",
		}, []string{"verb", "result"}),
		lastPods: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "snapshot_pods",
			Help:      "Pods in the last loaded snapshot.",
		}),
		lastRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "snapshot_running_containers",
			Help:      "Running containers in the last loaded snapshot.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.loads, m.dispatches, m.lastPods, m.lastRunning} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric collector: %v", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeLoad(result string, pods, running int) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(result).Inc()
	m.lastPods.Set(float64(pods))
	m.lastRunning.Set(float64(running))
}

func (m *Metrics) observeDispatch(verb, result string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(verb, result).Inc()
}
