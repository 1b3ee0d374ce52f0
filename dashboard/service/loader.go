package service

import (
	"context"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/pkg/logger"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// LoadSnapshot fetches the inventory. Any transport failure, including a
// nil reply, yields an empty snapshot.
func (svc *Service) LoadSnapshot(ctx context.Context) *domain.Snapshot {
	if svc.Transport == nil {
		logger.Logger(ctx).Warn().Err(domain.ErrNoClient).Msg("no transport configured, rendering empty snapshot")
		svc.metrics.observeLoad(resultError, 0, 0)
		return domain.EmptySnapshot()
	}

	snapshot, err := svc.Transport.ListContainers(ctx)
	if err == nil && snapshot == nil {
		err = domain.ErrMalformedReply
	}
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("list containers failed, rendering empty snapshot")
		svc.metrics.observeLoad(resultError, 0, 0)
		return domain.EmptySnapshot()
	}

	normalized := normalizeSnapshot(snapshot)
	running := 0
	for _, pod := range normalized.Pods {
		for _, c := range pod.Containers {
			if c.Running {
				running++
			}
		}
	}
	logger.Logger(ctx).Debug().Msgf("loaded snapshot with %d pods, %d running containers", len(normalized.Pods), running)
	svc.metrics.observeLoad(resultOK, len(normalized.Pods), running)
	return normalized
}

// normalizeSnapshot copies the reply so the renderer owns its input, and
// replaces nil slices with empty ones.
func normalizeSnapshot(s *domain.Snapshot) *domain.Snapshot {
	out := &domain.Snapshot{Pods: make([]domain.Pod, 0, len(s.Pods))}
	for _, pod := range s.Pods {
		containers := make([]domain.Container, len(pod.Containers))
		copy(containers, pod.Containers)
		out.Pods = append(out.Pods, domain.Pod{Name: pod.Name, Containers: containers})
	}
	return out
}
