package service

import (
	"context"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/pkg/logger"
)

// LoadCPU gathers the cpu widget input. A failing query leaves its half of
// the report empty, which the widget shows as systembus not loaded.
func (svc *Service) LoadCPU(ctx context.Context) *domain.CPUReport {
	report := &domain.CPUReport{CPU: domain.CPUInfo{}}
	if svc.CPUSource == nil {
		return report
	}

	info, err := svc.CPUSource.CPUInfo(ctx)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("cpu info query failed")
	} else if info != nil {
		report.CPU = info
	}

	system, err := svc.CPUSource.SystemInfo(ctx)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("system info query failed")
	} else {
		report.System = system
	}
	return report
}
