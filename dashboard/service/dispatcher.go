package service

import (
	"context"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/pkg/logger"
)

// Dispatch forwards verb for the named container. Failures are logged and
// counted; the next refresh shows whether the action took effect.
func (svc *Service) Dispatch(ctx context.Context, verb domain.Verb, name string) {
	log := logger.Logger(ctx).With().Str("verb", verb.String()).Str("container", name).Logger()
	if svc.Transport == nil {
		log.Warn().Err(domain.ErrNoClient).Msg("dropping container action")
		svc.metrics.observeDispatch(verb.String(), resultError)
		return
	}

	if err := svc.Transport.Exec(ctx, verb, domain.ContainerGroup, name); err != nil {
		log.Warn().Err(err).Msg("container action failed")
		svc.metrics.observeDispatch(verb.String(), resultError)
		return
	}
	log.Info().Msg("container action dispatched")
	svc.metrics.observeDispatch(verb.String(), resultOK)
}
