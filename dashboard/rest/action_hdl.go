package rest

import (
	"context"
	"net/http"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/dashboard/render"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/pkg/errors"
)

// ContainerActionResponse echoes what was forwarded. Acceptance says nothing
// about the outcome; the next snapshot shows it.
type ContainerActionResponse struct {
	Container string `json:"container"`
	Verb      string `json:"verb"`
	Group     string `json:"group"`
}

// ContainerAction handles the form posted by a table button and sends the
// browser back to the dashboard. A stale page is redirected too; the fresh
// render shows what is on offer now.
func (h *Handler) ContainerAction(w http.ResponseWriter, r *http.Request) {
	name, verb, ok := h.parseAction(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := h.pressButton(ctx, verb, name); err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("container action not offered")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) APIContainerAction(w http.ResponseWriter, r *http.Request) {
	name, verb, ok := h.parseAction(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := h.pressButton(ctx, verb, name); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&ContainerActionResponse{
		Container: name,
		Verb:      verb.String(),
		Group:     domain.ContainerGroup,
	}))
}

func (h *Handler) parseAction(w http.ResponseWriter, r *http.Request) (string, domain.Verb, bool) {
	ctx := r.Context()
	name := h.GetPathParam(r, "name")
	if name == "" {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "container name is required", nil)
		return "", "", false
	}
	verb, err := domain.ParseVerb(h.GetPathParam(r, "verb"))
	if err != nil {
		h.HandleError(ctx, w, errors.WithMessagef(err, "verb %q", h.GetPathParam(r, "verb")))
		return "", "", false
	}
	return name, verb, true
}

// pressButton renders the container table and clicks the button the form
// would have been posted from. Only actions the table offers are forwarded.
func (h *Handler) pressButton(ctx context.Context, verb domain.Verb, name string) error {
	opts := h.renderOptions()
	table := render.Containers(h.Svc.LoadSnapshot(ctx), opts)
	b, ok := table.FindButton(opts.ActionPath(verb, name))
	if !ok || b.Click == nil {
		return errors.WithMessagef(domain.ErrActionNotOffered, "no %s button for %q", verb, name)
	}
	b.Click(ctx)
	return nil
}
