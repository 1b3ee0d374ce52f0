package rest

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/dashboard/render"
	"github.com/pkg/errors"
)

const htmlContentType = "text/html; charset=utf-8"

// DashboardPageData is the input of the page template.
type DashboardPageData struct {
	Title      string
	RefreshSec int
	CPU        template.HTML
	Containers template.HTML
}

func (h *Handler) renderOptions() render.Options {
	return render.Options{
		ShowInfra:  h.showInfra,
		Dispatcher: h.Svc,
		ActionPath: render.DefaultActionPath,
	}
}

// DashboardPage serves both widgets. Every request loads a fresh snapshot.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	containers, err := render.HTML(render.Containers(h.Svc.LoadSnapshot(ctx), h.renderOptions()))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	cpu, err := render.HTML(render.CPU(h.Svc.LoadCPU(ctx)))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	h.writePage(w, r, pageTemplate, DashboardPageData{
		Title:      "Status",
		RefreshSec: h.refreshSec,
		CPU:        cpu,
		Containers: containers,
	})
}

// writePage renders into a buffer so a template failure can still answer 500.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data DashboardPageData) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.HandleError(r.Context(), w, errors.WithMessage(err, "render dashboard page"))
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) ContainersFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeTable(w, r, render.Containers(h.Svc.LoadSnapshot(ctx), h.renderOptions()))
}

func (h *Handler) CPUFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeTable(w, r, render.CPU(h.Svc.LoadCPU(ctx)))
}

func (h *Handler) writeTable(w http.ResponseWriter, r *http.Request, table *render.Table) {
	markup, err := render.HTML(table)
	if err != nil {
		h.HandleError(r.Context(), w, err)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(markup))
}

// ListContainersResponse carries the normalised snapshot.
type ListContainersResponse struct {
	Pods []domain.Pod `json:"pods"`
}

func (h *Handler) ListContainers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snapshot := h.Svc.LoadSnapshot(ctx)
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&ListContainersResponse{Pods: snapshot.Pods}))
}
