package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/dashboard/errs"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Version is stamped at build time.
var Version = "dev"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// SuccessResponse represents the success response structure
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type Params struct {
	fx.In
	Svc          domain.Service
	ServerConfig config.ServerConfig
	RenderConfig config.RenderConfig
	Gatherer     prometheus.Gatherer
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc:        params.Svc,
		showInfra:  params.RenderConfig.ShowInfra,
		refreshSec: params.ServerConfig.RefreshIntervalSec,
		gatherer:   params.Gatherer,
	}, nil
}

type Handler struct {
	Svc domain.Service

	showInfra  bool
	refreshSec int
	gatherer   prometheus.Gatherer
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUnknownVerb) {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}
	if errors.Is(err, domain.ErrActionNotOffered) {
		h.ErrorResponse(ctx, w, http.StatusNotFound, err.Error(), err)
		return
	}
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.OriginalErr)
		return
	}
	h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal Server Error", err)
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		if status >= 500 {
			logger.Logger(ctx).Error().Err(err).Msg(errMsg)
		} else {
			logger.Logger(ctx).Warn().Err(err).Msg(errMsg)
		}
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// VersionResponse describes the version endpoint payload.
type VersionResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Endpoints string `json:"endpoints"`
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := VersionResponse{
		Message:   "Podboard Container Dashboard",
		Version:   Version,
		Endpoints: "/ (GET), /status/containers (GET), /status/cpu (GET), /containers/:name/:verb (POST), /api/v1/containers (GET), /api/v1/containers/:name/:verb (POST), /health (GET), /metrics (GET), /static/ (Frontend)",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, NewSuccessResponse(&response))
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Podboard Container Dashboard",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
