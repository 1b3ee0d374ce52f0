package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	gatherer := h.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	engine.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	page := engine.Group("", LoggerMiddleware)
	page.GET("/", h.echoHandler(h.DashboardPage))
	page.GET("/status/containers", h.echoHandler(h.ContainersFragment))
	page.GET("/status/cpu", h.echoHandler(h.CPUFragment))
	page.POST("/containers/:name/:verb", h.echoHandlerWithParams(h.ContainerAction))

	api := engine.Group("/api", LoggerMiddleware)
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		apiV1.GET("/containers", h.echoHandler(h.ListContainers))
		apiV1.POST("/containers/:name/:verb", h.echoHandlerWithParams(h.APIContainerAction))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), pathParam(r, c.Param(name))))
		}
		handlerFunc(c.Response(), r)
		return nil
	}
}

// pathParamKey is a type for path parameter context keys
type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}

// pathParam undoes the escaping echo keeps when it routes on the raw path,
// which happens for names holding a slash.
func pathParam(r *http.Request, value string) string {
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
