package rest

import (
	"bytes"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/rs/xid"
)

// LoggerMiddleware tags the request context logger with a request id and
// logs completion by status class.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		r := c.Request()
		ctx := r.Context()
		reqID := r.Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = xid.New().String()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		start := time.Now()
		log := logger.Logger(ctx).With().
			Str("method", r.Method).Str("req_id", reqID).
			Str("url", r.URL.String()).Logger()

		defer func() {
			if p := recover(); p != nil {
				log.Error().Interface("panic", p).Msgf("Recovered from panic, stack trace: %s", string(debug.Stack()))
				err = c.String(http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		c.SetRequest(r.WithContext(log.WithContext(ctx)))
		body := &bodyRecorder{ResponseWriter: c.Response().Writer}
		c.Response().Writer = body
		err = next(c)
		if err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		log = log.With().
			Int("cost_msec", int(time.Since(start).Milliseconds())).
			Int("status_code", status).
			Logger()
		switch {
		case status >= 500:
			log.Error().Str("response_body", body.buf.String()).Msg("Request completed with server error")
		case status >= 400:
			log.Warn().Str("response_body", body.buf.String()).Msg("Request completed with client error")
		default:
			log.Info().Msg("Request completed successfully")
		}
		return nil
	}
}

// bodyRecorder keeps a copy of the response body for error logs.
type bodyRecorder struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (rw *bodyRecorder) Write(b []byte) (int, error) {
	rw.buf.Write(b)
	return rw.ResponseWriter.Write(b)
}
