package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/navneet-limitinfinity/haul-riders-sub000/pkg/logger"
)

// Middleware пишет latency/count в prometheus и access-лог по каждому
// запросу. Метрики ключуются по шаблону роута, а не по сырому пути,
// иначе /jobs/{jobID} взорвет кардинальность.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(start)
			status := strconv.Itoa(recorder.status)
			route := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, status).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", status),
				logger.NewField("duration", elapsed.String()),
			).Info("HTTP request")
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
