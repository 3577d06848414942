package logger

import (
	"net/http"
	"time"

	"github.com/appbaseio/search-api/model/requestid"
	"github.com/appbaseio/search-api/model/tracktime"
	log "github.com/sirupsen/logrus"
)

const logTag = "[logger]"

// statusRecorder remembers the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Log assigns a request id to every request and logs one line when the
// request has been served.
func Log(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := requestid.NewContext(req.Context())
		reqID, _ := requestid.FromContext(ctx)
		w.Header().Set(requestid.Header, reqID)

		start := time.Now()
		if tracked, err := tracktime.FromContext(ctx); err == nil {
			start = *tracked
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, req.WithContext(ctx))

		entry := log.WithFields(log.Fields{
			"request_id": reqID,
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     rec.status,
			"took_ms":    time.Since(start).Milliseconds(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Errorln(logTag, ": request failed")
			return
		}
		entry.Infoln(logTag, ": request served")
	})
}
