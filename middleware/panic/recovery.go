package panic

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/appbaseio/search-api/util"
	log "github.com/sirupsen/logrus"
)

const logTag = "[recovery]"

// Recovery is a middleware that wraps an http handler to recover from panics.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var err error
			switch t := r.(type) {
			case string:
				err = errors.New(t)
			case error:
				err = t
			default:
				err = fmt.Errorf("unknown error occurred: %v", t)
			}
			log.Errorln(logTag, ": recovered from panic serving", req.Method, req.URL.Path, ":", err)
			util.WriteBackError(w, err.Error(), http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, req)
	})
}
