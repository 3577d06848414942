package path

import (
	"net/http"
	"strings"
)

// Clean removes trailing "/"s from the request paths.
func Clean(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = removeTrailingSlashes(r.URL.Path)
		h.ServeHTTP(w, r)
	})
}

func removeTrailingSlashes(path string) string {
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
