package path

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveTrailingSlashes(t *testing.T) {
	assert.Equal(t, "/index-to-create", removeTrailingSlashes("/index-to-create///"))
	assert.Equal(t, "/index-to-create", removeTrailingSlashes("/index-to-create"))
	assert.Equal(t, "/", removeTrailingSlashes("/"))
	assert.Equal(t, "/", removeTrailingSlashes("//"))
}

func TestClean(t *testing.T) {
	var got string
	h := Clean(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/_all/", nil))
	assert.Equal(t, "/_all", got)
}
