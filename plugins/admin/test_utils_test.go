package admin

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appbaseio/search-api/util"
)

type ServerSetup struct {
	Method, Path, Body, Response string
	HTTPStatus                   int
}

// buildTestServer answers every request matching one of the setups with its
// response and fails the test on any other request.
func buildTestServer(t *testing.T, setups []*ServerSetup) *httptest.Server {
	handlerFunc := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestBytes, _ := ioutil.ReadAll(r.Body)
		requestBody := string(requestBytes)

		for _, setup := range setups {
			if r.Method == setup.Method && r.URL.EscapedPath() == setup.Path && requestBody == setup.Body {
				w.Header().Set("Content-Type", "application/json")
				if setup.HTTPStatus == 0 {
					w.WriteHeader(http.StatusOK)
				} else {
					w.WriteHeader(setup.HTTPStatus)
				}
				if _, err := w.Write([]byte(setup.Response)); err != nil {
					t.Errorf("Unable to write test server response: %v", err)
				}
				return
			}
		}
		t.Errorf("No requests matched setup. Got method %s, Path %s, body %q", r.Method, r.URL.EscapedPath(), requestBody)
		w.WriteHeader(http.StatusTeapot)
	})

	return httptest.NewServer(handlerFunc)
}

func newTestElasticsearch(t *testing.T, url string) *elasticsearch {
	client, err := util.NewTestClient(url)
	if err != nil {
		t.Fatalf("error while initializing elastic client: %v", err)
	}
	return newElasticsearch(client)
}

// engineMsg returns the message relayed to the caller for err, "" for nil.
func engineMsg(err error) string {
	if err == nil {
		return ""
	}
	msg, _ := util.EngineError(err)
	return msg
}
