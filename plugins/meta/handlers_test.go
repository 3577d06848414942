package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appbaseio/search-api/config"
	"github.com/appbaseio/search-api/plugins/auth"
	"github.com/appbaseio/search-api/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "meta-test-token"

func serveStatus(t *testing.T, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	_, err := config.LoadFrom(map[string]string{
		"ES_CLUSTER_URL": "http://localhost:9200",
		"AUTH_TOKENS":    testToken,
	})
	require.NoError(t, err)
	require.NoError(t, auth.Instance().InitFunc())

	routes := Instance().Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/_status", routes[0].Path)

	req := httptest.NewRequest(http.MethodGet, "/_status", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	routes[0].HandlerFunc(recorder, req)
	return recorder
}

func getStatus(t *testing.T) (int, map[string]interface{}) {
	t.Helper()
	recorder := serveStatus(t, "Bearer "+testToken)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), recorder.Body.String())
	return recorder.Code, body
}

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/_cluster/health" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cluster_name":"search-api","status":"green","timed_out":false,"number_of_nodes":1,"number_of_data_nodes":1,"active_primary_shards":2,"active_shards":2}`))
	}))
	defer ts.Close()

	client, err := util.NewTestClient(ts.URL)
	require.NoError(t, err)
	util.SetClient7(client)
	defer util.SetClient7(nil)

	code, body := getStatus(t)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	esStatus := body["es_status"].(map[string]interface{})
	assert.Equal(t, "green", esStatus["status"])
	assert.Equal(t, "search-api", esStatus["cluster_name"])
}

func TestStatusWithoutCluster(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client, err := util.NewTestClient(url)
	require.NoError(t, err)
	util.SetClient7(client)
	defer util.SetClient7(nil)

	code, body := getStatus(t)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Error connecting to elasticsearch", body["message"])
	assert.NotEmpty(t, body["es_status"].(map[string]interface{})["error"])
}

func TestStatusWithoutClient(t *testing.T) {
	util.SetClient7(nil)
	code, body := getStatus(t)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "elasticsearch client is not initialized", body["es_status"].(map[string]interface{})["error"])
}

func TestStatusRequiresAuthentication(t *testing.T) {
	recorder := serveStatus(t, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error": "Unauthorized; bearer token must be provided"}`, recorder.Body.String())

	recorder = serveStatus(t, "Bearer wrong-token")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"error": "Forbidden; invalid bearer token provided"}`, recorder.Body.String())
}
