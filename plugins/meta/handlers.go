package meta

import (
	"net/http"

	"github.com/appbaseio/search-api/util"
	log "github.com/sirupsen/logrus"
)

func (m *Meta) status() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		health, err := util.Ping(req.Context())
		if err != nil {
			log.Errorln(logTag, ": error connecting to elasticsearch:", err)
			util.WriteBackJSON(w, map[string]interface{}{
				"status":    "error",
				"message":   "Error connecting to elasticsearch",
				"es_status": map[string]string{"error": err.Error()},
			}, http.StatusInternalServerError)
			return
		}
		util.WriteBackJSON(w, map[string]interface{}{
			"status":    "ok",
			"es_status": health,
		}, http.StatusOK)
	}
}
