package update

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/appbaseio/search-api/errors"
	"github.com/appbaseio/search-api/model/mapping"
	"github.com/appbaseio/search-api/util"
	"github.com/gorilla/mux"
	es7 "github.com/olivere/elastic/v7"
	log "github.com/sirupsen/logrus"
)

type documentRequest struct {
	Document json.RawMessage `json:"document"`
}

func (u *Update) indexDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		indexName, id := vars["index"], vars["id"]
		if _, err := mapping.Get(vars["doc_type"]); err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		defer req.Body.Close()
		body, err := ioutil.ReadAll(req.Body)
		if err != nil {
			log.Errorln(logTag, ": can't read request body:", err)
			util.WriteBackError(w, "Can't read request body", http.StatusBadRequest)
			return
		}

		var docReq documentRequest
		if err := json.Unmarshal(body, &docReq); err != nil {
			util.WriteBackError(w, "Can't parse request body", http.StatusBadRequest)
			return
		}
		if len(docReq.Document) == 0 || bytes.Equal(docReq.Document, []byte("null")) {
			util.WriteBackError(w, errors.ErrMissingDocument.Error(), http.StatusBadRequest)
			return
		}

		result, err := u.es.indexDocument(req.Context(), indexName, id, docReq.Document)
		if err != nil {
			writeEngineError(w, "indexing", id, err)
			return
		}
		util.WriteBackMessage(w, result, http.StatusOK)
	}
}

func (u *Update) deleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		indexName, id := vars["index"], vars["id"]
		if _, err := mapping.Get(vars["doc_type"]); err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		err := u.es.deleteDocument(req.Context(), indexName, id)
		if es7.IsNotFound(err) {
			util.WriteBackError(w, fmt.Sprintf("document '%s' not found", id), http.StatusNotFound)
			return
		}
		if err != nil {
			writeEngineError(w, "deleting", id, err)
			return
		}
		util.WriteBackMessage(w, "deleted", http.StatusOK)
	}
}

func writeEngineError(w http.ResponseWriter, action, id string, err error) {
	msg, code := util.EngineError(err)
	if code == http.StatusInternalServerError {
		log.Errorln(logTag, ": error", action, "document", id, ":", err)
	}
	util.WriteBackError(w, msg, code)
}
