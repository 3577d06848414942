package admin

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/appbaseio/search-api/model/index"
	"github.com/appbaseio/search-api/model/mapping"
	"github.com/appbaseio/search-api/util"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const msgAcknowledged = "acknowledged"

var indexExistsErrors = []string{
	"resource_already_exists_exception",
	"index_already_exists_exception",
}

func (a *Admin) getStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := mux.Vars(req)["name"]
		status, err := a.es.status(req.Context(), name)
		if err != nil {
			writeEngineError(w, "fetching status of", name, err)
			return
		}
		util.WriteBackJSON(w, map[string]interface{}{"status": status}, http.StatusOK)
	}
}

func (a *Admin) putIndexOrAlias() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := mux.Vars(req)["name"]

		defer req.Body.Close()
		body, err := ioutil.ReadAll(req.Body)
		if err != nil {
			log.Errorln(logTag, ": can't read request body:", err)
			util.WriteBackError(w, "Can't read request body", http.StatusBadRequest)
			return
		}

		var indexReq index.Request
		if err := json.Unmarshal(body, &indexReq); err != nil {
			util.WriteBackError(w, "Can't parse request body", http.StatusBadRequest)
			return
		}
		if err := indexReq.Validate(a.defaultMapping); err != nil {
			util.WriteBackError(w, err.Error(), http.StatusBadRequest)
			return
		}

		switch indexReq.Type {
		case index.Index:
			a.putIndex(w, req, name, indexReq.Mapping)
		case index.Alias:
			a.putAlias(w, req, name, indexReq.Target)
		}
	}
}

func (a *Admin) putIndex(w http.ResponseWriter, req *http.Request, name, mappingName string) {
	definition, err := mapping.Get(mappingName)
	if err != nil {
		util.WriteBackError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := req.Context()
	err = a.es.createIndex(ctx, name, definition)
	if util.IsEngineErrorType(err, indexExistsErrors...) {
		log.Debugln(logTag, ": index", name, "exists, updating its mapping")
		err = a.es.putMapping(ctx, name, definition)
	}
	if err != nil {
		writeEngineError(w, "creating index", name, err)
		return
	}
	util.WriteBackMessage(w, msgAcknowledged, http.StatusOK)
}

func (a *Admin) putAlias(w http.ResponseWriter, req *http.Request, alias, target string) {
	ctx := req.Context()
	aliases, err := a.es.aliasesOf(ctx, "_all")
	if err != nil {
		writeEngineError(w, "fetching aliases for", alias, err)
		return
	}

	var from []string
	for holder, names := range aliases {
		if util.Contains(names, alias) {
			from = append(from, holder)
		}
	}

	if err := a.es.setAlias(ctx, alias, target, from); err != nil {
		writeEngineError(w, "setting alias", alias, err)
		return
	}
	util.WriteBackMessage(w, msgAcknowledged, http.StatusOK)
}

func (a *Admin) deleteIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := mux.Vars(req)["name"]
		ctx := req.Context()

		aliases, err := a.es.aliasesOf(ctx, name)
		if err != nil {
			writeEngineError(w, "deleting", name, err)
			return
		}

		// a name that doesn't resolve to itself is an alias
		indexAliases, isIndex := aliases[name]
		if !isIndex {
			util.WriteBackError(w, fmt.Sprintf("Cannot delete alias '%s'", name), http.StatusBadRequest)
			return
		}
		if len(indexAliases) > 0 {
			msg := fmt.Sprintf("Index '%s' is aliased as '%s' and cannot be deleted", name, strings.Join(indexAliases, ", "))
			util.WriteBackError(w, msg, http.StatusBadRequest)
			return
		}

		if err := a.es.deleteIndex(ctx, name); err != nil {
			writeEngineError(w, "deleting index", name, err)
			return
		}
		util.WriteBackMessage(w, msgAcknowledged, http.StatusOK)
	}
}

func writeEngineError(w http.ResponseWriter, action, name string, err error) {
	msg, code := util.EngineError(err)
	if code == http.StatusInternalServerError {
		log.Errorln(logTag, ": error", action, name, ":", err)
	} else {
		log.Debugln(logTag, ": error", action, name, ":", err)
	}
	util.WriteBackError(w, msg, code)
}
