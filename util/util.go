package util

import (
	"crypto/tls"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const logTag = "[util]"

// WriteBackMessage writes the given message as a json response to the response writer.
func WriteBackMessage(w http.ResponseWriter, message string, code int) {
	WriteBackJSON(w, map[string]interface{}{"message": message}, code)
}

// WriteBackError writes the given error message as a json response to the response writer.
func WriteBackError(w http.ResponseWriter, err string, code int) {
	WriteBackJSON(w, map[string]interface{}{"error": err}, code)
}

// WriteBackJSON encodes v as the json response body.
func WriteBackJSON(w http.ResponseWriter, v interface{}, code int) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorln(logTag, ": unable to marshal response:", err)
		raw = []byte(`{"error":"unable to marshal response"}`)
		code = http.StatusInternalServerError
	}
	WriteBackRaw(w, raw, code)
}

// WriteBackRaw writes the given json encoded bytes to the response writer.
func WriteBackRaw(w http.ResponseWriter, raw []byte, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if _, err := w.Write(raw); err != nil {
		log.Errorln(logTag, ": unable to write response:", err)
	}
}

// Contains checks the presence of a string in the given string slice.
func Contains(slice []string, val string) bool {
	for _, v := range slice {
		if v == val {
			return true
		}
	}
	return false
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var list []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			list = append(list, token)
		}
	}
	return list
}

var (
	client *http.Client
	once   sync.Once
)

// HTTPClient returns an http client with reasonable timeout defaults.
// The client caps the TCP connect and TLS handshake timeouts, the
// end-to-end request timeout is the given one.
func HTTPClient(timeout time.Duration) *http.Client {
	once.Do(func() {
		var netTransport = &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 10 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			TLSClientConfig:     &tls.Config{},
		}
		client = &http.Client{
			Timeout:   timeout,
			Transport: netTransport,
		}
	})
	return client
}
