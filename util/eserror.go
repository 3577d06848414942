package util

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/olivere/elastic/v7"
)

// EngineError translates an error returned by the engine client to the
// message and status code relayed to the caller. Messages keep the engine
// wording: "<type>: <reason>", followed by " (<index>)" when the engine
// names the index the error is about. A trailing " [<index>]" in the reason
// is dropped in that case so the index is only named once.
func EngineError(err error) (string, int) {
	var esErr *elastic.Error
	if !errors.As(err, &esErr) {
		return err.Error(), http.StatusInternalServerError
	}
	return engineMessage(esErr), engineStatus(esErr.Status)
}

func engineMessage(esErr *elastic.Error) string {
	details := esErr.Details
	if details == nil {
		return strings.ToLower(http.StatusText(esErr.Status))
	}
	reason := details.Reason
	if details.Index != "" {
		reason = strings.TrimSuffix(reason, " ["+details.Index+"]")
	}
	msg := reason
	if details.Type != "" {
		msg = fmt.Sprintf("%s: %s", details.Type, reason)
	}
	if details.Index != "" {
		msg = fmt.Sprintf("%s (%s)", msg, details.Index)
	}
	return msg
}

func engineStatus(status int) int {
	switch {
	case status == http.StatusNotFound:
		return http.StatusNotFound
	case status >= 400 && status < 500:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsEngineErrorType reports whether err is an engine error of one of the given types.
func IsEngineErrorType(err error, types ...string) bool {
	var esErr *elastic.Error
	if !errors.As(err, &esErr) || esErr.Details == nil {
		return false
	}
	return Contains(types, esErr.Details.Type)
}
