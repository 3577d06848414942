package util

import (
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	urlRe         = regexp.MustCompile(`^https?://.+$`)
	credentialsRe = regexp.MustCompile(`//(?P<username>[^:/@]+):[^@]+@`)
)

// WrapKitLoggerDebug routes the engine client's info and trace logs to logrus debug.
type WrapKitLoggerDebug struct{}

// Printf implements elastic.Logger.
func (WrapKitLoggerDebug) Printf(format string, vars ...interface{}) {
	cleanSensitiveData(vars)
	log.Debugln("[ElasticSearch: Trace] => ", fmt.Sprintf(format, vars...))
}

// WrapKitLoggerError routes the engine client's error logs to logrus error.
type WrapKitLoggerError struct{}

// Printf implements elastic.Logger.
func (WrapKitLoggerError) Printf(format string, vars ...interface{}) {
	cleanSensitiveData(vars)

	formattedStr := fmt.Sprintf(format, vars...)
	if debugDeprecationWarns(formattedStr) {
		return
	}

	log.Errorln("[ElasticSearch: Error] => ", formattedStr)
}

// debugDeprecationWarns downgrades deprecation warnings to debug logs.
func debugDeprecationWarns(formattedStr string) bool {
	if strings.Contains(strings.ToLower(formattedStr), "deprecation") {
		log.Debug("[ElasticSearch: Trace] => ", formattedStr)
		return true
	}
	return false
}

// cleanSensitiveData masks passwords embedded in url vars.
func cleanSensitiveData(vars []interface{}) {
	for i, v := range vars {
		s, ok := v.(string)
		if !ok || !urlRe.MatchString(s) {
			continue
		}
		vars[i] = credentialsRe.ReplaceAllString(s, "//${username}:***@")
	}
}
