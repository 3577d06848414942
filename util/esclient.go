package util

import (
	"context"
	"fmt"
	"sync"

	"github.com/appbaseio/search-api/config"
	v "github.com/hashicorp/go-version"
	es7 "github.com/olivere/elastic/v7"
	log "github.com/sirupsen/logrus"
)

// MinimumVersion is the oldest cluster version the service speaks to.
const MinimumVersion = "7.0.0"

var (
	clientMu sync.RWMutex
	client7  *es7.Client
)

// GetClient7 returns the es7 client. NewClient or SetClient7 must be called first.
func GetClient7() *es7.Client {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client7
}

// SetClient7 replaces the shared es7 client.
func SetClient7(c *es7.Client) {
	clientMu.Lock()
	defer clientMu.Unlock()
	client7 = c
}

// NewClient instantiates the es7 client for the configured cluster and
// verifies the cluster version is supported.
func NewClient(cfg *config.Config) error {
	esURL := cfg.ESURL()
	c, err := es7.NewClient(
		es7.SetURL(esURL),
		es7.SetRetrier(NewRetrier()),
		es7.SetSniff(cfg.Sniffing),
		es7.SetHttpClient(HTTPClient(cfg.ESTimeout)),
		es7.SetErrorLog(WrapKitLoggerError{}),
		es7.SetInfoLog(WrapKitLoggerDebug{}),
		es7.SetTraceLog(WrapKitLoggerDebug{}),
	)
	if err != nil {
		return fmt.Errorf("error while initializing elastic v7 client: %v", err)
	}

	esVersion, err := c.ElasticsearchVersion(esURL)
	if err != nil {
		return fmt.Errorf("error while retrieving the elastic version: %v", err)
	}
	ok, err := IsSupportedVersion(esVersion)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("elasticsearch %s is not supported, %s or newer is required", esVersion, MinimumVersion)
	}

	SetClient7(c)
	log.Println(logTag, ": client instantiated, elastic search version is", esVersion)
	return nil
}

// NewTestClient returns a client for url without sniffing or health checks,
// so that no request reaches the cluster before the caller makes one.
func NewTestClient(url string) (*es7.Client, error) {
	return es7.NewClient(
		es7.SetURL(url),
		es7.SetSniff(false),
		es7.SetHealthcheck(false),
	)
}

// IsSupportedVersion reports whether esVersion is at least MinimumVersion.
func IsSupportedVersion(esVersion string) (bool, error) {
	current, err := v.NewVersion(esVersion)
	if err != nil {
		return false, fmt.Errorf("invalid elasticsearch version %q: %v", esVersion, err)
	}
	minimum := v.Must(v.NewVersion(MinimumVersion))
	return current.GreaterThanOrEqual(minimum), nil
}

// Ping checks that the cluster answers, returning its health.
func Ping(ctx context.Context) (*es7.ClusterHealthResponse, error) {
	c := GetClient7()
	if c == nil {
		return nil, fmt.Errorf("elasticsearch client is not initialized")
	}
	return c.ClusterHealth().Do(ctx)
}
