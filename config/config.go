package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const logTag = "[config]"

// Config holds the service configuration, read from the environment.
type Config struct {
	ESClusterURL    string        `env:"ES_CLUSTER_URL,required"`
	Sniffing        bool          `env:"SET_SNIFFING" envDefault:"false"`
	ESTimeout       time.Duration `env:"ES_TIMEOUT" envDefault:"2m"`
	AuthTokens      []string      `env:"AUTH_TOKENS" envSeparator:":"`
	JWTPublicKeyLoc string        `env:"JWT_RSA_PUBLIC_KEY_LOC"`
	RateLimit       int64         `env:"RATE_LIMIT" envDefault:"0"`
	DefaultMapping  string        `env:"DEFAULT_MAPPING" envDefault:"services"`
	PageSize        int           `env:"PAGE_SIZE" envDefault:"100"`
	HTTPSCert       string        `env:"HTTPS_CERT"`
	HTTPSKey        string        `env:"HTTPS_KEY"`
}

var (
	current *Config
	mu      sync.RWMutex
)

// Load reads the optional env file and then parses the environment into a
// Config, which also becomes the one returned by Get. Variables already set in
// the environment take precedence over the ones declared in the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Infoln(logTag, ": reading env file", envFile, ". This may happen if the environments are declared directly : ", err)
		}
	}
	return LoadFrom(nil)
}

// LoadFrom parses the config from the given variables instead of the process
// environment when environment is non-nil.
func LoadFrom(environment map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	Set(&cfg)
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := url.Parse(c.ESClusterURL); err != nil {
		return fmt.Errorf("ES_CLUSTER_URL is not a valid url: %v", err)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT can't be negative, got %d", c.RateLimit)
	}
	if c.JWTPublicKeyLoc != "" {
		if _, err := os.Stat(c.JWTPublicKeyLoc); err != nil {
			return fmt.Errorf("JWT_RSA_PUBLIC_KEY_LOC: %v", err)
		}
	}
	tokens := c.AuthTokens[:0]
	for _, t := range c.AuthTokens {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	c.AuthTokens = tokens
	return nil
}

// ESURL returns the cluster url with the embedded credentials path escaped.
func (c *Config) ESURL() string {
	esURL := c.ESClusterURL
	if !strings.Contains(esURL, "@") {
		return esURL
	}
	splitIndex := strings.LastIndex(esURL, "@")
	protocolWithCredentials := strings.SplitN(esURL[0:splitIndex], "://", 2)
	if len(protocolWithCredentials) != 2 {
		return esURL
	}
	protocol, credentials := protocolWithCredentials[0], protocolWithCredentials[1]
	host := esURL[splitIndex+1:]

	credentialSeparator := strings.Index(credentials, ":")
	if credentialSeparator < 0 {
		return protocol + "://" + url.PathEscape(credentials) + "@" + host
	}
	username := credentials[0:credentialSeparator]
	password := credentials[credentialSeparator+1:]
	return protocol + "://" + url.PathEscape(username) + ":" + url.PathEscape(password) + "@" + host
}

// Get returns the config loaded last. It panics if none was loaded.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		panic("config: Get called before Load")
	}
	return current
}

// Set replaces the current config.
func Set(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = c
}
