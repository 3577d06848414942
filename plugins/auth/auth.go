package auth

import (
	"crypto/rsa"
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/appbaseio/search-api/config"
	"github.com/appbaseio/search-api/plugins"
	"github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const logTag = "[auth]"

var (
	singleton *Auth
	once      sync.Once
)

// Auth authenticates requests carrying a bearer token: either one of the
// configured static tokens or a jwt signed with the configured rsa key.
type Auth struct {
	mu              sync.RWMutex
	tokens          []string
	jwtRsaPublicKey *rsa.PublicKey
}

// Instance returns the singleton instance of the auth plugin. Instance
// should be the only way (both within or outside the package) to fetch
// the instance of the plugin, in order to avoid stateless duplicates.
func Instance() *Auth {
	once.Do(func() { singleton = &Auth{} })
	return singleton
}

// Name returns the name of the plugin: [auth]
func (a *Auth) Name() string {
	return logTag
}

// InitFunc reads the accepted tokens and the jwt public key from the config.
func (a *Auth) InitFunc() error {
	cfg := config.Get()

	var publicKey *rsa.PublicKey
	if cfg.JWTPublicKeyLoc != "" {
		publicKeyBuf, err := ioutil.ReadFile(cfg.JWTPublicKeyLoc)
		if err != nil {
			return fmt.Errorf("%s: reading jwt public key: %v", logTag, err)
		}
		publicKey, err = jwt.ParseRSAPublicKeyFromPEM(publicKeyBuf)
		if err != nil {
			return fmt.Errorf("%s: parsing jwt public key: %v", logTag, err)
		}
	}
	if len(cfg.AuthTokens) == 0 && publicKey == nil {
		log.Warnln(logTag, ": no AUTH_TOKENS or JWT_RSA_PUBLIC_KEY_LOC configured, every authenticated route will be rejected")
	}

	a.setCredentials(cfg.AuthTokens, publicKey)
	return nil
}

// Routes returns an empty slice since the plugin solely acts as a middleware.
func (a *Auth) Routes() []plugins.Route {
	return []plugins.Route{}
}

func (a *Auth) setCredentials(tokens []string, publicKey *rsa.PublicKey) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens = append([]string(nil), tokens...)
	a.jwtRsaPublicKey = publicKey
}
