package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/appbaseio/search-api/middleware"
	"github.com/appbaseio/search-api/model/credential"
	"github.com/appbaseio/search-api/util"
	"github.com/dgrijalva/jwt-go"
	log "github.com/sirupsen/logrus"
)

const (
	bearerPrefix       = "Bearer "
	msgUnauthenticated = "Unauthorized; bearer token must be provided"
	msgForbidden       = "Forbidden; invalid bearer token provided"
)

// Authenticate returns the middleware that rejects requests without a valid
// bearer token before any handler runs.
func Authenticate() middleware.Middleware {
	return Instance().authenticate
}

func (a *Auth) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		token, ok := bearerToken(req)
		if !ok {
			util.WriteBackError(w, msgUnauthenticated, http.StatusUnauthorized)
			return
		}

		reqCredential, err := a.credentialFor(token)
		if err != nil {
			log.Debugln(logTag, ": rejected token for", req.Method, req.URL.Path, ":", err)
			util.WriteBackError(w, msgForbidden, http.StatusForbidden)
			return
		}
		log.Debugln(logTag, ": authenticated", reqCredential.Kind, reqCredential.Subject, "for", req.Method, req.URL.Path)

		ctx := credential.NewContext(req.Context(), reqCredential)
		h(w, req.WithContext(ctx))
	}
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	return token, token != ""
}

// credentialFor returns the credential the token stands for.
func (a *Auth) credentialFor(token string) (*credential.Credential, error) {
	a.mu.RLock()
	tokens, publicKey := a.tokens, a.jwtRsaPublicKey
	a.mu.RUnlock()

	for i, t := range tokens {
		if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
			return &credential.Credential{Kind: credential.Token, Subject: "token-" + strconv.Itoa(i+1)}, nil
		}
	}

	if publicKey == nil {
		return nil, errors.New("token doesn't match any configured token")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid jwt")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New(`jwt is missing the "sub" claim`)
	}
	return &credential.Credential{Kind: credential.JWT, Subject: sub}, nil
}
