package ratelimiter

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/appbaseio/search-api/middleware"
	"github.com/appbaseio/search-api/model/credential"
	"github.com/appbaseio/search-api/util"
	log "github.com/sirupsen/logrus"
	"github.com/ulule/limiter"
	"github.com/ulule/limiter/drivers/store/memory"
)

const logTag = "[ratelimiter]"

var (
	instance *Ratelimiter
	once     sync.Once
)

// Ratelimiter limits the number of requests made per second by each
// credential. Creating direct instances of Ratelimiter should be avoided,
// ratelimiter.Instance returns the singleton instance.
type Ratelimiter struct {
	mu      sync.RWMutex
	limiter *limiter.Limiter
}

// Instance returns the singleton instance of ratelimiter.
func Instance() *Ratelimiter {
	once.Do(func() {
		instance = &Ratelimiter{}
	})
	return instance
}

// SetLimit sets the number of requests allowed per second per credential,
// zero disables rate limiting.
func (rl *Ratelimiter) SetLimit(perSecond int64) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if perSecond <= 0 {
		rl.limiter = nil
		return
	}
	rate := limiter.Rate{
		Limit:  perSecond,
		Period: time.Second,
	}
	rl.limiter = limiter.New(memory.NewStore(), rate)
}

// Limit returns the rate limiting middleware. It must run after the
// authentication middleware since it keys on the request credential.
func Limit() middleware.Middleware {
	return Instance().rateLimit
}

func (rl *Ratelimiter) rateLimit(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		rl.mu.RLock()
		l := rl.limiter
		rl.mu.RUnlock()
		if l == nil {
			h(w, req)
			return
		}

		reqCredential, err := credential.FromContext(req.Context())
		if err != nil {
			log.Errorln(logTag, ":", err)
			util.WriteBackError(w, "error occurred while validating rate limit", http.StatusInternalServerError)
			return
		}

		key := reqCredential.Kind.String() + ":" + reqCredential.Subject
		c, err := l.Get(req.Context(), key)
		if err != nil {
			log.Errorln(logTag, ": error getting the limiter context for", key, ":", err)
			util.WriteBackError(w, "error occurred while validating rate limit", http.StatusInternalServerError)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(c.Limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(c.Remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(c.Reset, 10))
		if c.Reached {
			util.WriteBackError(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		h(w, req)
	}
}
