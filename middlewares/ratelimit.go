package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	// IdleTimeout drops the limiter of a client not seen for this long.
	IdleTimeout time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterData holds one token bucket per client address
type rateLimiterData struct {
	config  RateLimiterConfig
	clients map[string]*clientLimiter
	mu      sync.Mutex
	now     func() time.Time
}

func (d *rateLimiterData) allow(client string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for key, cl := range d.clients {
		if now.Sub(cl.lastSeen) > d.config.IdleTimeout {
			delete(d.clients, key)
		}
	}

	cl, ok := d.clients[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(d.config.RequestsPerSecond), d.config.Burst)}
		d.clients[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// NewRateLimiterMiddleware creates a per-client rate limiter middleware
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = 5 * time.Minute
	}
	data := &rateLimiterData{
		config:  config,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}

	return func(c *gin.Context) {
		if !data.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
