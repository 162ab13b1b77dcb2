package security

import (
	"net/http"
	"sync"
	"time"

	"phish_trainer/pkg/api"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS only echoes whitelisted origins, with credentials so the session
// cookie is sent.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && originSet[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "same-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a per client IP token bucket. Idle entries are swept once a
// minute.
type Limiter struct {
	mu      sync.Mutex
	store   map[string]*visitor
	limit   rate.Limit
	burst   int
	expiry  time.Duration
	message string
}

// NewLimiter allows maxRequests per window per IP. message is returned in
// the 429 envelope.
func NewLimiter(maxRequests int, window time.Duration, message string) *Limiter {
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &Limiter{
		store:   make(map[string]*visitor),
		limit:   rate.Every(window / time.Duration(maxRequests)),
		burst:   maxRequests,
		expiry:  expiry,
		message: message,
	}
}

// Allow reports whether key may make another request now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	v, exists := l.store[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.store[key] = v
	}
	v.lastSeen = time.Now()
	l.mu.Unlock()

	return v.limiter.Allow()
}

func (l *Limiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.store {
		if now.Sub(v.lastSeen) > l.expiry {
			delete(l.store, ip)
		}
	}
}

// Sweep removes idle visitors every minute until done is closed.
func (l *Limiter) Sweep(done <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.Response{
				Success: false,
				Message: l.message,
			})
			return
		}
		c.Next()
	}
}
