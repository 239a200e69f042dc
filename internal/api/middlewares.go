package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"
	"golang.org/x/time/rate"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health":  {},
	"/api/metrics": {},
}

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (entity.Principal, error)
}

type HTTPMetrics interface {
	ObserveHTTP(route, method string, code int, seconds float64)
}

type Middleware struct {
	auth    TokenValidator
	metrics HTTPMetrics
	limits  *ipLimiter
	proxies []netip.Prefix
}

// NewMiddleware builds the middleware set. Forwarding headers are read only
// from peers inside trustedProxies.
func NewMiddleware(
	auth TokenValidator,
	metrics HTTPMetrics,
	perSecond float64,
	burst int,
	trustedProxies []netip.Prefix,
) *Middleware {
	return &Middleware{
		auth:    auth,
		metrics: metrics,
		limits:  newIPLimiter(rate.Limit(perSecond), burst),
		proxies: trustedProxies,
	}
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := skipLogging[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		w.Header().Set("X-Request-Id", requestID)

		ctx := logger.SetRequestID(r.Context(), requestID)
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetIP(ctx, entity.IPFromCtx(ctx))
		ctx = logger.SetLogType(ctx, "webrequest")

		slog.InfoContext(ctx, "incoming request")

		next.ServeHTTP(w, r.WithContext(ctx))

		slog.InfoContext(ctx, "request completed", "duration_ms", time.Since(start).Milliseconds())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				SendJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{Message: errInternalText})
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

// WithIP stores the client address. X-Real-IP and X-Forwarded-For count only
// when the peer is a trusted proxy; the forwarded chain is read right to
// left up to the first untrusted hop.
func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := "unknown"

		peer, ok := parseIP(removePort(r.RemoteAddr))
		if ok {
			ip = peer.String()
		}

		if ok && m.trusted(peer) {
			ip = m.forwardedIP(r, ip)
		}

		next.ServeHTTP(w, r.WithContext(entity.WithIP(r.Context(), ip)))
	})
}

func (m *Middleware) forwardedIP(r *http.Request, peer string) string {
	if realIP, ok := parseIP(removePort(r.Header.Get("X-Real-IP"))); ok {
		return realIP.String()
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, ok := parseIP(removePort(strings.TrimSpace(hops[i])))
		if !ok {
			break
		}

		if !m.trusted(hop) {
			return hop.String()
		}
	}

	return peer
}

func (m *Middleware) trusted(addr netip.Addr) bool {
	for _, p := range m.proxies {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

// Metrics records every request under its chi route pattern, so path
// parameters do not explode label cardinality.
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}

		m.metrics.ObserveHTTP(route, r.Method, code, time.Since(start).Seconds())
	})
}

// BearerAuth resolves the access token into a principal.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token is missing")
			return
		}

		p, err := m.auth.ValidateToken(ctx, token)
		if err != nil {
			if errors.Is(err, entity.ErrTokenInvalid) || errors.Is(err, entity.ErrSessionEnded) {
				SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Your session has ended. Please log in again.")
			} else {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
			}

			return
		}

		ctx = entity.WithPrincipal(ctx, p)
		ctx = logger.SetUserID(ctx, p.AccountID.String())
		ctx = logger.SetSessionID(ctx, p.SessionID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission rejects principals whose role lacks permission.
func (m *Middleware) RequirePermission(permission entity.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principal(w, r)
			if !ok {
				return
			}

			if !p.Can(permission) {
				SendJSONErr(r.Context(), w, http.StatusForbidden, entity.ErrForbidden, "You do not have access to this action.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.limits.allow(entity.IPFromCtx(ctx)) {
			w.Header().Set("Retry-After", "1")
			SendJSON(ctx, w, http.StatusTooManyRequests, ErrorResponse{Message: "Too many attempts. Please wait and try again."})

			return
		}

		next.ServeHTTP(w, r)
	})
}

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	visitors map[string]*visitor
}

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		limit:    limit,
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

func (l *ipLimiter) allow(ip string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if len(l.visitors) >= limiterSweepSize {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}

	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}

func parseIP(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}

	return addr.Unmap(), true
}
