package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"burgershop/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// identityContextKey is where the authenticated identity lives in the echo
// request context.
const identityContextKey = "identity"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID       string
	Email        string
	Role         user.Role
	Capabilities user.Capabilities
}

func identityFrom(ctx echo.Context) (Identity, bool) {
	id, ok := ctx.Get(identityContextKey).(Identity)
	return id, ok
}

// authenticate parses the Authorization header when present and attaches the
// caller's identity to the request context. Requests without a token pass
// through anonymously; a token that is present but invalid is rejected, it is
// never silently downgraded to anonymous.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(ctx)
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "authorization header must be a bearer token",
			})
		}

		claims, err := s.tokens.Parse(tokenString)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		role, err := user.RoleFromString(claims.Role)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		ctx.Set(identityContextKey, Identity{
			UserID:       claims.UserID,
			Email:        claims.Email,
			Role:         role,
			Capabilities: role.Capabilities(),
		})
		return next(ctx)
	}
}

// requireAuth rejects anonymous requests.
func requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := identityFrom(ctx); !ok {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "authentication required",
			})
		}
		return next(ctx)
	}
}

// requireCapability guards a route behind one capability of the caller's
// role. Anonymous callers get 401, authenticated callers without the
// capability get 403.
func requireCapability(allowed func(user.Capabilities) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, ok := identityFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				})
			}
			if !allowed(id.Capabilities) {
				return ctx.JSON(http.StatusForbidden, errorResponse{
					Code:    http.StatusForbidden,
					Message: "insufficient permissions",
				})
			}
			return next(ctx)
		}
	}
}

// visitor pairs a caller's limiter with its last activity time so stale
// entries can be evicted.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per caller: by account id when
// authenticated, by remote IP otherwise.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst per caller, and starts the background eviction loop.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware rejects callers over their limit with 429.
func (rl *RateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		key := ctx.RealIP()
		if id, ok := identityFrom(ctx); ok {
			key = id.UserID
		}

		if !rl.getVisitor(key).Allow() {
			return ctx.JSON(http.StatusTooManyRequests, errorResponse{
				Code:    http.StatusTooManyRequests,
				Message: "too many requests",
			})
		}
		return next(ctx)
	}
}
