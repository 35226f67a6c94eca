package middleware

import (
	"net/http"

	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserKey   = "currentUser"
	ctxCookieKey = "sessionCookie"
)

// SessionMiddleware resolves the current user once per request through the
// shared resolver and stores the result in the request context. A guest
// request stores no user but is never rejected here.
func SessionMiddleware(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := c.GetHeader("Cookie")
		c.Set(ctxCookieKey, cookie)

		user, err := resolver.Resolve(c.Request.Context(), cookie)
		if err == nil && user != nil {
			c.Set(ctxUserKey, user)
		}

		c.Next()
	}
}

// RequireRole guards a protected route. Guests and users of any other role
// are redirected to the root route; the wrapped handlers only run for a
// matching session. Evaluated independently on every protected request.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok || user.Role != required {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSession guards routes any authenticated user may reach. Guests are
// redirected to the root route.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserFromContext(c); !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserFromContext returns the resolved session user, if any.
func GetUserFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// GetCookieFromContext returns the raw Cookie header the browser sent, which
// is forwarded verbatim on every upstream call.
func GetCookieFromContext(c *gin.Context) string {
	value, exists := c.Get(ctxCookieKey)
	if !exists {
		return ""
	}
	cookie, _ := value.(string)
	return cookie
}
