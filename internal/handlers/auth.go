package handlers

import (
	"net/http"
	"strings"

	"hospital-portal-gateway/internal/config"
	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/session"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the session endpoint and the full-page auth redirects.
// Login, registration and logout happen on the upstream host; the portal
// only points the browser there and drops its cached resolution.
type AuthHandler struct {
	Resolver *session.Resolver
	Cfg      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(resolver *session.Resolver, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Resolver: resolver, Cfg: cfg}
}

// SessionResponse describes the resolved session for the navigation bar and
// any client-side view selection. Guests get role GUEST, never an error.
type SessionResponse struct {
	Role     string       `json:"role"`
	User     *models.User `json:"user,omitempty"`
	HomePath string       `json:"homePath"`
}

// Me reports who the current session belongs to.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Success(c, "Session resolved", SessionResponse{Role: "GUEST", HomePath: "/"})
		return
	}
	utils.Success(c, "Session resolved", SessionResponse{
		Role:     string(user.Role),
		User:     user,
		HomePath: user.Role.DashboardPath(),
	})
}

// Login forwards the browser to the upstream login page. The cached session
// resolution is dropped so a fresh login is seen immediately.
func (h *AuthHandler) Login(c *gin.Context) {
	h.invalidate(c)
	c.Redirect(http.StatusFound, h.authURL("/login"))
}

// Register forwards the browser to the upstream registration page.
func (h *AuthHandler) Register(c *gin.Context) {
	h.invalidate(c)
	c.Redirect(http.StatusFound, h.authURL("/register"))
}

// Logout forwards the browser to the upstream logout endpoint, which tears
// down the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.invalidate(c)
	c.Redirect(http.StatusFound, h.authURL("/logout"))
}

func (h *AuthHandler) invalidate(c *gin.Context) {
	if cookie := middleware.GetCookieFromContext(c); cookie != "" {
		h.Resolver.Invalidate(cookie)
	}
}

func (h *AuthHandler) authURL(path string) string {
	return strings.TrimRight(h.Cfg.Upstream.AuthBaseURL, "/") + path
}
