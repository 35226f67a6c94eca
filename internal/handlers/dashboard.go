package handlers

import (
	"net/http"

	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/upstream"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the root route. Guests get the landing view,
// patients get the department browser, doctors and admins are redirected to
// their dashboards before any other content is produced.
type DashboardHandler struct {
	API *upstream.Client
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(api *upstream.Client) *DashboardHandler {
	return &DashboardHandler{API: api}
}

// DashboardView is the root route payload for guests and patients.
type DashboardView struct {
	View        string              `json:"view"` // "guest" or "patient"
	Departments []models.Department `json:"departments,omitempty"`
}

// Root resolves the session and selects the view.
func (h *DashboardHandler) Root(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		utils.Success(c, "Welcome to Smart Hospital", DashboardView{View: "guest"})
		return
	}

	switch user.Role {
	case models.RoleDoctor, models.RoleAdmin:
		c.Redirect(http.StatusFound, user.Role.DashboardPath())
	default:
		departments := h.loadDepartments(c)
		utils.Success(c, "Find a doctor", DashboardView{View: "patient", Departments: departments})
	}
}

// loadDepartments fetches the department list for the patient view. A fetch
// failure is logged, not surfaced; the view renders with an empty list.
func (h *DashboardHandler) loadDepartments(c *gin.Context) []models.Department {
	cookie := middleware.GetCookieFromContext(c)
	departments, err := h.API.Departments(c.Request.Context(), cookie)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("failed to fetch departments")
		return []models.Department{}
	}
	return departments
}
