package handlers

import (
	"strconv"

	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/upstream"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// BrowseHandler serves the department/doctor browser. Selecting a department
// replaces the doctor list entirely; nothing is cached across selections.
type BrowseHandler struct {
	API *upstream.Client
}

// NewBrowseHandler creates a new BrowseHandler.
func NewBrowseHandler(api *upstream.Client) *BrowseHandler {
	return &BrowseHandler{API: api}
}

// Departments lists all departments. A failed fetch is logged and renders
// an empty list rather than an error.
func (h *BrowseHandler) Departments(c *gin.Context) {
	cookie := middleware.GetCookieFromContext(c)
	departments, err := h.API.Departments(c.Request.Context(), cookie)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("failed to fetch departments")
		departments = []models.Department{}
	}
	utils.Success(c, "Departments fetched", departments)
}

// DoctorsByDepartment lists the doctors of the selected department. An empty
// result carries an explicit none-found message instead of a bare list.
func (h *BrowseHandler) DoctorsByDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseInt(c.Param("departmentId"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid department id")
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	doctors, err := h.API.DoctorsByDepartment(c.Request.Context(), cookie, departmentID)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("failed to fetch doctors")
		doctors = []models.Doctor{}
	}

	if len(doctors) == 0 {
		utils.Success(c, "No doctors found in this department", []models.Doctor{})
		return
	}
	utils.Success(c, "Available doctors", doctors)
}
