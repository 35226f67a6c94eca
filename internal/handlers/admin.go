package handlers

import (
	"strconv"

	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/session"
	"hospital-portal-gateway/internal/upstream"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the three admin managers: users, doctors and
// departments. Validation here is advisory; the upstream re-validates and
// its error text is surfaced verbatim when a write is rejected.
type AdminHandler struct {
	API      *upstream.Client
	Resolver *session.Resolver
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(api *upstream.Client, resolver *session.Resolver) *AdminHandler {
	return &AdminHandler{API: api, Resolver: resolver}
}

// dropCachedSessions clears the session cache after an account mutation. The
// changed account may be cached under a session cookie the gateway cannot
// map back to a user id, so the whole cache is dropped.
func (h *AdminHandler) dropCachedSessions() {
	h.Resolver.InvalidateAll()
}

// confirmDelete checks the explicit confirmation every delete requires.
// Without it the request is rejected before anything is sent upstream.
func confirmDelete(c *gin.Context) bool {
	if c.Query("confirm") == "true" || c.GetHeader("X-Confirm-Delete") == "true" {
		return true
	}
	utils.BadRequest(c, "Deletion requires confirmation")
	return false
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// --- Users ---

// UserForm is the create/edit payload for the users tab. Password is
// optional on edit (empty means unchanged).
type UserForm struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

func (f *UserForm) policyError() string {
	if !utils.ValidFullName(f.FullName) {
		return "Name contains invalid characters."
	}
	return utils.AccountPolicyError(f.Username, f.Password)
}

// ListUsers lists all user accounts.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	cookie := middleware.GetCookieFromContext(c)
	users, err := h.API.ListUsers(c.Request.Context(), cookie)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("failed to fetch users")
		users = []models.User{}
	}
	utils.Success(c, "Users fetched", users)
}

// CreatePatient creates a patient account. A new account needs a password
// that satisfies the strength policy.
func (h *AdminHandler) CreatePatient(c *gin.Context) {
	var form UserForm
	if !utils.BindAndValidate(c, &form) {
		return
	}
	if form.Password == "" {
		utils.BadRequest(c, "Password is required")
		return
	}
	if msg := form.policyError(); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	user, err := h.API.CreatePatient(c.Request.Context(), cookie, upstream.UserRequest(form))
	if err != nil {
		utils.UpstreamFailure(c, err, "Creation failed")
		return
	}
	utils.Created(c, "Patient created", user)
}

// UpdateUser updates a user's name, username and optionally password.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var form UserForm
	if !utils.BindAndValidate(c, &form) {
		return
	}
	if msg := form.policyError(); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	user, err := h.API.UpdateUser(c.Request.Context(), cookie, id, upstream.UserRequest(form))
	if err != nil {
		utils.UpstreamFailure(c, err, "Update failed")
		return
	}
	h.dropCachedSessions()
	utils.Success(c, "User updated", user)
}

// DeleteUser deletes a user account after explicit confirmation.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !confirmDelete(c) {
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	if err := h.API.DeleteUser(c.Request.Context(), cookie, id); err != nil {
		utils.UpstreamFailure(c, err, "Failed to delete user")
		return
	}
	h.dropCachedSessions()
	utils.Success(c, "User deleted", nil)
}

// --- Doctors ---

// DoctorForm is the create/edit payload for the doctors tab. Username and
// password only apply on create; edits change name, specialization and
// department.
type DoctorForm struct {
	FullName       string `json:"fullName" binding:"required"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Specialization string `json:"specialization" binding:"required"`
	DepartmentID   int64  `json:"departmentId" binding:"required"`
}

func (f *DoctorForm) policyError() string {
	if !utils.ValidFullName(f.FullName) {
		return "Name contains invalid characters."
	}
	return utils.AccountPolicyError(f.Username, f.Password)
}

func (f *DoctorForm) request() upstream.DoctorRequest {
	return upstream.DoctorRequest{
		FullName:       f.FullName,
		Username:       f.Username,
		Password:       f.Password,
		Specialization: f.Specialization,
		DepartmentID:   f.DepartmentID,
	}
}

// ListDoctors lists all doctors with their user and department.
func (h *AdminHandler) ListDoctors(c *gin.Context) {
	cookie := middleware.GetCookieFromContext(c)
	doctors, err := h.API.ListDoctors(c.Request.Context(), cookie)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("failed to fetch doctors")
		doctors = []models.Doctor{}
	}
	utils.Success(c, "Doctors fetched", doctors)
}

// CreateDoctor creates a doctor profile with a fresh user account.
func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	var form DoctorForm
	if !utils.BindAndValidate(c, &form) {
		return
	}
	if form.Username == "" || form.Password == "" {
		utils.BadRequest(c, "Username and password are required")
		return
	}
	if msg := form.policyError(); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	doctor, err := h.API.CreateDoctor(c.Request.Context(), cookie, form.request())
	if err != nil {
		utils.UpstreamFailure(c, err, "Creation failed")
		return
	}
	utils.Created(c, "Doctor created", doctor)
}

// UpdateDoctor updates a doctor's name, specialization and department.
func (h *AdminHandler) UpdateDoctor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var form DoctorForm
	if !utils.BindAndValidate(c, &form) {
		return
	}
	if msg := form.policyError(); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	doctor, err := h.API.UpdateDoctor(c.Request.Context(), cookie, id, form.request())
	if err != nil {
		utils.UpstreamFailure(c, err, "Update failed")
		return
	}
	h.dropCachedSessions()
	utils.Success(c, "Doctor updated", doctor)
}

// --- Departments ---

// DepartmentForm is the create/edit payload for the departments tab.
type DepartmentForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateDepartment creates a department.
func (h *AdminHandler) CreateDepartment(c *gin.Context) {
	var form DepartmentForm
	if !utils.BindAndValidate(c, &form) {
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	department, err := h.API.CreateDepartment(c.Request.Context(), cookie, upstream.DepartmentRequest(form))
	if err != nil {
		utils.UpstreamFailure(c, err, "Creation failed")
		return
	}
	utils.Created(c, "Department created", department)
}

// UpdateDepartment updates a department's name and description.
func (h *AdminHandler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var form DepartmentForm
	if !utils.BindAndValidate(c, &form) {
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	department, err := h.API.UpdateDepartment(c.Request.Context(), cookie, id, upstream.DepartmentRequest(form))
	if err != nil {
		utils.UpstreamFailure(c, err, "Update failed")
		return
	}
	utils.Success(c, "Department updated", department)
}

// DeleteDepartment deletes a department after explicit confirmation. The
// upstream refuses while doctors are assigned; its error text is passed on
// so the admin sees the real reason.
func (h *AdminHandler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !confirmDelete(c) {
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	if err := h.API.DeleteDepartment(c.Request.Context(), cookie, id); err != nil {
		utils.UpstreamFailure(c, err, "Failed to delete department")
		return
	}
	utils.Success(c, "Department deleted", nil)
}
