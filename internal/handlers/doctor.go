package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"hospital-portal-gateway/internal/config"
	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/suggest"
	"hospital-portal-gateway/internal/upstream"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the doctor dashboard: the incoming appointment list
// with status-dependent actions, status transitions, prescription creation
// and the medicine-name autocomplete.
type DoctorHandler struct {
	API     *upstream.Client
	Tracker *suggest.Tracker
	Cfg     *config.Config
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(api *upstream.Client, tracker *suggest.Tracker, cfg *config.Config) *DoctorHandler {
	return &DoctorHandler{API: api, Tracker: tracker, Cfg: cfg}
}

// AppointmentView is one row of the doctor dashboard: the appointment plus
// the actions its status allows. PENDING offers approve/reject, APPROVED
// offers prescribe, terminal states offer nothing.
type AppointmentView struct {
	models.Appointment
	Actions []models.AppointmentAction `json:"actions"`
}

// Appointments lists the appointments assigned to the authenticated doctor.
func (h *DoctorHandler) Appointments(c *gin.Context) {
	cookie := middleware.GetCookieFromContext(c)
	appointments, err := h.API.DoctorAppointments(c.Request.Context(), cookie)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("failed to fetch doctor appointments")
		appointments = nil
	}

	views := make([]AppointmentView, 0, len(appointments))
	for _, appt := range appointments {
		actions := appt.Status.AllowedActions()
		if actions == nil {
			actions = []models.AppointmentAction{}
		}
		views = append(views, AppointmentView{Appointment: appt, Actions: actions})
	}
	utils.Success(c, "Doctor appointments", views)
}

// UpdateStatus writes a new status for one appointment. The body is plain
// text, matching the upstream contract. Only the transitions a doctor may
// perform (PENDING to APPROVED or REJECTED) are forwarded; anything else is
// rejected without an upstream call. Last write wins upstream.
func (h *DoctorHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 64))
	if err != nil {
		utils.BadRequest(c, "Unable to read status")
		return
	}
	// The browser may send the status quoted; the upstream strips quotes
	// the same way.
	status := models.AppointmentStatus(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	if !models.IsDoctorTransition(status) {
		utils.BadRequest(c, "Status must be APPROVED or REJECTED")
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	appt, err := h.API.UpdateAppointmentStatus(c.Request.Context(), cookie, id, status)
	if err != nil {
		utils.UpstreamFailure(c, err, "Failed to update appointment status")
		return
	}
	utils.Success(c, "Appointment status updated", appt)
}

// PrescriptionForm is the prescription creation payload.
type PrescriptionForm struct {
	AppointmentID int64  `json:"appointmentId" binding:"required"`
	Diagnosis     string `json:"diagnosis" binding:"required"`
	MedicineName  string `json:"medicineName" binding:"required"`
	Dosage        string `json:"dosage" binding:"required"`
}

// CreatePrescription records a prescription for a treated appointment and
// surfaces the upstream's drug-database annotation back to the doctor.
func (h *DoctorHandler) CreatePrescription(c *gin.Context) {
	var form PrescriptionForm
	if !utils.BindAndValidate(c, &form) {
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	prescription, err := h.API.CreatePrescription(c.Request.Context(), cookie, upstream.PrescriptionRequest{
		AppointmentID: form.AppointmentID,
		Diagnosis:     form.Diagnosis,
		MedicineName:  form.MedicineName,
		Dosage:        form.Dosage,
	})
	if err != nil {
		utils.UpstreamFailure(c, err, "Failed to save prescription")
		return
	}

	// Saving closes the prescription form; forget its autocomplete sequence.
	h.Tracker.Reset(cookie + "|medicineName")

	message := "Prescription Saved!"
	if prescription.Notes != "" {
		message = "Prescription Saved! " + prescription.Notes
	}
	utils.Created(c, message, prescription)
}

// SearchDrugs proxies the medicine-name lookup. Queries of fewer than the
// configured minimum characters return an empty list without an upstream
// call. Each (session, field) pair carries a monotonically increasing
// sequence; when a later query was issued while this one was in flight, the
// stale result is discarded with 204 instead of being applied.
func (h *DoctorHandler) SearchDrugs(c *gin.Context) {
	query := c.Query("query")
	if len(query) < h.Cfg.DrugSearch.MinChars {
		utils.Success(c, "Suggestions", []string{})
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	field := c.DefaultQuery("field", "medicineName")
	key := cookie + "|" + field

	seq := h.Tracker.Begin(key)
	names, err := h.API.SearchDrugs(c.Request.Context(), cookie, query)
	if err != nil {
		middleware.GetLoggerFromContext(c).Error().Err(err).Msg("drug search failed")
		names = []string{}
	}

	if !h.Tracker.Current(key, seq) {
		c.Status(http.StatusNoContent)
		return
	}
	if names == nil {
		names = []string{}
	}
	if limit := h.Cfg.DrugSearch.Limit; limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	utils.Success(c, "Suggestions", names)
}
