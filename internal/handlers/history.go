package handlers

import (
	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/upstream"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HistoryHandler serves the patient's merged appointment history: their
// appointments joined with their prescriptions by appointment id.
type HistoryHandler struct {
	API *upstream.Client
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(api *upstream.Client) *HistoryHandler {
	return &HistoryHandler{API: api}
}

// MyAppointments fetches appointments and prescriptions concurrently (the
// two queries are independent) and renders one entry per appointment with
// its prescription when one matches. Fetch failures are logged and degrade
// to an empty list for that side.
func (h *HistoryHandler) MyAppointments(c *gin.Context) {
	cookie := middleware.GetCookieFromContext(c)
	log := middleware.GetLoggerFromContext(c)

	var (
		appointments  []models.Appointment
		prescriptions []models.Prescription
	)

	var g errgroup.Group
	g.Go(func() error {
		list, err := h.API.MyAppointments(c.Request.Context(), cookie)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch appointments")
			return nil
		}
		appointments = list
		return nil
	})
	g.Go(func() error {
		list, err := h.API.MyPrescriptions(c.Request.Context(), cookie)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch prescriptions")
			return nil
		}
		prescriptions = list
		return nil
	})
	_ = g.Wait() // both goroutines degrade to empty lists instead of failing

	entries := models.MergeHistory(appointments, prescriptions)
	if len(entries) == 0 {
		utils.Success(c, "No appointments found", entries)
		return
	}
	utils.Success(c, "My appointments", entries)
}
