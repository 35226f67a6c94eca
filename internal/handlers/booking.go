package handlers

import (
	"strconv"
	"strings"

	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/upstream"
	"hospital-portal-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler submits new appointment requests for the session's patient.
// Two entry points exist: the booking page takes a combined date-time value,
// the in-list modal takes separate date and time fields joined before
// submission. Both check required fields before any upstream request is
// issued, and neither sends the patient's id or an initial status; the
// upstream derives both from the session.
type BookingHandler struct {
	API *upstream.Client
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(api *upstream.Client) *BookingHandler {
	return &BookingHandler{API: api}
}

// BookPageRequest is the booking page payload.
type BookPageRequest struct {
	DateTime string `json:"dateTime"`
}

// Book handles the dedicated booking page: one combined date-time value for
// the doctor named in the route. On success the browser is pointed at the
// history view.
func (h *BookingHandler) Book(c *gin.Context) {
	doctorID, err := strconv.ParseInt(c.Param("doctorId"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid doctor id")
		return
	}

	var req BookPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if strings.TrimSpace(req.DateTime) == "" {
		utils.BadRequest(c, "Please select a date and time.")
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	appt, err := h.API.BookAppointment(c.Request.Context(), cookie, upstream.BookingRequest{
		DoctorID: doctorID,
		DateTime: req.DateTime,
	})
	if err != nil {
		utils.UpstreamFailure(c, err, "Failed to book appointment")
		return
	}

	utils.Created(c, "Appointment Booked Successfully!", gin.H{
		"appointment": appt,
		"redirectTo":  "/my-appointments",
	})
}

// BookModalRequest is the inline modal payload: separate date and time.
type BookModalRequest struct {
	DoctorID int64  `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BookModal handles the inline modal variant. Date and time are combined
// into one timestamp; an empty field blocks submission with a message and
// no network request.
func (h *BookingHandler) BookModal(c *gin.Context) {
	var req BookModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if req.DoctorID == 0 {
		utils.BadRequest(c, "Invalid doctor id")
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		utils.BadRequest(c, "Please select both a date and a time.")
		return
	}

	cookie := middleware.GetCookieFromContext(c)
	appt, err := h.API.BookAppointment(c.Request.Context(), cookie, upstream.BookingRequest{
		DoctorID: req.DoctorID,
		DateTime: req.Date + "T" + req.Time + ":00",
	})
	if err != nil {
		utils.UpstreamFailure(c, err, "Failed to book appointment")
		return
	}

	utils.Created(c, "Appointment Booked Successfully!", gin.H{"appointment": appt})
}
