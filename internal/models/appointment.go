package models

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusApproved  AppointmentStatus = "APPROVED"
	StatusRejected  AppointmentStatus = "REJECTED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents a scheduled patient-doctor encounter. The nested
// Patient and Doctor objects may be partially absent depending on which
// upstream endpoint produced the record.
type Appointment struct {
	ID              int64             `json:"id"`
	Patient         *User             `json:"patient,omitempty"`
	Doctor          *Doctor           `json:"doctor,omitempty"`
	AppointmentTime string            `json:"appointmentTime"`
	Status          AppointmentStatus `json:"status"`
}

// AppointmentAction is an operation the portal offers on an appointment.
type AppointmentAction string

const (
	ActionApprove   AppointmentAction = "APPROVE"
	ActionReject    AppointmentAction = "REJECT"
	ActionPrescribe AppointmentAction = "PRESCRIBE"
)

// AllowedActions returns the doctor-side actions valid for a status.
// Transitions are monotonic: PENDING -> APPROVED|REJECTED, APPROVED ->
// COMPLETED (advanced externally). Terminal states offer nothing.
func (s AppointmentStatus) AllowedActions() []AppointmentAction {
	switch s {
	case StatusPending:
		return []AppointmentAction{ActionApprove, ActionReject}
	case StatusApproved:
		return []AppointmentAction{ActionPrescribe}
	default:
		return nil
	}
}

// IsDoctorTransition reports whether a doctor may write the target status.
// Doctors only ever move PENDING appointments; COMPLETED is advanced by an
// external process and reverse transitions are never offered.
func IsDoctorTransition(target AppointmentStatus) bool {
	return target == StatusApproved || target == StatusRejected
}
