package upstream

import (
	"context"
	"fmt"
	"net/url"

	"hospital-portal-gateway/internal/models"
)

// Me returns the current session's user, or an *Error when the session is
// absent or invalid.
func (c *Client) Me(ctx context.Context, cookie string) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, cookie, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Departments lists all departments.
func (c *Client) Departments(ctx context.Context, cookie string) ([]models.Department, error) {
	var departments []models.Department
	if err := c.Get(ctx, cookie, "/departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// DoctorsByDepartment lists the doctors assigned to one department.
func (c *Client) DoctorsByDepartment(ctx context.Context, cookie string, departmentID int64) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.Get(ctx, cookie, fmt.Sprintf("/doctors/%d", departmentID), &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// BookingRequest is the appointment creation payload. The upstream derives
// the acting patient and the initial PENDING status from the session.
type BookingRequest struct {
	DoctorID int64  `json:"doctorId"`
	DateTime string `json:"dateTime"`
}

// BookAppointment creates a new PENDING appointment for the session's patient.
func (c *Client) BookAppointment(ctx context.Context, cookie string, req BookingRequest) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.PostJSON(ctx, cookie, "/appointments/book", req, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// MyAppointments lists the session patient's appointments.
func (c *Client) MyAppointments(ctx context.Context, cookie string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.Get(ctx, cookie, "/my-appointments", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// MyPrescriptions lists the session patient's prescriptions.
func (c *Client) MyPrescriptions(ctx context.Context, cookie string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	if err := c.Get(ctx, cookie, "/my-prescriptions", &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// DoctorAppointments lists the appointments assigned to the session doctor.
func (c *Client) DoctorAppointments(ctx context.Context, cookie string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.Get(ctx, cookie, "/doctor/appointments", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateAppointmentStatus writes the new status. The upstream endpoint takes
// the status as a plain-text body. Last write wins; no version check.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, cookie string, id int64, status models.AppointmentStatus) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.PostText(ctx, cookie, fmt.Sprintf("/appointments/%d/status", id), string(status), &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// PrescriptionRequest is the prescription creation payload.
type PrescriptionRequest struct {
	AppointmentID int64  `json:"appointmentId"`
	Diagnosis     string `json:"diagnosis"`
	MedicineName  string `json:"medicineName"`
	Dosage        string `json:"dosage"`
}

// CreatePrescription records a prescription against an appointment. The
// response includes the upstream's drug-database annotation in Notes.
func (c *Client) CreatePrescription(ctx context.Context, cookie string, req PrescriptionRequest) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := c.PostJSON(ctx, cookie, "/prescriptions", req, &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

// SearchDrugs returns candidate medicine names for a partial query.
func (c *Client) SearchDrugs(ctx context.Context, cookie, query string) ([]string, error) {
	var names []string
	path := "/drugs/search?query=" + url.QueryEscape(query)
	if err := c.Get(ctx, cookie, path, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// --- Admin operations ---

// UserRequest is the admin payload for creating a patient or updating a
// user. Password is optional on update.
type UserRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// DoctorRequest is the admin payload for creating or updating a doctor.
type DoctorRequest struct {
	FullName       string `json:"fullName"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	Specialization string `json:"specialization"`
	DepartmentID   int64  `json:"departmentId"`
}

// DepartmentRequest is the admin payload for creating or updating a department.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListUsers lists all users (admin).
func (c *Client) ListUsers(ctx context.Context, cookie string) ([]models.User, error) {
	var users []models.User
	if err := c.Get(ctx, cookie, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreatePatient creates a new patient account (admin).
func (c *Client) CreatePatient(ctx context.Context, cookie string, req UserRequest) (*models.User, error) {
	var user models.User
	if err := c.PostJSON(ctx, cookie, "/admin/patients", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user record (admin).
func (c *Client) UpdateUser(ctx context.Context, cookie string, id int64, req UserRequest) (*models.User, error) {
	var user models.User
	if err := c.PutJSON(ctx, cookie, fmt.Sprintf("/admin/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user (admin).
func (c *Client) DeleteUser(ctx context.Context, cookie string, id int64) error {
	return c.Delete(ctx, cookie, fmt.Sprintf("/admin/users/%d", id))
}

// ListDoctors lists all doctors with their user and department (admin).
func (c *Client) ListDoctors(ctx context.Context, cookie string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.Get(ctx, cookie, "/admin/doctors", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// CreateDoctor creates a doctor profile plus its user account (admin).
func (c *Client) CreateDoctor(ctx context.Context, cookie string, req DoctorRequest) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.PostJSON(ctx, cookie, "/admin/doctors", req, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// UpdateDoctor updates a doctor's name, specialization or department (admin).
func (c *Client) UpdateDoctor(ctx context.Context, cookie string, id int64, req DoctorRequest) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.PutJSON(ctx, cookie, fmt.Sprintf("/admin/doctors/%d", id), req, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// CreateDepartment creates a department (admin).
func (c *Client) CreateDepartment(ctx context.Context, cookie string, req DepartmentRequest) (*models.Department, error) {
	var department models.Department
	if err := c.PostJSON(ctx, cookie, "/admin/departments", req, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// UpdateDepartment updates a department (admin).
func (c *Client) UpdateDepartment(ctx context.Context, cookie string, id int64, req DepartmentRequest) (*models.Department, error) {
	var department models.Department
	if err := c.PutJSON(ctx, cookie, fmt.Sprintf("/admin/departments/%d", id), req, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// DeleteDepartment deletes a department. The upstream rejects the delete
// with its own error text while doctors are still assigned.
func (c *Client) DeleteDepartment(ctx context.Context, cookie string, id int64) error {
	return c.Delete(ctx, cookie, fmt.Sprintf("/admin/departments/%d", id))
}
