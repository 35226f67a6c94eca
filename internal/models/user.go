package models

// Role enum, as reported by the upstream session endpoint.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

// User represents the upstream user record. The upstream strips the
// password before serialization; the portal never sees one.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// DashboardPath returns the portal route a user of this role lands on.
func (r Role) DashboardPath() string {
	switch r {
	case RoleDoctor:
		return "/doctor-dashboard"
	case RoleAdmin:
		return "/admin-dashboard"
	default:
		return "/"
	}
}
