package models

// Department groups doctors by medical specialty.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Doctor is a user with a specialization inside one department. User and
// Department are pointers: admin list endpoints embed both, while the
// per-department listing may omit the department it was filtered by.
type Doctor struct {
	ID             int64       `json:"id"`
	Specialization string      `json:"specialization"`
	User           *User       `json:"user,omitempty"`
	Department     *Department `json:"department,omitempty"`
	Available      bool        `json:"isAvailable,omitempty"`
}
