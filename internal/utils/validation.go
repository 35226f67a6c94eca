package utils

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Account policy. Advisory only: the upstream re-validates and remains the
// authority, but checking here blocks a doomed request before it is sent.
var (
	// 8+ chars with at least one digit, one lowercase, one uppercase and
	// one symbol from the fixed set. Go's regexp has no lookahead, so the
	// policy is split into per-class checks.
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordSpecial = regexp.MustCompile(`[@#$%^&+=!]`)

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{4,}$`)
	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s.\-]+$`)
)

const (
	passwordPolicyMsg = "Password must be 8+ chars, contain Upper, Lower, Number, and Special Char."
	usernamePolicyMsg = "Username must be at least 4 chars and alphanumeric (no spaces)."
	fullNamePolicyMsg = "Name contains invalid characters."
)

// ValidPassword reports whether a password satisfies the strength policy.
func ValidPassword(password string) bool {
	return len(password) >= 8 &&
		passwordLower.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSpecial.MatchString(password)
}

// ValidUsername reports whether a username satisfies the account policy.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidFullName reports whether a display name contains only permitted
// characters.
func ValidFullName(name string) bool {
	return fullNamePattern.MatchString(name)
}

// AccountPolicyError checks the optional credential fields of an admin form.
// Empty password means "unchanged" on edit and is skipped; empty username is
// skipped the same way. Returns the first policy violation, or "".
func AccountPolicyError(username, password string) string {
	if password != "" && !ValidPassword(password) {
		return passwordPolicyMsg
	}
	if username != "" && !ValidUsername(username) {
		return usernamePolicyMsg
	}
	return ""
}

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	validate := validator.New()
	return validate.Struct(s)
}

// BindAndValidate binds the request body to a struct and validates it.
// If validation fails, it sends a BadRequest response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		BadRequest(c, "Validation failed: "+err.Error())
		return false
	}
	return true
}
