// Package validate holds the canonical field validation rules shared by the
// registration and profile endpoints. The browser client carries a copy of
// the same table; the server never trusts it and re-validates every request.
package validate

import (
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{3,19}$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	fullNameRe = regexp.MustCompile(`^[a-zA-Z\s]{2,100}$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe    = regexp.MustCompile(`^\d{10}$`)

	passwordUpperRe   = regexp.MustCompile(`[A-Z]`)
	passwordLowerRe   = regexp.MustCompile(`[a-z]`)
	passwordDigitRe   = regexp.MustCompile(`[0-9]`)
	passwordSpecialRe = regexp.MustCompile(`[!@#$%^&*]`)
)

// Field checks a single value against the rule registered for name and
// returns a human-readable message, or "" when the value passes. Unknown
// field names pass. "mobile" is accepted as a legacy alias for "phone".
func Field(name, value string) string {
	switch name {
	case "username":
		if strings.TrimSpace(value) == "" {
			return "Username is required"
		}
		if !usernameRe.MatchString(value) {
			return "Username must be 4-20 characters, start with a letter, and contain only letters and numbers"
		}
	case "firstName", "lastName":
		if strings.TrimSpace(value) == "" {
			if name == "firstName" {
				return "First name is required"
			}
			return "Last name is required"
		}
		if !nameRe.MatchString(value) {
			return "Name should only contain letters and spaces (2-50 characters)"
		}
	case "fullName":
		if strings.TrimSpace(value) == "" {
			return "Full name is required"
		}
		if !fullNameRe.MatchString(value) {
			return "Full name should only contain letters and spaces (2-100 characters)"
		}
	case "email":
		if strings.TrimSpace(value) == "" {
			return "Email is required"
		}
		if !emailRe.MatchString(value) {
			return "Please enter a valid email address"
		}
	case "phone", "mobile":
		if strings.TrimSpace(value) == "" {
			return "Mobile number is required"
		}
		if !phoneRe.MatchString(value) {
			return "Mobile number must be exactly 10 digits"
		}
	case "password":
		switch {
		case value == "":
			return "Password is required"
		case len(value) < 8:
			return "Password must be at least 8 characters"
		case !passwordUpperRe.MatchString(value):
			return "Password must contain at least one uppercase letter"
		case !passwordLowerRe.MatchString(value):
			return "Password must contain at least one lowercase letter"
		case !passwordDigitRe.MatchString(value):
			return "Password must contain at least one number"
		case !passwordSpecialRe.MatchString(value):
			return "Password must contain at least one special character (!@#$%^&*)"
		}
	}
	return ""
}

// Fields validates every entry and returns the field→message map of
// failures. An empty map means everything passed.
func Fields(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for name, value := range values {
		if msg := Field(name, value); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}
