// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"regexp"

	"github.com/angaro192/crud-financas/models"
)

// Validation message constants for the auth payloads. Kept identical between
// the register and create-user variants so both routes report the same wire
// shapes.
const (
	msgNameRequired     = "Name is required"
	msgInvalidEmail     = "Invalid email format"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgPasswordRequired = "Password is required"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 6

// emailPattern matches the practical subset of RFC 5322 addresses the API
// accepts: non-empty local part, "@", non-empty domain with at least one dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegister checks a register / create-user payload.
//
// Rules: name non-empty; email well-formed; password length ≥ 6.
// Returns nil or the aggregated [ValidationErrors] covering every failing
// field.
func ValidateRegister(req models.RegisterRequest) error {
	var violations ValidationErrors

	if req.Name == "" {
		violations = violations.add("name", msgNameRequired)
	}

	if !emailPattern.MatchString(req.Email) {
		violations = violations.add("email", msgInvalidEmail)
	}

	if len(req.Password) < minPasswordLength {
		violations = violations.add("password", msgPasswordTooShort)
	}

	return violations.orNil()
}

// ValidateLogin checks a login payload.
//
// Rules: email well-formed; password non-empty. The password length rule is
// deliberately not applied here — an old short password must still be able
// to log in.
func ValidateLogin(req models.LoginRequest) error {
	var violations ValidationErrors

	if !emailPattern.MatchString(req.Email) {
		violations = violations.add("email", msgInvalidEmail)
	}

	if req.Password == "" {
		violations = violations.add("password", msgPasswordRequired)
	}

	return violations.orNil()
}
