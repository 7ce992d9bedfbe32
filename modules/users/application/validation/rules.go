// Package validation contains the field-level rules that gate every
// mutation of the user resource. Rules are pure: they report
// violations into a caller-supplied FieldErrors accumulator and never
// touch storage.
package validation

import (
	"github.com/mzukov/web-api/modules/shared/types"
	"github.com/mzukov/web-api/modules/users/domain"
)

// Field names and messages reported to clients.
const (
	FieldLogin     = "login"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"

	MsgInvalidLogin     = "Invalid Login"
	MsgInvalidFirstName = "Invalid First Name"
	MsgInvalidLastName  = "Invalid Last Name"
)

// ValidateLogin reports whether login may be assigned at create time:
// non-empty, every rune a unicode letter or digit.
func ValidateLogin(login string) bool {
	return domain.ValidateLogin(login)
}

// CheckLogin records a field error when the login is not assignable.
func CheckLogin(login string, errs types.FieldErrors) {
	if !ValidateLogin(login) {
		errs.Add(FieldLogin, MsgInvalidLogin)
	}
}

// ValidateReplaceRequest checks the replace-shaped value: both names
// must be present and non-empty. The check is length-only; whitespace
// is not trimmed. All violations are accumulated.
func ValidateReplaceRequest(firstName, lastName string, errs types.FieldErrors) {
	if firstName == "" {
		errs.Add(FieldFirstName, MsgInvalidFirstName)
	}
	if lastName == "" {
		errs.Add(FieldLastName, MsgInvalidLastName)
	}
}
