package domain

import "unicode"

// ValidateLogin reports whether login is well-formed: non-empty and
// composed entirely of unicode letters and digits. No punctuation, no
// whitespace.
func ValidateLogin(login string) bool {
	if login == "" {
		return false
	}
	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Login is the account name chosen at creation time. It is immutable
// once assigned. Users created through the replace-with-absent-id path
// have no login; repositories rebuild those with ReconstituteLogin.
type Login struct {
	value string
}

// NewLogin creates a validated Login value object.
func NewLogin(value string) (Login, error) {
	if !ValidateLogin(value) {
		return Login{}, ErrLoginInvalid
	}
	return Login{value: value}, nil
}

// ReconstituteLogin rebuilds a Login from persistence without
// re-validating. Login validity is enforced only on write.
func ReconstituteLogin(value string) Login {
	return Login{value: value}
}

func (l Login) String() string { return l.value }
func (l Login) IsZero() bool   { return l.value == "" }

func (l Login) Equals(other Login) bool {
	return l.value == other.value
}
