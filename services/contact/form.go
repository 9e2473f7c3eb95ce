package contact

import (
	"regexp"
	"strings"
)

// FormFields carries one contact form submission. Phone and Company are
// optional. Honeypot is a hidden field that stays empty for human
// visitors; any value in it marks the submission as automated.
type FormFields struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Message    string `json:"message"`
	Honeypot   string `json:"honeypot"`
}

// trimmed returns a copy with surrounding whitespace removed from the
// four required fields. Optional fields pass through untouched.
func (f FormFields) trimmed() FormFields {
	f.GivenName = strings.TrimSpace(f.GivenName)
	f.FamilyName = strings.TrimSpace(f.FamilyName)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// requiredPresent reports whether the four required fields are all
// non-empty after trimming.
func requiredPresent(f FormFields) bool {
	t := f.trimmed()
	return t.GivenName != "" && t.FamilyName != "" && t.Email != "" && t.Message != ""
}

// emailPattern is a permissive single-@ structural check, not full RFC
// validation: something before the @, something after it, and a dot in
// the domain part. Stricter patterns reject valid addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the trimmed value looks like an email address.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}
