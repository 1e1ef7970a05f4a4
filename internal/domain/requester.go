package domain

import (
	"strings"
)

// Requester is the constituent sending the message. All fields are required
// before any priced action; the struct is treated as immutable once a dispatch
// has begun.
type Requester struct {
	FirstName     string
	LastName      string
	Email         string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
}

// Validate checks the intake fields before any external call is made.
// City and State are not checked here: both are filled in from the zip
// resolution, so they exist by the time any priced action can start.
// Returns a ValidationError listing every offending field.
func (r Requester) Validate() error {
	var fields []string

	if strings.TrimSpace(r.FirstName) == "" {
		fields = append(fields, "first_name")
	}
	if strings.TrimSpace(r.LastName) == "" {
		fields = append(fields, "last_name")
	}
	if !validEmail(r.Email) {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(r.StreetAddress) == "" {
		fields = append(fields, "street_address")
	}
	if !validZip(r.ZipCode) {
		fields = append(fields, "zip_code")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Syntactic check only: local part, "@", and a dotted domain. Deliverability
// is the payment provider's receipt email's problem, not ours.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 {
		return false
	}
	dom := s[at+1:]
	dot := strings.Index(dom, ".")
	return dot > 0 && dot < len(dom)-1 && !strings.Contains(dom, "@")
}

func validZip(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
