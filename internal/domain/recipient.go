package domain

// Recipient is one senator's office. Sourced from the static directory and
// never persisted beyond the current session.
type Recipient struct {
	Name       string
	ContactURL string
	// Fax is the office fax number in E.164 form (e.g. +12022243416).
	Fax   string
	Phone string
}

// LastName returns the final space-separated token of the recipient name,
// used in letter salutations ("Dear Senator Murkowski,").
func (r Recipient) LastName() string {
	last := r.Name
	for i := len(r.Name) - 1; i >= 0; i-- {
		if r.Name[i] == ' ' {
			last = r.Name[i+1:]
			break
		}
	}
	return last
}
