package dto

type CreateSessionRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	StreetAddress string `json:"street_address"`
	ZipCode       string `json:"zip_code"`
}

type RecipientResponse struct {
	Name       string `json:"name"`
	ContactURL string `json:"contact_url"`
	Fax        string `json:"fax"`
	Phone      string `json:"phone,omitempty"`
}

type CreateSessionResponse struct {
	SessionID   string              `json:"session_id"`
	Status      string              `json:"status"`
	StateAbbrev string              `json:"state_abbrev"`
	StateName   string              `json:"state_name"`
	City        string              `json:"city"`
	Recipients  []RecipientResponse `json:"recipients"`
}
