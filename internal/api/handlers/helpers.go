package handlers

import (
	"advocacy-dispatch-service/internal/api/dto"
	"advocacy-dispatch-service/internal/domain"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps the fulfillment error taxonomy to HTTP statuses.
// Unknown errors are logged and reported as plain 500s.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrRecipientLookupFailed):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, r, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrInvalidAction):
		writeError(w, r, http.StatusBadRequest, "invalid action selection")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		writeError(w, r, http.StatusBadGateway, err.Error())
	case errors.Is(err, domain.ErrDispatchUnreachable):
		// Payment is captured but nothing was sent; the message must make the
		// requester contact support rather than pay again.
		writeError(w, r, http.StatusInternalServerError, "payment received but delivery could not be started; please contact support")
	default:
		log.Printf("unhandled error: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func recipientDTO(rcpt domain.Recipient) dto.RecipientResponse {
	return dto.RecipientResponse{
		Name:       rcpt.Name,
		ContactURL: rcpt.ContactURL,
		Fax:        rcpt.Fax,
		Phone:      rcpt.Phone,
	}
}
