package handlers

import (
	"advocacy-dispatch-service/internal/api/dto"
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/services"
	"encoding/json"
	"io"
	"net/http"
)

type SessionHandler struct {
	Orchestrator *services.Orchestrator
}

// Create opens a fulfillment session: it validates the requester, resolves
// the zip to a state and returns the state's two senators. The session id
// drives the rest of the flow.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	requester := domain.Requester{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		StreetAddress: req.StreetAddress,
		ZipCode:       req.ZipCode,
	}

	sess, err := h.Orchestrator.Begin(r.Context(), requester)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.CreateSessionResponse{
		SessionID:   sess.ID,
		Status:      string(sess.State),
		StateAbbrev: sess.Requester.State,
		StateName:   sess.StateName,
		City:        sess.Requester.City,
		Recipients:  make([]dto.RecipientResponse, 0, len(sess.Recipients)),
	}
	for _, rcpt := range sess.Recipients {
		res.Recipients = append(res.Recipients, recipientDTO(rcpt))
	}

	writeJSON(w, r, http.StatusCreated, res)
}
