package handlers

import (
	"advocacy-dispatch-service/internal/api/dto"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// Payment applies the client-reported terminal payment status. A confirmed
// payment triggers the dispatch and returns the per-recipient, per-channel
// outcomes; a failed payment returns the session to channel selection.
func (h *SessionHandler) Payment(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	var req dto.PaymentReportRequest

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

	var confirmed bool
	switch req.Status {
	case "confirmed":
		confirmed = true
	case "failed":
		confirmed = false
		if req.Message != "" {
			log.Printf("payment failed session=%s provider_message=%q", sessionID, req.Message)
		}
	default:
		writeError(w, r, http.StatusBadRequest, "status must be confirmed or failed")
		return
	}

	result, err := h.Orchestrator.ReportPayment(r.Context(), sessionID, confirmed)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.FulfillmentResponse{Status: string(result.State)}

	if result.Fulfillment != nil {
		res.OverallStatus = string(result.Fulfillment.Overall)
		res.Outcomes = make([]dto.OutcomeResponse, 0, len(result.Fulfillment.Outcomes))
		for _, o := range result.Fulfillment.Outcomes {
			out := dto.OutcomeResponse{
				Recipient: recipientDTO(o.Recipient),
				Channel:   string(o.Channel),
			}
			if o.Submitted {
				out.Status = "submitted"
				out.ID = o.SubmissionID
			} else {
				out.Status = "failed"
				out.Reason = o.Reason
			}
			res.Outcomes = append(res.Outcomes, out)
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
