package handlers

import (
	"advocacy-dispatch-service/internal/api/dto"
	"advocacy-dispatch-service/internal/domain"
	"encoding/json"
	"io"
	"net/http"
)

// Checkout applies a channel selection to a session. Web selections return
// the composed message bodies and contact metadata; paid selections return
// the charge and a pending payment intent for the client to confirm.
func (h *SessionHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	var req dto.CheckoutRequest

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

	action, ok := domain.ParseAction(req.Action)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "action must be one of web, letter, fax, both")
		return
	}

	result, err := h.Orchestrator.Checkout(r.Context(), sessionID, action)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.CheckoutResponse{Status: string(result.State)}

	for _, msg := range result.Web {
		res.Messages = append(res.Messages, dto.WebMessageResponse{
			Recipient: recipientDTO(msg.Recipient),
			Body:      msg.Body,
		})
	}

	if result.Charge != nil {
		res.Charge = &dto.ChargeResponse{
			AmountCents:    result.Charge.AmountCents,
			UnitPriceCents: result.Charge.UnitPriceCents,
			Currency:       result.Charge.Currency,
			RecipientCount: result.Charge.RecipientCount,
		}
	}
	if result.Authorization != nil {
		res.Payment = &dto.PaymentIntentResponse{
			Reference:    result.Authorization.Reference,
			ClientSecret: result.Authorization.ClientSecret,
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
