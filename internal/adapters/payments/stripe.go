package payments

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/platform/obs"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeProvider implements PaymentProvider against the Stripe
// PaymentIntents API.
//
// CreateIntent only reserves an amount; Stripe captures nothing until the
// client completes the confirmation step with the returned client secret.
// Intent creation is never retried here: a duplicate intent is harmless but
// pointless, and the requester can simply re-enter checkout.
type StripeProvider struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewStripeProvider(apiKey string) (*StripeProvider, error) {
	if apiKey == "" {
		return nil, errors.New("stripe api key is empty")
	}

	return &StripeProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://api.stripe.com",
		apiKey:  apiKey,
	}, nil
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a payment intent for the charge amount. The metadata
// records what the requester is buying so the provider-side record is
// self-describing. Automatic payment methods are enabled so wallet payments
// work without extra configuration.
func (s *StripeProvider) CreateIntent(ctx context.Context, charge domain.Charge, meta ports.IntentMetadata) (_ domain.PaymentAuthorization, err error) {
	defer obs.Time(ctx, "stripe.CreateIntent")(&err)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(charge.AmountCents, 10))
	form.Set("currency", charge.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("metadata[action]", string(meta.Action))
	form.Set("metadata[recipient_count]", strconv.Itoa(meta.RecipientCount))
	form.Set("metadata[session_id]", meta.SessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return domain.PaymentAuthorization{}, fmt.Errorf("create intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.session.Do(req)
	if err != nil {
		return domain.PaymentAuthorization{}, fmt.Errorf("create intent: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.PaymentAuthorization{}, fmt.Errorf("create intent: read response: %w", err)
	}

	var decoded stripeIntentResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.PaymentAuthorization{}, fmt.Errorf("create intent: decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := strings.TrimSpace(string(body))
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return domain.PaymentAuthorization{}, fmt.Errorf("create intent: %w: stripe status %d: %s", domain.ErrUpstreamUnavailable, resp.StatusCode, msg)
	}

	if decoded.ID == "" || decoded.ClientSecret == "" {
		return domain.PaymentAuthorization{}, fmt.Errorf("create intent: %w: stripe returned no intent id", domain.ErrUpstreamUnavailable)
	}

	return domain.PaymentAuthorization{
		Reference:    decoded.ID,
		ClientSecret: decoded.ClientSecret,
		Status:       domain.PaymentPending,
	}, nil
}
