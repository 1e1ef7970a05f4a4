package api

import (
	"advocacy-dispatch-service/internal/adapters/compose"
	"advocacy-dispatch-service/internal/adapters/directory"
	"advocacy-dispatch-service/internal/adapters/fax"
	"advocacy-dispatch-service/internal/adapters/geo"
	"advocacy-dispatch-service/internal/adapters/payments"
	"advocacy-dispatch-service/internal/adapters/post"
	"advocacy-dispatch-service/internal/ports"
	"advocacy-dispatch-service/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter() http.Handler {
	composer := compose.NewTemplateComposer()
	orchestrator := services.NewOrchestrator(
		geo.NewMockStateResolver(map[string]ports.Resolution{
			"90210": {StateAbbrev: "CA", StateName: "California", City: "Beverly Hills"},
		}),
		directory.NewSenatorDirectory(),
		composer,
		services.NewPricer(services.DefaultPriceTable()),
		&payments.MockPaymentProvider{},
		services.NewDispatcher(composer, &post.MockLetterSubmitter{}, &fax.MockFaxSubmitter{}),
		services.NewSessionStore(),
	)
	return NewRouter(orchestrator)
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPaidFlowOverHTTP(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/sessions", `{
		"first_name": "Jane",
		"last_name": "Doe",
		"email": "jane@example.com",
		"street_address": "1 Main St",
		"zip_code": "90210"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		SessionID   string `json:"session_id"`
		StateAbbrev string `json:"state_abbrev"`
		Recipients  []struct {
			Name string `json:"name"`
			Fax  string `json:"fax"`
		} `json:"recipients"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.StateAbbrev != "CA" || len(created.Recipients) != 2 {
		t.Fatalf("create response = %+v", created)
	}

	rec = postJSON(t, router, "/sessions/"+created.SessionID+"/checkout", `{"action":"both"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout: status %d: %s", rec.Code, rec.Body.String())
	}

	var checkout struct {
		Status string `json:"status"`
		Charge struct {
			AmountCents int64 `json:"amount_cents"`
		} `json:"charge"`
		Payment struct {
			ClientSecret string `json:"client_secret"`
		} `json:"payment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &checkout); err != nil {
		t.Fatalf("decode checkout response: %v", err)
	}
	if checkout.Status != "awaiting_payment" || checkout.Charge.AmountCents != 600 {
		t.Fatalf("checkout response = %+v", checkout)
	}
	if checkout.Payment.ClientSecret == "" {
		t.Fatal("checkout response has no client secret")
	}

	rec = postJSON(t, router, "/sessions/"+created.SessionID+"/payment", `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("payment: status %d: %s", rec.Code, rec.Body.String())
	}

	var fulfillment struct {
		Status        string `json:"status"`
		OverallStatus string `json:"overall_status"`
		Outcomes      []struct {
			Channel string `json:"channel"`
			Status  string `json:"status"`
			ID      string `json:"id"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &fulfillment); err != nil {
		t.Fatalf("decode payment response: %v", err)
	}
	if fulfillment.Status != "done" || fulfillment.OverallStatus != "all_succeeded" {
		t.Fatalf("payment response = %+v", fulfillment)
	}
	if len(fulfillment.Outcomes) != 4 {
		t.Fatalf("outcomes = %d, want 4", len(fulfillment.Outcomes))
	}
	for _, o := range fulfillment.Outcomes {
		if o.Status != "submitted" || o.ID == "" {
			t.Errorf("outcome not submitted: %+v", o)
		}
	}
}

func TestCheckoutRejectsUnknownAction(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/sessions", `{
		"first_name": "Jane",
		"last_name": "Doe",
		"email": "jane@example.com",
		"street_address": "1 Main St",
		"zip_code": "90210"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d", rec.Code)
	}
	var created struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	rec = postJSON(t, router, "/sessions/"+created.SessionID+"/checkout", `{"action":"pigeon"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/sessions/nope/checkout", `{"action":"letter"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateSessionRejectsUnknownFields(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/sessions", `{"first_name":"Jane","favorite_color":"blue"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
