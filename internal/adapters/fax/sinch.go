package fax

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/platform/obs"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SinchSubmitter implements FaxSubmitter against the Sinch Fax API v3.
//
// The document body is wrapped in minimal HTML, base64-encoded and sent as a
// file attachment; Sinch renders and transmits it. Like postal submission,
// an accepted fax cannot be recalled and failures are never retried here.
type SinchSubmitter struct {
	session    *http.Client
	baseURL    string
	projectID  string
	apiKey     string
	apiSecret  string
	fromNumber string
}

// SinchConfig carries the vendor credentials. FromNumber must be a number
// purchased in the Sinch dashboard.
type SinchConfig struct {
	ProjectID  string
	APIKey     string
	APISecret  string
	FromNumber string
}

func NewSinchSubmitter(cfg SinchConfig) (*SinchSubmitter, error) {
	if cfg.ProjectID == "" || cfg.APIKey == "" || cfg.APISecret == "" || cfg.FromNumber == "" {
		return nil, errors.New("incomplete sinch configuration")
	}

	return &SinchSubmitter{
		session:    &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://fax.api.sinch.com",
		projectID:  cfg.ProjectID,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		fromNumber: cfg.FromNumber,
	}, nil
}

type sinchFile struct {
	File     string `json:"file"`
	FileType string `json:"fileType"`
}

type sinchFaxRequest struct {
	To                    string      `json:"to"`
	From                  string      `json:"from"`
	Files                 []sinchFile `json:"files"`
	HeaderPageNumbers     bool        `json:"headerPageNumbers"`
	ImageConversionMethod string      `json:"imageConversionMethod"`
}

type sinchFaxResponse struct {
	ID string `json:"id"`
}

// SubmitFax transmits one composed document to the recipient's office fax.
func (s *SinchSubmitter) SubmitFax(ctx context.Context, doc domain.DeliveryDocument) (_ string, err error) {
	defer obs.Time(ctx, "sinch.SubmitFax")(&err)

	if doc.Form != domain.FormFaxTransmission {
		return "", fmt.Errorf("submit fax: document form %q is not a fax transmission", doc.Form)
	}
	if doc.Recipient.Fax == "" {
		return "", fmt.Errorf("submit fax: recipient %q has no fax number", doc.Recipient.Name)
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(renderFaxHTML(doc.Body)))

	payload := sinchFaxRequest{
		To:                    doc.Recipient.Fax,
		From:                  s.fromNumber,
		Files:                 []sinchFile{{File: encoded, FileType: "HTML"}},
		HeaderPageNumbers:     true,
		ImageConversionMethod: "HALFTONE",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("submit fax: encode payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v3/projects/%s/faxes", s.baseURL, s.projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("submit fax: create request: %w", err)
	}
	req.SetBasicAuth(s.apiKey, s.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit fax to %q: %w: %v", doc.Recipient.Name, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("submit fax to %q: sinch status %d: %s", doc.Recipient.Name, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded sinchFaxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("submit fax: decode response: %w", err)
	}

	if decoded.ID == "" {
		return "", fmt.Errorf("submit fax to %q: sinch returned no fax id", doc.Recipient.Name)
	}

	return decoded.ID, nil
}

// renderFaxHTML wraps the composed body in the minimal page Sinch rasterizes.
func renderFaxHTML(body string) string {
	return `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
  </head>
  <body style="font-family: 'Times New Roman', serif; font-size: 12pt; padding: 40px; line-height: 1.5;">
    <div style="white-space: pre-wrap;">` + body + `</div>
  </body>
</html>
`
}
