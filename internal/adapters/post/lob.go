package post

import (
	"advocacy-dispatch-service/internal/domain"
	"advocacy-dispatch-service/internal/platform/obs"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LobSubmitter implements LetterSubmitter against the Lob print-and-mail API.
//
// Lob converts the letter HTML to a PDF, prints it black-and-white
// double-sided, and mails it. Submission is non-reversible: once Lob accepts
// the letter there is no cancel path, so failures are surfaced to the
// dispatcher and never retried here.
type LobSubmitter struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewLobSubmitter(apiKey string) (*LobSubmitter, error) {
	if apiKey == "" {
		return nil, errors.New("lob api key is empty")
	}

	return &LobSubmitter{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.lob.com",
		apiKey:  apiKey,
	}, nil
}

type lobAddress struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressCity  string `json:"address_city"`
	AddressState string `json:"address_state"`
	AddressZip   string `json:"address_zip"`
}

type lobLetterRequest struct {
	Description      string     `json:"description"`
	To               lobAddress `json:"to"`
	From             lobAddress `json:"from"`
	File             string     `json:"file"`
	Color            bool       `json:"color"`
	DoubleSided      bool       `json:"double_sided"`
	AddressPlacement string     `json:"address_placement"`
	UseType          string     `json:"use_type"`
}

type lobLetterResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SubmitLetter mails one composed document to one senator's DC office.
func (l *LobSubmitter) SubmitLetter(ctx context.Context, doc domain.DeliveryDocument) (_ string, err error) {
	defer obs.Time(ctx, "lob.SubmitLetter")(&err)

	if doc.Form != domain.FormPostalLetter {
		return "", fmt.Errorf("submit letter: document form %q is not a postal letter", doc.Form)
	}

	payload := lobLetterRequest{
		Description: fmt.Sprintf("Advocacy Letter to Sen. %s from %s %s", doc.Recipient.Name, doc.Sender.FirstName, doc.Sender.LastName),
		// 20510 is the dedicated zip routing to Senate DC offices.
		To: lobAddress{
			Name:         "Senator " + doc.Recipient.Name,
			AddressLine1: "United States Senate",
			AddressCity:  "Washington",
			AddressState: "DC",
			AddressZip:   "20510",
		},
		From: lobAddress{
			Name:         doc.Sender.FirstName + " " + doc.Sender.LastName,
			AddressLine1: doc.Sender.StreetAddress,
			AddressCity:  doc.Sender.City,
			AddressState: doc.Sender.State,
			AddressZip:   doc.Sender.ZipCode,
		},
		File:             renderLetterHTML(doc, time.Now()),
		Color:            false,
		DoubleSided:      true,
		AddressPlacement: "top_first_page",
		UseType:          "operational",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("submit letter: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/v1/letters", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("submit letter: create request: %w", err)
	}
	req.SetBasicAuth(l.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit letter to %q: %w: %v", doc.Recipient.Name, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("submit letter: read response: %w", err)
	}

	var decoded lobLetterResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("submit letter: decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := strings.TrimSpace(string(respBody))
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return "", fmt.Errorf("submit letter to %q: lob status %d: %s", doc.Recipient.Name, resp.StatusCode, msg)
	}

	if decoded.ID == "" {
		return "", fmt.Errorf("submit letter to %q: lob returned no letter id", doc.Recipient.Name)
	}

	return decoded.ID, nil
}

// renderLetterHTML produces the formal letter Lob turns into a PDF: dateline,
// inside address, salutation by last name, then the composed body with
// newlines rendered as line breaks.
func renderLetterHTML(doc domain.DeliveryDocument, now time.Time) string {
	var b strings.Builder

	b.WriteString(`<html>
<head>
<style>
  body { font-family: 'Times New Roman', serif; font-size: 12pt; line-height: 1.5; color: #000; }
  .page { padding: 1in; }
  .date { margin-bottom: 2em; }
  .address { margin-bottom: 2em; }
  .salutation { margin-bottom: 1em; }
  .body { margin-bottom: 2em; text-align: justify; }
</style>
</head>
<body>
  <div class="page">
`)
	fmt.Fprintf(&b, "    <div class=\"date\">%s</div>\n", now.Format("January 2, 2006"))
	fmt.Fprintf(&b, `    <div class="address">
      The Honorable %s<br>
      United States Senate<br>
      Washington, DC 20510
    </div>
`, doc.Recipient.Name)
	fmt.Fprintf(&b, "    <div class=\"salutation\">Dear Senator %s,</div>\n", doc.Recipient.LastName())
	fmt.Fprintf(&b, "    <div class=\"body\">%s</div>\n", strings.ReplaceAll(doc.Body, "\n", "<br>"))
	b.WriteString("  </div>\n</body>\n</html>\n")

	return b.String()
}
