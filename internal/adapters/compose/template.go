package compose

import (
	"advocacy-dispatch-service/internal/domain"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// TemplateComposer implements BodyComposer with a text/template over the
// requester and recipient. The default template is the campaign's advocacy
// letter; deployments can swap it via MESSAGE_TEMPLATE_PATH without a
// rebuild.
type TemplateComposer struct {
	tmpl *template.Template
}

type templateData struct {
	FirstName string
	LastName  string
	Recipient domain.Recipient
}

func NewTemplateComposer() *TemplateComposer {
	return &TemplateComposer{tmpl: template.Must(template.New("body").Parse(defaultTemplate))}
}

// NewTemplateComposerFromFile parses a template file instead of the built-in
// letter.
func NewTemplateComposerFromFile(path string) (*TemplateComposer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message template: %w", err)
	}

	tmpl, err := template.New("body").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse message template %q: %w", path, err)
	}

	return &TemplateComposer{tmpl: tmpl}, nil
}

func (c *TemplateComposer) ComposeBody(sender domain.Requester, recipient domain.Recipient) (string, error) {
	var b strings.Builder
	err := c.tmpl.Execute(&b, templateData{
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
		Recipient: recipient,
	})
	if err != nil {
		return "", fmt.Errorf("compose body: %w", err)
	}
	return b.String(), nil
}

const defaultTemplate = `Dear Senator,

I am writing to you as a concerned constituent to urge immediate action to support our Kurdish allies in Northeast Syria (Rojava).

Kurdish forces were America’s most vital boots-on-the-ground allies in defeating the physical ISIS caliphate, sacrificing thousands of lives in a fight that protected us all. Today, these same communities are dangerously abandoned—facing Turkish military aggression, threats from the Syrian regime, and severe geopolitical instability.

The humanitarian situation is rapidly deteriorating. Large areas of Northeast Syria are without electricity, clean water, or heating, leaving civilians—especially children, the elderly, and the sick—exposed to extreme hardship. Tragically, reports indicate that a fifth child has recently died due to cold and lack of basic services, underscoring the urgency of this crisis.

Beyond the humanitarian disaster, there are serious implications for U.S. national security. If this region destabilizes further, there is a dire risk that thousands of ISIS prisoners currently held in Kurdish-run detention camps could escape, potentially leading to a resurgence of global terrorism.

We must not abandon those who fought alongside us at great cost. I respectfully urge you to take immediate action to support humanitarian aid, protect civilian infrastructure, and ensure the continued stability and security of Northeast Syria.

Sincerely,

{{.FirstName}} {{.LastName}}`
