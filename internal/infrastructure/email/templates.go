package email

import (
	"fmt"
	"strings"

	"oficina/internal/shared/services/markdown"
)

// Templates renders the shop's notification emails from markdown.
type Templates struct {
	renderer markdown.Renderer
	shopName string
	baseURL  string
}

func NewTemplates(renderer markdown.Renderer, shopName, baseURL string) *Templates {
	return &Templates{
		renderer: renderer,
		shopName: shopName,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// TrackingURL is the public page for a tracking code.
func (t *Templates) TrackingURL(code string) string {
	return t.baseURL + "/rastreio/" + code
}

func (t *Templates) TicketCreated(to []string, code string) (Message, error) {
	url := t.TrackingURL(code)
	body := fmt.Sprintf("Sua ficha **%s** foi criada.\n\nAcompanhe o andamento em [%s](%s).", code, url, url)
	if t.shopName != "" {
		body += "\n\n" + t.shopName
	}
	return t.render(to, fmt.Sprintf("Ficha %s criada", code), body)
}

func (t *Templates) TicketUpdated(to []string) (Message, error) {
	body := "O status da sua ficha foi atualizado!"
	if t.shopName != "" {
		body += "\n\n" + t.shopName
	}
	return t.render(to, "ficha atualizada!", body)
}

func (t *Templates) render(to []string, subject, body string) (Message, error) {
	html, err := t.renderer.ToHTMLSanitized(body)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: subject, HTML: html, Text: body}, nil
}
