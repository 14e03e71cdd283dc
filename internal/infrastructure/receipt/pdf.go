// Package receipt renders printable ticket receipts.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"oficina/internal/domain/client"
	"oficina/internal/domain/ticket"
	"oficina/internal/shared/biztime"
	"oficina/internal/shared/config"
	"oficina/internal/shared/logger"
)

const (
	MaxFieldLength = 8000
	DefaultQRSize  = 220

	qrImageName = "tracking-qr"
	qrSideMM    = 38.0
)

// Renderer produces the PDF bytes of a ticket receipt.
type Renderer interface {
	Render(t *ticket.Ticket, c *client.Client) ([]byte, error)
}

type PDFRenderer struct {
	shop    config.ReceiptConfig
	baseURL string
	qrSize  int
	logger  logger.Interface

	encodeQR func(content string, size int) ([]byte, error)
}

func NewPDFRenderer(shop config.ReceiptConfig, baseURL string, log logger.Interface) *PDFRenderer {
	return &PDFRenderer{
		shop:    shop,
		baseURL: strings.TrimRight(baseURL, "/"),
		qrSize:  DefaultQRSize,
		logger:  log,
		encodeQR: func(content string, size int) ([]byte, error) {
			return qrcode.Encode(content, qrcode.Medium, size)
		},
	}
}

// TrackingURL is the address encoded in the receipt's QR code.
func (r *PDFRenderer) TrackingURL(code string) string {
	return r.baseURL + "/rastreio/" + code
}

// Render lays out the receipt. A QR code failure is logged and the receipt
// is produced without it.
func (r *PDFRenderer) Render(t *ticket.Ticket, c *client.Client) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(8, 8, 8)
	pdf.SetAutoPageBreak(true, 8)
	pdf.SetTitle("Ficha "+t.TrackingCode(), true)
	pdf.SetCreator(r.shop.ShopName, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(Truncate(s, MaxFieldLength)) }

	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 16

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 8, text(r.shop.ShopName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{r.shop.ShopAddress, r.shop.ShopPhone} {
		if line != "" {
			pdf.CellFormat(contentW, 5, text(line), "", 1, "L", false, 0, "")
		}
	}

	qrTop := pdf.GetY() + 2
	if png, err := r.encodeQR(r.TrackingURL(t.TrackingCode()), r.qrSize); err != nil {
		r.logger.Warnw("failed to generate receipt QR code", "ticket_id", t.ID(), "error", err)
	} else {
		pdf.RegisterImageOptionsReader(qrImageName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
		pdf.ImageOptions(qrImageName, pageW-8-qrSideMM, 8, qrSideMM, qrSideMM, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}
	pdf.SetY(qrTop)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, text("Ficha "+t.TrackingCode()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, text("Aberta em "+biztime.Format(t.CreatedAt(), "02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, text("Status: "+t.Status().Label()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, text(title), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(38, 6, text(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentW-38, 6, text(value), "", "L", false)
	}

	section("Cliente")
	row("Nome", c.Name())
	row("Telefone", c.Phone())
	row("E-mail", c.Email())
	row("Endereço", joinNonEmpty(", ", c.Address(), c.Number(), c.District()))

	section("Aparelho")
	row("Categoria", t.Category())
	row("Marca", t.Brand())
	row("Modelo", t.Model())
	row("Serial", t.Serial())
	row("Acessórios", t.Accessories())

	section("Serviço")
	row("Defeito", t.Defect())
	row("Descrição", t.Description())
	row("Observação", t.PublicNote())
	row("Previsão", t.DeliveryEstimate())
	if v := t.Value(); v != nil {
		row("Valor", FormatMoney(*v))
	}

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, text("Acompanhe em "+r.TrackingURL(t.TrackingCode())), "", 1, "L", false, 0, "")
	pdf.Ln(12)
	pdf.CellFormat(contentW/2-4, 5, text("Assinatura do cliente"), "T", 0, "C", false, 0, "")
	pdf.CellFormat(8, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(contentW/2-4, 5, text(r.shop.ShopName), "T", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// FormatMoney renders v in Brazilian notation, e.g. "R$ 1.234,50".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
