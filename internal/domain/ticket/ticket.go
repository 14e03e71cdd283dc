package ticket

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	vo "oficina/internal/domain/ticket/valueobjects"
)

// Field names used in change descriptions. They match the API field names.
const (
	FieldDescription      = "descricao"
	FieldDefect           = "defeito"
	FieldAccessories      = "acessorios"
	FieldCategory         = "categoria"
	FieldBrand            = "marca"
	FieldModel            = "modelo"
	FieldSerial           = "serial"
	FieldTrackingCode     = "codigo_rastreio"
	FieldStatus           = "status"
	FieldPublicNote       = "observacao_publica"
	FieldPrivateNote      = "observacao_privada"
	FieldDeliveryEstimate = "previsao_entrega"
	FieldValue            = "valor"
)

const (
	maxShortText       = 128
	maxDescription     = 4000
	maxLongText        = 2000
	maxTrackingCodeLen = 128
)

// Details are the free-form fields of a repair ticket.
type Details struct {
	Description      string
	Defect           string
	Accessories      string
	Category         string
	Brand            string
	Model            string
	Serial           string
	PublicNote       string
	PrivateNote      string
	DeliveryEstimate string
	Value            *float64
}

// Patch lists the fields to change. Nil fields are left untouched.
type Patch struct {
	Description      *string
	Defect           *string
	Accessories      *string
	Category         *string
	Brand            *string
	Model            *string
	Serial           *string
	TrackingCode     *string
	Status           *vo.TicketStatus
	PublicNote       *string
	PrivateNote      *string
	DeliveryEstimate *string
	Value            *float64
}

// Change records one field transition produced by Apply.
type Change struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Ticket is a repair job for one client's device.
type Ticket struct {
	id           uint
	clientID     uint
	details      Details
	trackingCode string
	status       vo.TicketStatus
	createdAt    time.Time
}

// NewTicket validates a new ticket. An empty status means StatusOpen. The
// tracking code must already be resolved by the caller.
func NewTicket(clientID uint, d Details, status vo.TicketStatus, trackingCode string) (*Ticket, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if status == "" {
		status = vo.StatusOpen
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	code, err := NormalizeTrackingCode(trackingCode)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("tracking code is required")
	}
	normalized, err := normalizeDetails(d)
	if err != nil {
		return nil, err
	}

	return &Ticket{
		clientID:     clientID,
		details:      normalized,
		trackingCode: code,
		status:       status,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	clientID uint,
	d Details,
	trackingCode string,
	status vo.TicketStatus,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return &Ticket{
		id:           id,
		clientID:     clientID,
		details:      d,
		trackingCode: trackingCode,
		status:       status,
		createdAt:    createdAt,
	}, nil
}

// NormalizeTrackingCode trims a user supplied code. An empty result means
// "generate one".
func NormalizeTrackingCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if utf8.RuneCountInString(code) > maxTrackingCodeLen {
		return "", fmt.Errorf("tracking code exceeds maximum length of %d characters", maxTrackingCodeLen)
	}
	return code, nil
}

func normalizeDetails(d Details) (Details, error) {
	fields := []struct {
		name  string
		value *string
		max   int
	}{
		{FieldDescription, &d.Description, maxDescription},
		{FieldDefect, &d.Defect, maxLongText},
		{FieldAccessories, &d.Accessories, maxLongText},
		{FieldCategory, &d.Category, maxShortText},
		{FieldBrand, &d.Brand, maxShortText},
		{FieldModel, &d.Model, maxShortText},
		{FieldSerial, &d.Serial, maxShortText},
		{FieldPublicNote, &d.PublicNote, maxLongText},
		{FieldPrivateNote, &d.PrivateNote, maxLongText},
		{FieldDeliveryEstimate, &d.DeliveryEstimate, maxShortText},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if utf8.RuneCountInString(*f.value) > f.max {
			return d, fmt.Errorf("%s exceeds maximum length of %d characters", f.name, f.max)
		}
	}
	if d.Defect == "" {
		return d, fmt.Errorf("%s is required", FieldDefect)
	}
	if d.Value != nil && *d.Value < 0 {
		return d, fmt.Errorf("%s cannot be negative", FieldValue)
	}
	return d, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) ClientID() uint           { return t.clientID }
func (t *Ticket) Details() Details         { return t.details }
func (t *Ticket) Description() string      { return t.details.Description }
func (t *Ticket) Defect() string           { return t.details.Defect }
func (t *Ticket) Accessories() string      { return t.details.Accessories }
func (t *Ticket) Category() string         { return t.details.Category }
func (t *Ticket) Brand() string            { return t.details.Brand }
func (t *Ticket) Model() string            { return t.details.Model }
func (t *Ticket) Serial() string           { return t.details.Serial }
func (t *Ticket) PublicNote() string       { return t.details.PublicNote }
func (t *Ticket) PrivateNote() string      { return t.details.PrivateNote }
func (t *Ticket) DeliveryEstimate() string { return t.details.DeliveryEstimate }
func (t *Ticket) Value() *float64          { return t.details.Value }
func (t *Ticket) TrackingCode() string     { return t.trackingCode }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Apply merges p into the ticket and returns the fields that actually
// changed, in a stable order. On validation failure the ticket is left
// untouched.
func (t *Ticket) Apply(p Patch) ([]Change, error) {
	next := t.details
	nextStatus := t.status
	nextCode := t.trackingCode
	var changes []Change

	text := func(field string, dst *string, src *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if v != *dst {
			changes = append(changes, Change{Field: field, Old: *dst, New: v})
			*dst = v
		}
	}

	text(FieldDescription, &next.Description, p.Description)
	text(FieldDefect, &next.Defect, p.Defect)
	text(FieldAccessories, &next.Accessories, p.Accessories)
	text(FieldCategory, &next.Category, p.Category)
	text(FieldBrand, &next.Brand, p.Brand)
	text(FieldModel, &next.Model, p.Model)
	text(FieldSerial, &next.Serial, p.Serial)

	if p.TrackingCode != nil {
		code, err := NormalizeTrackingCode(*p.TrackingCode)
		if err != nil {
			return nil, err
		}
		if code != "" && code != nextCode {
			changes = append(changes, Change{Field: FieldTrackingCode, Old: nextCode, New: code})
			nextCode = code
		}
	}

	if p.Status != nil && *p.Status != nextStatus {
		if !p.Status.IsValid() {
			return nil, fmt.Errorf("invalid status: %s", *p.Status)
		}
		changes = append(changes, Change{Field: FieldStatus, Old: string(nextStatus), New: string(*p.Status)})
		nextStatus = *p.Status
	}

	text(FieldPublicNote, &next.PublicNote, p.PublicNote)
	text(FieldPrivateNote, &next.PrivateNote, p.PrivateNote)
	text(FieldDeliveryEstimate, &next.DeliveryEstimate, p.DeliveryEstimate)

	if p.Value != nil && (next.Value == nil || *next.Value != *p.Value) {
		changes = append(changes, Change{Field: FieldValue, Old: formatValue(next.Value), New: formatValue(p.Value)})
		v := *p.Value
		next.Value = &v
	}

	normalized, err := normalizeDetails(next)
	if err != nil {
		return nil, err
	}

	t.details = normalized
	t.status = nextStatus
	t.trackingCode = nextCode
	return changes, nil
}

// TrackingCodeChanged reports whether changes include a new tracking code.
func TrackingCodeChanged(changes []Change) bool {
	for _, c := range changes {
		if c.Field == FieldTrackingCode {
			return true
		}
	}
	return false
}

// DescribeChanges renders changes as "field: 'old' -> 'new'" joined by "; ".
func DescribeChanges(changes []Change) string {
	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = fmt.Sprintf("%s: '%s' -> '%s'", c.Field, c.Old, c.New)
	}
	return strings.Join(parts, "; ")
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
