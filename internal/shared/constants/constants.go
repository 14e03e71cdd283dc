package constants

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPage = 1

	// Client and ticket listings default to twelve rows per page.
	DefaultPageSize = 12
	// Access log listings default to twenty rows per page.
	DefaultLogPageSize = 20
	MaxPageSize        = 100
	// MaxPage bounds the page number so offsets cannot overflow.
	MaxPage = 1_000_000

	// MaxOwnTickets caps the "my tickets" listing before in-memory paging.
	MaxOwnTickets = 1000

	DefaultClientTicketLimit = 10
	ClientSearchLimit        = 10
	ClientSearchMinChars     = 2

	DefaultStatsMonths = 6
	MaxStatsMonths     = 36

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContextKeyAdminID   = "admin_id"
	ContextKeyRequestID = "request_id"

	// Public URL prefix for uploaded profile photos.
	PhotoURLPrefix = "/static/fotos/"

	ErrMsgInternalServerError = "Internal server error occurred"
)
