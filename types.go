package biztrack

import "time"

// User is the authenticated account's profile as returned by the backend's
// auth endpoints and cached in the credential store.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// SessionState labels where the session lifecycle currently is. Transient
// states (Restoring, Authenticating, Registering, LoggingOut) are visible
// to a presentation layer as "loading"; they always resolve to
// StateAuthenticated or StateUnauthenticated.
type SessionState uint8

const (
	// StateUnknown is the initial state before Restore has run.
	StateUnknown SessionState = iota
	StateRestoring
	StateAuthenticating
	StateRegistering
	StateLoggingOut
	StateAuthenticated
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateRestoring:
		return "restoring"
	case StateAuthenticating:
		return "authenticating"
	case StateRegistering:
		return "registering"
	case StateLoggingOut:
		return "logging_out"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Loading reports whether the state is transient.
func (s SessionState) Loading() bool {
	switch s {
	case StateRestoring, StateAuthenticating, StateRegistering, StateLoggingOut:
		return true
	default:
		return false
	}
}

// Session is an immutable snapshot of the manager's state. User is non-nil
// only when Token is non-empty once loading has resolved.
type Session struct {
	State SessionState
	Token string
	User  *User

	// Generation increments with every successful authentication. A 401
	// triggered under an older generation is ignored, so a stale response
	// cannot log out a session established after it was dispatched.
	Generation uint64
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// Loading reports whether an operation is in flight.
func (s Session) Loading() bool { return s.State.Loading() }

// RegisterResult is the outcome of a successful Register call. Some backend
// variants require email verification before the first login: they return a
// message and no token, and the session stays unauthenticated. That is a
// legitimate branch, not an error.
type RegisterResult struct {
	// Message is non-empty on the verification-pending branch.
	Message string `json:"message,omitempty"`

	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// VerificationPending reports whether the caller must prompt the user to
// verify their email before logging in.
func (r RegisterResult) VerificationPending() bool {
	return r.Token == "" && r.Message != ""
}

// ClientRecord is a customer the business invoices. ("Client" the type name
// is taken by the SDK entry point.)
type ClientRecord struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Item is a catalogued product or service.
type Item struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"taxRate,omitempty"`
}

// LineItem is one row of an estimate or invoice.
type LineItem struct {
	ItemID      int64   `json:"itemId,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}

// Estimate document statuses as the backend reports them.
const (
	EstimateStatusDraft     = "DRAFT"
	EstimateStatusSent      = "SENT"
	EstimateStatusConverted = "CONVERTED"
)

// Estimate is a quote that can later be converted to an invoice. Totals are
// computed by the flat multiply-and-sum the backend owns; the SDK only
// carries them.
type Estimate struct {
	ID        int64         `json:"id,omitempty"`
	Number    string        `json:"number,omitempty"`
	Status    string        `json:"status,omitempty"`
	ClientID  int64         `json:"clientId"`
	Client    *ClientRecord `json:"client,omitempty"`
	Items     []LineItem    `json:"items"`
	Subtotal  float64       `json:"subtotal"`
	TaxAmount float64       `json:"taxAmount"`
	Discount  float64       `json:"discount"`
	Total     float64       `json:"total"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
}

// Invoice statuses as the backend reports them.
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPartial = "PARTIAL"
	InvoiceStatusPaid    = "PAID"
)

// Invoice is a billable document with its recorded payments.
type Invoice struct {
	ID        int64         `json:"id,omitempty"`
	Number    string        `json:"number,omitempty"`
	Status    string        `json:"status,omitempty"`
	ClientID  int64         `json:"clientId,omitempty"`
	Client    *ClientRecord `json:"client,omitempty"`
	Items     []LineItem    `json:"items,omitempty"`
	Subtotal  float64       `json:"subtotal,omitempty"`
	TaxAmount float64       `json:"taxAmount,omitempty"`
	Discount  float64       `json:"discount,omitempty"`
	Total     float64       `json:"total"`
	Payments  []Payment     `json:"payments,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	DueDate   time.Time     `json:"dueDate,omitempty"`
}

// Payment is one recorded payment against an invoice.
type Payment struct {
	ID     int64     `json:"id,omitempty"`
	Amount float64   `json:"amount"`
	Method string    `json:"method,omitempty"`
	Notes  string    `json:"notes,omitempty"`
	Date   time.Time `json:"date,omitempty"`
}

// Expense is a logged business cost.
type Expense struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// Company is the business's own profile used on documents.
type Company struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// DashboardMetrics is the financial overview block.
type DashboardMetrics struct {
	TotalInvoiced  float64 `json:"totalInvoiced"`
	TotalCollected float64 `json:"totalCollected"`
	TotalPending   float64 `json:"totalPending"`
	NetProfit      float64 `json:"netProfit"`
}

// DashboardSummary is the authenticated landing payload.
type DashboardSummary struct {
	Metrics        DashboardMetrics `json:"metrics"`
	RecentActivity []Invoice        `json:"recentActivity,omitempty"`
}
