package donation

// Donation request statuses. Transition targets are not restricted to these;
// callers may set arbitrary status strings.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Display forms of the two handover modes.
const (
	ModePickup  = "Pickup"
	ModeDropOff = "Drop-off"
)

// LineItem is one persisted donation record. Every line item of one submission
// shares the same request_id and identical header fields; status is kept in
// sync across the group by the lifecycle.
type LineItem struct {
	DonationID       string `json:"donation_id"`
	RequestID        string `json:"request_id"`
	DonorName        string `json:"donor_name"`
	DonorPhone       string `json:"donor_phone"`
	DonorEmail       string `json:"donor_email,omitempty"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	City             string `json:"city"`
	Mode             string `json:"mode"`
	ItemCategory     string `json:"item_category"`
	ItemName         string `json:"item_name"`
	Quantity         int    `json:"quantity"`
	Condition        string `json:"condition"`
	PreferredTime    string `json:"preferred_time,omitempty"`
	Address          string `json:"address,omitempty"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

// SubmitItem is one item of an incoming submission. Quantity is left untyped
// because callers send numbers, numeric strings, or nothing; coercion happens
// in one place during submission.
type SubmitItem struct {
	ItemCategory string `json:"item_category"`
	ItemName     string `json:"item_name"`
	Quantity     any    `json:"quantity"`
	Condition    string `json:"condition"`
}

// SubmitRequest is the request body for creating a donation request.
type SubmitRequest struct {
	DonorName        string       `json:"donor_name"`
	DonorPhone       string       `json:"donor_phone"`
	DonorEmail       string       `json:"donor_email"`
	OrganizationID   string       `json:"organization_id"`
	OrganizationName string       `json:"organization_name"`
	City             string       `json:"city"`
	Mode             string       `json:"mode"`
	Items            []SubmitItem `json:"items"`
	PreferredTime    string       `json:"preferred_time"`
	Address          string       `json:"address"`
}

// AggregatedItem is one item row of an aggregated request view.
type AggregatedItem struct {
	ItemCategory string `json:"item_category"`
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
	Condition    string `json:"condition"`
}

// AggregatedRequest is the derived donor-facing view of one request: the
// shared header fields plus its items in storage order. Never persisted.
type AggregatedRequest struct {
	RequestID        string           `json:"request_id"`
	DonorName        string           `json:"donor_name"`
	DonorPhone       string           `json:"donor_phone"`
	DonorEmail       string           `json:"donor_email,omitempty"`
	OrganizationID   string           `json:"organization_id"`
	OrganizationName string           `json:"organization_name"`
	City             string           `json:"city"`
	Mode             string           `json:"mode"`
	PreferredTime    string           `json:"preferred_time,omitempty"`
	Address          string           `json:"address,omitempty"`
	Status           string           `json:"status"`
	CreatedAt        string           `json:"created_at"`
	Items            []AggregatedItem `json:"items"`
}

// ListResponse is the response body for the aggregated-request listing.
type ListResponse struct {
	Requests []AggregatedRequest `json:"requests"`
}

// SubmitResponse is the response body for a successful submission.
type SubmitResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

// StatusUpdateRequest is the request body for a status transition.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// StatusUpdateResponse is the response body for a successful status transition.
type StatusUpdateResponse struct {
	Success bool   `json:"success"`
	Updated int    `json:"updated"`
	Status  string `json:"status"`
}
