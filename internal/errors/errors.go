package errors

import (
	"errors"
	"net/http"
)

// APIError represents a structured error for API responses.
// Includes a code, message, and HTTP status for consistent error handling.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given code, message, and status.
func NewAPIError(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, Status: status}
}

// Predefined API errors for common scenarios.
var (
	// Validation errors: malformed or missing caller input, always recoverable.
	ErrInvalidQuery        = NewAPIError("invalid_query", "Provide numeric lat and lng query params.", http.StatusBadRequest)
	ErrMissingCity         = NewAPIError("missing_city", "Provide city query param.", http.StatusBadRequest)
	ErrInvalidBody         = NewAPIError("invalid_body_format", "unable to parse the request body", http.StatusBadRequest)
	ErrInvalidDonorName    = NewAPIError("invalid_donor_name", "donor name must be at least 2 characters", http.StatusBadRequest)
	ErrInvalidPhone        = NewAPIError("invalid_phone", "donor phone must be at least 10 characters", http.StatusBadRequest)
	ErrMissingOrganization = NewAPIError("missing_organization", "organization id and city are required", http.StatusBadRequest)
	ErrInvalidMode         = NewAPIError("invalid_mode", "mode must be pickup or dropoff", http.StatusBadRequest)
	ErrEmptyItemList       = NewAPIError("empty_item_list", "at least one item is required", http.StatusBadRequest)
	ErrEmptyRequestID      = NewAPIError("empty_request_id", "request id is required", http.StatusBadRequest)

	// Not-found errors: the referenced resource does not exist, no state change.
	ErrUnknownCity     = NewAPIError("unknown_city", "Unknown city", http.StatusNotFound)
	ErrRequestNotFound = NewAPIError("request_not_found", "donation request not found", http.StatusNotFound)
	ErrCatalogNotFound = NewAPIError("catalog_not_found", "Items catalog not found", http.StatusNotFound)

	// Storage errors: surfaced as a generic server failure, never with internal paths.
	ErrStorageUnavailable = NewAPIError("storage_unavailable", "donation store is unavailable", http.StatusInternalServerError)
	ErrCorruptStore       = NewAPIError("corrupt_store", "donation store content is invalid", http.StatusInternalServerError)
	ErrCorruptCatalog     = NewAPIError("corrupt_catalog", "Invalid items catalog format", http.StatusInternalServerError)
	ErrNoOrganizations    = NewAPIError("no_organizations_indexed", "no organizations are indexed", http.StatusInternalServerError)

	ErrInternalServer = NewAPIError("internal_error", "Internal server error", http.StatusInternalServerError)
)

// AsAPIError unwraps err into an *APIError if it is one.
// Used by handlers to map service errors onto HTTP statuses.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
