package donation

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	apiErrors "github.com/sevasetu/sevasetu-backend/internal/errors"
	"github.com/sirupsen/logrus"
)

// Service provides the donation-request lifecycle: it validates submissions,
// allocates identifiers, and applies status transitions across a request's
// line items.
type Service struct {
	store  Store
	logger *logrus.Logger
}

// NewService creates a new Service.
// Used to inject dependencies and enable testability.
func NewService(store Store, logger *logrus.Logger) *Service {
	return &Service{store, logger}
}

// Submit validates the submission, expands it into one line item per entry of
// req.Items sharing a freshly allocated request id, and appends the batch to
// the store in one atomic call. Every new request starts as Pending.
func (s *Service) Submit(req SubmitRequest) (string, error) {
	donorName := strings.TrimSpace(req.DonorName)
	if len(donorName) < 2 {
		return "", apiErrors.ErrInvalidDonorName
	}
	donorPhone := strings.TrimSpace(req.DonorPhone)
	if len(donorPhone) < 10 {
		return "", apiErrors.ErrInvalidPhone
	}
	orgID := strings.TrimSpace(req.OrganizationID)
	city := strings.TrimSpace(req.City)
	if orgID == "" || city == "" {
		return "", apiErrors.ErrMissingOrganization
	}
	mode, err := normalizeMode(req.Mode)
	if err != nil {
		return "", err
	}
	if len(req.Items) == 0 {
		return "", apiErrors.ErrEmptyItemList
	}

	requestID := newRequestID()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	batch := make([]LineItem, 0, len(req.Items))
	for i, item := range req.Items {
		batch = append(batch, LineItem{
			DonationID:       fmt.Sprintf("%s-%d", requestID, i+1),
			RequestID:        requestID,
			DonorName:        donorName,
			DonorPhone:       donorPhone,
			DonorEmail:       strings.TrimSpace(req.DonorEmail),
			OrganizationID:   orgID,
			OrganizationName: strings.TrimSpace(req.OrganizationName),
			City:             city,
			Mode:             mode,
			ItemCategory:     strings.TrimSpace(item.ItemCategory),
			ItemName:         strings.TrimSpace(item.ItemName),
			Quantity:         coerceQuantity(item.Quantity),
			Condition:        strings.TrimSpace(item.Condition),
			PreferredTime:    strings.TrimSpace(req.PreferredTime),
			Address:          strings.TrimSpace(req.Address),
			Status:           StatusPending,
			CreatedAt:        createdAt,
		})
	}

	if err := s.store.AppendBatch(batch); err != nil {
		s.logger.Error("Submit append error: ", err)
		return "", err
	}
	s.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"items":      len(batch),
		"city":       city,
	}).Info("donation request submitted")
	return requestID, nil
}

// List returns the aggregated request views, storage order preserved,
// optionally restricted to one organization. Storage failures degrade to an
// empty listing; the read-only view stays available.
func (s *Service) List(organizationID string) []AggregatedRequest {
	records, err := s.store.LoadAll()
	if err != nil {
		s.logger.Warn("List degrading to empty store: ", err)
		records = nil
	}
	return Group(records, organizationID)
}

// Transition applies a status change to every line item of the request.
// An empty status defaults to Completed; status values are otherwise left
// unconstrained. Returns the applied status and how many items changed.
func (s *Service) Transition(requestID, status string) (int, string, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return 0, "", apiErrors.ErrEmptyRequestID
	}
	status = strings.TrimSpace(status)
	if status == "" {
		status = StatusCompleted
	}

	updated, err := s.store.UpdateStatus(requestID, status)
	if err != nil {
		return 0, "", err
	}
	s.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"status":     status,
		"updated":    updated,
	}).Info("donation request status updated")
	return updated, status, nil
}

// newRequestID allocates a short human-friendly request code, e.g. REQ-3FA85F64.
func newRequestID() string {
	u := uuid.New()
	return "REQ-" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// normalizeMode maps pickup/dropoff, case-insensitively, to display form.
func normalizeMode(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pickup":
		return ModePickup, nil
	case "dropoff":
		return ModeDropOff, nil
	default:
		return "", apiErrors.ErrInvalidMode
	}
}

// coerceQuantity is the single defaulting point for item quantities: numbers,
// numeric strings, and json.Number all coerce to an int no less than 1;
// anything else defaults to 1.
func coerceQuantity(v any) int {
	q := 1
	switch n := v.(type) {
	case float64:
		q = int(n)
	case int:
		q = n
	case json.Number:
		if parsed, err := n.Int64(); err == nil {
			q = int(parsed)
		}
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			q = int(parsed)
		}
	}
	if q < 1 {
		q = 1
	}
	return q
}
