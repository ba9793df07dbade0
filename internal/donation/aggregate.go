package donation

import "strings"

// Group collapses flat line items into one aggregated view per request.
// Records are grouped by request_id, falling back to donation_id for legacy
// single-item records that predate request grouping. The first record seen
// for a key seeds the header; later records contribute only their item, in
// encounter order. Groups appear in the order their key was first seen.
// When organizationID is non-empty, records are first restricted to that
// organization (exact match after trimming whitespace). Pure transform.
func Group(records []LineItem, organizationID string) []AggregatedRequest {
	filter := strings.TrimSpace(organizationID)
	views := make([]AggregatedRequest, 0)
	indexByKey := make(map[string]int)

	for _, rec := range records {
		if filter != "" && strings.TrimSpace(rec.OrganizationID) != filter {
			continue
		}
		key := rec.RequestID
		if key == "" {
			key = rec.DonationID
		}

		item := AggregatedItem{
			ItemCategory: rec.ItemCategory,
			ItemName:     rec.ItemName,
			Quantity:     rec.Quantity,
			Condition:    rec.Condition,
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}

		if i, ok := indexByKey[key]; ok {
			views[i].Items = append(views[i].Items, item)
			continue
		}
		indexByKey[key] = len(views)
		views = append(views, AggregatedRequest{
			RequestID:        key,
			DonorName:        rec.DonorName,
			DonorPhone:       rec.DonorPhone,
			DonorEmail:       rec.DonorEmail,
			OrganizationID:   rec.OrganizationID,
			OrganizationName: rec.OrganizationName,
			City:             rec.City,
			Mode:             rec.Mode,
			PreferredTime:    rec.PreferredTime,
			Address:          rec.Address,
			Status:           rec.Status,
			CreatedAt:        rec.CreatedAt,
			Items:            []AggregatedItem{item},
		})
	}
	return views
}
