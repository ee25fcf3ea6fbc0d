package sqlstore

import (
	"strings"

	repo "property-listings/internal/listing/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListListings.
// Placeholders are '?' and get rebound for the driver by the caller.
func (r *implRepository) buildListQuery(opt repo.ListListingsOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.UserID != "" {
		parts = append(parts, "WHERE user_id = ?")
		args = append(args, opt.UserID)
	}

	// Insertion order.
	parts = append(parts, "ORDER BY seq ASC")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
