package persistence

import (
	"github.com/comex/backend/internal/domain/shared"
)

// normalizeFilter fills in pagination defaults so the offset math and
// page arithmetic never run on zero values.
func normalizeFilter(filter shared.Filter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return filter
}
