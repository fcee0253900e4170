package clearance

import (
	"context"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OperationRepository defines persistence operations for clearance operations
type OperationRepository interface {
	shared.Repository[*Operation]
	FindByReferenceNumber(ctx context.Context, referenceNumber string) (*Operation, error)
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*Operation, error)
	FindByStatus(ctx context.Context, status OperationStatus, filter shared.Filter) (*shared.Paginated[*Operation], error)
	ExistsByReferenceNumber(ctx context.Context, referenceNumber string, excludeID *uuid.UUID) (bool, error)
	// UpdateTotals writes only the four derived figures, leaving the rest
	// of the row untouched.
	UpdateTotals(ctx context.Context, operationID uuid.UUID, totals Totals) error
}
