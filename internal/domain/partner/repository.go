package partner

import (
	"context"

	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	shared.Repository[*Client]
	FindByCNPJ(ctx context.Context, cnpj string) (*Client, error)
	FindByReferenceNumber(ctx context.Context, referenceNumber string) (*Client, error)
	// ExistsByCNPJ reports whether another client (excluding excludeID when
	// non-nil) already uses the given CNPJ.
	ExistsByCNPJ(ctx context.Context, cnpj string, excludeID *uuid.UUID) (bool, error)
	ExistsByReferenceNumber(ctx context.Context, referenceNumber string, excludeID *uuid.UUID) (bool, error)
}

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	shared.Repository[*Supplier]
	FindByCNPJ(ctx context.Context, cnpj string) (*Supplier, error)
	FindActive(ctx context.Context, filter shared.Filter) (*shared.Paginated[*Supplier], error)
	ExistsByCNPJ(ctx context.Context, cnpj string, excludeID *uuid.UUID) (bool, error)
}
