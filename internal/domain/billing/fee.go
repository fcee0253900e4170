package billing

import (
	"github.com/comex/backend/internal/domain/shared"
)

// Fee is a reusable charge description applied when composing invoices
type Fee struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	IsActive    bool
}

// NewFee creates a new active fee
func NewFee(name, description string) (*Fee, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Fee name cannot be empty")
	}
	return &Fee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		IsActive:          true,
	}, nil
}

// Rename changes the fee's display name
func (f *Fee) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Fee name cannot be empty")
	}
	f.Name = name
	f.Touch()
	f.IncrementVersion()
	return nil
}

// SetDescription updates the fee description
func (f *Fee) SetDescription(description string) {
	f.Description = description
	f.Touch()
}

// Deactivate soft-deletes the fee, hiding it from default listings
func (f *Fee) Deactivate() {
	f.IsActive = false
	f.Touch()
	f.IncrementVersion()
}

// Activate restores a deactivated fee
func (f *Fee) Activate() {
	f.IsActive = true
	f.Touch()
	f.IncrementVersion()
}
