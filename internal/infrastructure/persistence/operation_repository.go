package persistence

import (
	"context"
	"errors"

	"github.com/comex/backend/internal/domain/clearance"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/comex/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOperationRepository implements OperationRepository using GORM
type GormOperationRepository struct {
	db *gorm.DB
}

// NewGormOperationRepository creates a new GormOperationRepository
func NewGormOperationRepository(db *gorm.DB) *GormOperationRepository {
	return &GormOperationRepository{db: db}
}

// FindByID finds an operation by its ID
func (r *GormOperationRepository) FindByID(ctx context.Context, id uuid.UUID) (*clearance.Operation, error) {
	var model models.OperationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByReferenceNumber finds an operation by its reference number
func (r *GormOperationRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) (*clearance.Operation, error) {
	var model models.OperationModel
	if err := r.db.WithContext(ctx).
		Where("reference_number = ?", referenceNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByClientID finds all operations belonging to a client
func (r *GormOperationRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*clearance.Operation, error) {
	var operationModels []models.OperationModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&operationModels).Error; err != nil {
		return nil, err
	}
	operations := make([]*clearance.Operation, len(operationModels))
	for i := range operationModels {
		operations[i] = operationModels[i].ToDomain()
	}
	return operations, nil
}

// FindByStatus finds operations in a given lifecycle stage
func (r *GormOperationRepository) FindByStatus(ctx context.Context, status clearance.OperationStatus, filter shared.Filter) (*shared.Paginated[*clearance.Operation], error) {
	scope := func(query *gorm.DB) *gorm.DB {
		return query.Where("status = ?", status)
	}
	return r.paginate(ctx, filter, scope)
}

// FindAll finds operations matching the filter with pagination
func (r *GormOperationRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*clearance.Operation], error) {
	return r.paginate(ctx, filter, nil)
}

func (r *GormOperationRepository) paginate(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) (*shared.Paginated[*clearance.Operation], error) {
	filter = normalizeFilter(filter)

	countQuery := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.OperationModel{}), filter)
	if scope != nil {
		countQuery = scope(countQuery)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OperationModel{}), filter)
	if scope != nil {
		query = scope(query)
	}
	var operationModels []models.OperationModel
	if err := query.Find(&operationModels).Error; err != nil {
		return nil, err
	}

	operations := make([]*clearance.Operation, len(operationModels))
	for i := range operationModels {
		operations[i] = operationModels[i].ToDomain()
	}
	result := shared.NewPaginated(operations, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Save creates or updates an operation
func (r *GormOperationRepository) Save(ctx context.Context, operation *clearance.Operation) error {
	var model models.OperationModel
	model.FromDomain(operation)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes an operation
func (r *GormOperationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OperationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts operations matching the filter
func (r *GormOperationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.OperationModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByReferenceNumber checks whether another operation already uses the given reference number
func (r *GormOperationRepository) ExistsByReferenceNumber(ctx context.Context, referenceNumber string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.OperationModel{}).
		Where("reference_number = ?", referenceNumber)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateTotals writes only the four derived profitability columns,
// leaving the rest of the row untouched.
func (r *GormOperationRepository) UpdateTotals(ctx context.Context, operationID uuid.UUID, totals clearance.Totals) error {
	result := r.db.WithContext(ctx).
		Model(&models.OperationModel{}).
		Where("id = ?", operationID).
		Updates(map[string]interface{}{
			"total_selling": totals.Selling,
			"total_cost":    totals.Cost,
			"total_profit":  totals.Profit,
			"profit_margin": totals.Margin,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormOperationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	offset := (filter.Page - 1) * filter.PageSize
	query = query.Offset(offset).Limit(filter.PageSize)

	orderBy := ValidateSortField(filter.OrderBy, OperationSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOperationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("reference_number ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "start_date_from":
			query = query.Where("start_date >= ?", value)
		case "start_date_to":
			query = query.Where("start_date <= ?", value)
		}
	}

	return query
}

// Ensure GormOperationRepository implements OperationRepository
var _ clearance.OperationRepository = (*GormOperationRepository)(nil)
