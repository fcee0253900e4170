package persistence

import (
	"context"
	"errors"

	"github.com/comex/backend/internal/domain/billing"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/comex/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeeRepository implements FeeRepository using GORM
type GormFeeRepository struct {
	db *gorm.DB
}

// NewGormFeeRepository creates a new GormFeeRepository
func NewGormFeeRepository(db *gorm.DB) *GormFeeRepository {
	return &GormFeeRepository{db: db}
}

// FindByID finds a fee by its ID
func (r *GormFeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Fee, error) {
	var model models.FeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds fees matching the filter with pagination
func (r *GormFeeRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*billing.Fee], error) {
	return r.paginate(ctx, filter, nil)
}

// FindActive finds active fees matching the filter
func (r *GormFeeRepository) FindActive(ctx context.Context, filter shared.Filter) (*shared.Paginated[*billing.Fee], error) {
	active := func(query *gorm.DB) *gorm.DB {
		return query.Where("is_active = ?", true)
	}
	return r.paginate(ctx, filter, active)
}

func (r *GormFeeRepository) paginate(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) (*shared.Paginated[*billing.Fee], error) {
	filter = normalizeFilter(filter)

	countQuery := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FeeModel{}), filter)
	if scope != nil {
		countQuery = scope(countQuery)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.FeeModel{}), filter)
	if scope != nil {
		query = scope(query)
	}
	var feeModels []models.FeeModel
	if err := query.Find(&feeModels).Error; err != nil {
		return nil, err
	}

	fees := make([]*billing.Fee, len(feeModels))
	for i := range feeModels {
		fees[i] = feeModels[i].ToDomain()
	}
	result := shared.NewPaginated(fees, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Save creates or updates a fee
func (r *GormFeeRepository) Save(ctx context.Context, fee *billing.Fee) error {
	var model models.FeeModel
	model.FromDomain(fee)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a fee
func (r *GormFeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FeeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts fees matching the filter
func (r *GormFeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FeeModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFeeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	offset := (filter.Page - 1) * filter.PageSize
	query = query.Offset(offset).Limit(filter.PageSize)

	orderBy := ValidateSortField(filter.OrderBy, FeeSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFeeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormFeeRepository implements FeeRepository
var _ billing.FeeRepository = (*GormFeeRepository)(nil)
