package persistence

import (
	"context"
	"errors"

	"github.com/comex/backend/internal/domain/partner"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/comex/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCNPJ finds a client by its normalized CNPJ
func (r *GormClientRepository) FindByCNPJ(ctx context.Context, cnpj string) (*partner.Client, error) {
	normalized, err := partner.NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("cnpj = ?", normalized).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByReferenceNumber finds a client by its reference number
func (r *GormClientRepository) FindByReferenceNumber(ctx context.Context, referenceNumber string) (*partner.Client, error) {
	var model models.ClientModel
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

// FindAll finds clients matching the filter with pagination
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*partner.Client], error) {
	filter = normalizeFilter(filter)

	var total int64
	countQuery := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]*partner.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToDomain()
	}
	result := shared.NewPaginated(clients, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	var model models.ClientModel
	model.FromDomain(client)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCNPJ checks whether another client already uses the given CNPJ
func (r *GormClientRepository) ExistsByCNPJ(ctx context.Context, cnpj string, excludeID *uuid.UUID) (bool, error) {
	normalized, err := partner.NormalizeCNPJ(cnpj)
	if err != nil {
		return false, err
	}
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("cnpj = ?", normalized)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByReferenceNumber checks whether another client already uses the given reference number
func (r *GormClientRepository) ExistsByReferenceNumber(ctx context.Context, referenceNumber string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("reference_number = ?", referenceNumber)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	offset := (filter.Page - 1) * filter.PageSize
	query = query.Offset(offset).Limit(filter.PageSize)

	orderBy := ValidateSortField(filter.OrderBy, ClientSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("shipper ILIKE ? OR consignee ILIKE ? OR cnpj ILIKE ? OR reference_number ILIKE ? OR bl ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "freight_term":
			query = query.Where("freight_term = ?", value)
		case "port_origin":
			query = query.Where("port_origin = ?", value)
		case "port_destination":
			query = query.Where("port_destination = ?", value)
		case "state":
			query = query.Where("state = ?", value)
		}
	}

	return query
}

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
