package persistence

import (
	"context"

	"github.com/comex/backend/internal/application/report"
	"github.com/comex/backend/internal/domain/clearance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements the report Repository using GORM.
// Every figure reads the stored operation totals; the aggregation
// recalculation keeps those in sync with the invoices.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// Summary aggregates profitability across completed operations
func (r *GormReportRepository) Summary(ctx context.Context) (*report.Summary, error) {
	var totalOperations int64
	if err := r.db.WithContext(ctx).
		Table("operations").
		Count(&totalOperations).Error; err != nil {
		return nil, err
	}

	var row struct {
		CompletedOperations int64
		TotalSelling        decimal.Decimal
		TotalCost           decimal.Decimal
		TotalProfit         decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Table("operations").
		Select(`COUNT(*) AS completed_operations,
			COALESCE(SUM(total_selling), 0) AS total_selling,
			COALESCE(SUM(total_cost), 0) AS total_cost,
			COALESCE(SUM(total_profit), 0) AS total_profit`).
		Where("status = ?", clearance.OperationStatusCompleted).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	averageMargin := decimal.Zero
	if row.TotalSelling.IsPositive() {
		averageMargin = row.TotalProfit.Div(row.TotalSelling).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &report.Summary{
		TotalOperations:     totalOperations,
		CompletedOperations: row.CompletedOperations,
		TotalSelling:        row.TotalSelling,
		TotalCost:           row.TotalCost,
		TotalProfit:         row.TotalProfit,
		AverageMargin:       averageMargin,
	}, nil
}

// ProfitByOperation lists per-operation profitability, most profitable first
func (r *GormReportRepository) ProfitByOperation(ctx context.Context, filter report.PeriodFilter) ([]report.OperationProfitRow, error) {
	var rows []report.OperationProfitRow
	query := r.db.WithContext(ctx).
		Table("operations o").
		Select(`o.id AS operation_id,
			o.reference_number,
			o.client_id,
			c.consignee,
			o.total_selling,
			o.total_cost,
			o.total_profit,
			o.profit_margin`).
		Joins("JOIN clients c ON c.id = o.client_id").
		Where("o.status = ?", clearance.OperationStatusCompleted)
	query = applyPeriodFilter(query, "o.start_date", filter)

	if err := query.Order("o.total_profit DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ProfitByPeriod aggregates profit per calendar month of the start date
func (r *GormReportRepository) ProfitByPeriod(ctx context.Context, filter report.PeriodFilter) ([]report.PeriodProfitRow, error) {
	var rows []report.PeriodProfitRow
	query := r.db.WithContext(ctx).
		Table("operations").
		Select(`to_char(start_date, 'YYYY-MM') AS period,
			COUNT(*) AS operations,
			COALESCE(SUM(total_selling), 0) AS total_selling,
			COALESCE(SUM(total_cost), 0) AS total_cost,
			COALESCE(SUM(total_profit), 0) AS total_profit`).
		Where("status = ?", clearance.OperationStatusCompleted).
		Where("start_date IS NOT NULL")
	query = applyPeriodFilter(query, "start_date", filter)

	if err := query.
		Group("to_char(start_date, 'YYYY-MM')").
		Order("period ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ProfitByClient aggregates profit per client, most profitable first
func (r *GormReportRepository) ProfitByClient(ctx context.Context, filter report.PeriodFilter) ([]report.ClientProfitRow, error) {
	var rows []report.ClientProfitRow
	query := r.db.WithContext(ctx).
		Table("operations o").
		Select(`o.client_id,
			c.consignee,
			COUNT(*) AS operations,
			COALESCE(SUM(o.total_selling), 0) AS total_selling,
			COALESCE(SUM(o.total_cost), 0) AS total_cost,
			COALESCE(SUM(o.total_profit), 0) AS total_profit`).
		Joins("JOIN clients c ON c.id = o.client_id").
		Where("o.status = ?", clearance.OperationStatusCompleted)
	query = applyPeriodFilter(query, "o.start_date", filter)

	if err := query.
		Group("o.client_id, c.consignee").
		Order("total_profit DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// applyPeriodFilter bounds the query on the given date column. Zero
// values leave the corresponding side unbounded.
func applyPeriodFilter(query *gorm.DB, column string, filter report.PeriodFilter) *gorm.DB {
	if !filter.From.IsZero() {
		query = query.Where(column+" >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where(column+" <= ?", filter.To)
	}
	return query
}

// Ensure GormReportRepository implements the report Repository
var _ report.Repository = (*GormReportRepository)(nil)
