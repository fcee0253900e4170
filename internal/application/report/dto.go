package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary aggregates profitability across all completed operations
type Summary struct {
	TotalOperations     int64           `json:"total_operations"`
	CompletedOperations int64           `json:"completed_operations"`
	TotalSelling        decimal.Decimal `json:"total_selling"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	AverageMargin       decimal.Decimal `json:"average_margin"`
}

// OperationProfitRow is one operation's contribution to profit
type OperationProfitRow struct {
	OperationID     uuid.UUID       `json:"operation_id"`
	ReferenceNumber string          `json:"reference_number"`
	ClientID        uuid.UUID       `json:"client_id"`
	Consignee       string          `json:"consignee"`
	TotalSelling    decimal.Decimal `json:"total_selling"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"`
}

// PeriodProfitRow aggregates profit per calendar month
type PeriodProfitRow struct {
	Period       string          `json:"period"` // YYYY-MM
	Operations   int64           `json:"operations"`
	TotalSelling decimal.Decimal `json:"total_selling"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// ClientProfitRow aggregates profit per client
type ClientProfitRow struct {
	ClientID     uuid.UUID       `json:"client_id"`
	Consignee    string          `json:"consignee"`
	Operations   int64           `json:"operations"`
	TotalSelling decimal.Decimal `json:"total_selling"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// PeriodFilter bounds a report query in time. Zero values leave the
// corresponding side unbounded.
type PeriodFilter struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}
