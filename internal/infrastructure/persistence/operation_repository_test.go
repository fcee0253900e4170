package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comex/backend/internal/domain/clearance"
	"github.com/comex/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOperationRepository creates a GormOperationRepository with a mocked SQL connection
func newMockOperationRepository(t *testing.T) (*GormOperationRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOperationRepository(gormDB), mock, mockDB
}

func TestGormOperationRepository_FindByID(t *testing.T) {
	t.Run("finds existing operation", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		operationID := uuid.New()
		clientID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "version", "client_id", "reference_number", "status", "total_selling", "total_cost", "total_profit", "profit_margin"}).
			AddRow(operationID, 1, clientID, "IMP-2024-001", "in_progress", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

		mock.ExpectQuery(`SELECT \* FROM "operations" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(operationID, 1).
			WillReturnRows(rows)

		operation, err := repo.FindByID(context.Background(), operationID)

		assert.NoError(t, err)
		assert.NotNil(t, operation)
		assert.Equal(t, operationID, operation.ID)
		assert.Equal(t, "IMP-2024-001", operation.ReferenceNumber)
		assert.Equal(t, clearance.OperationStatusInProgress, operation.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing operation", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		operationID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "operations" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(operationID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		operation, err := repo.FindByID(context.Background(), operationID)

		assert.Error(t, err)
		assert.Nil(t, operation)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOperationRepository_FindByReferenceNumber(t *testing.T) {
	t.Run("finds operation by reference", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		operationID := uuid.New()
		clientID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "version", "client_id", "reference_number", "status"}).
			AddRow(operationID, 1, clientID, "IMP-2024-002", "pending")

		mock.ExpectQuery(`SELECT \* FROM "operations" WHERE reference_number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("IMP-2024-002", 1).
			WillReturnRows(rows)

		operation, err := repo.FindByReferenceNumber(context.Background(), "IMP-2024-002")

		assert.NoError(t, err)
		assert.NotNil(t, operation)
		assert.Equal(t, "IMP-2024-002", operation.ReferenceNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOperationRepository_ExistsByReferenceNumber(t *testing.T) {
	t.Run("reports existing reference", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "operations" WHERE reference_number = \$1`).
			WithArgs("IMP-2024-001").
			WillReturnRows(rows)

		exists, err := repo.ExistsByReferenceNumber(context.Background(), "IMP-2024-001", nil)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excludes the given id from the conflict check", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		excludeID := uuid.New()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "operations" WHERE reference_number = \$1 AND id <> \$2`).
			WithArgs("IMP-2024-001", excludeID).
			WillReturnRows(rows)

		exists, err := repo.ExistsByReferenceNumber(context.Background(), "IMP-2024-001", &excludeID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOperationRepository_UpdateTotals(t *testing.T) {
	t.Run("writes only the derived columns", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		operationID := uuid.New()
		totals := clearance.ComputeTotals(decimal.NewFromInt(1000), decimal.NewFromInt(600))

		mock.ExpectExec(`UPDATE "operations" SET .* WHERE id = \$\d+`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), operationID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateTotals(context.Background(), operationID, totals)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no row matches", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		operationID := uuid.New()

		mock.ExpectExec(`UPDATE "operations" SET .* WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateTotals(context.Background(), operationID, clearance.ZeroTotals())

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOperationRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockOperationRepository(t)
		defer mockDB.Close()

		operationID := uuid.New()

		mock.ExpectExec(`DELETE FROM "operations" WHERE id = \$1`).
			WithArgs(operationID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), operationID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
