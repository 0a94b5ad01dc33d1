package service_test

import (
	"context"
	"testing"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/repository"
	"pressdesk/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTransaction_Expense(t *testing.T) {
	var created *models.Transaction
	txns := &MockTransactionRepo{
		CreateFunc: func(ctx context.Context, tr *models.Transaction) error {
			tr.ID = uuid.New()
			created = tr
			return nil
		},
	}
	events := &MockEventBus{}
	repo := &repository.Repository{Transactions: txns, Orders: &MockOrderRepo{}}
	svc := service.NewLedgerService(repo, events)

	row, err := svc.RecordTransaction(wsCtx(), service.RecordTransactionInput{
		Type:        models.TransactionExpense,
		Category:    "Paper Purchase",
		Amount:      12000,
		Description: "100 ream offset",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, testWorkspace, row.WorkspaceID)
	assert.Equal(t, models.TransactionExpense, row.Type)
	assert.Equal(t, "Paper Purchase", row.Category)
	assert.Equal(t, int64(12000), row.Amount)
	assert.Nil(t, row.RelatedOrderID)

	require.Len(t, events.TransactionRecorded, 1)
	assert.Equal(t, row.ID, events.TransactionRecorded[0].TransactionID)
}

func TestRecordTransaction_RelatedOrderMustBeInWorkspace(t *testing.T) {
	known := uuid.New()
	orders := &MockOrderRepo{
		// the order exists only in the caller's workspace
		ExistsFunc: func(ctx context.Context, workspaceID, id uuid.UUID) (bool, error) {
			return workspaceID == testWorkspace && id == known, nil
		},
	}
	repo := &repository.Repository{Transactions: &MockTransactionRepo{}, Orders: orders}
	svc := service.NewLedgerService(repo, nil)

	_, err := svc.RecordTransaction(wsCtx(), service.RecordTransactionInput{
		Type: models.TransactionIncome, Category: "Order Payment", Amount: 500,
		RelatedOrderID: &known,
	})
	assert.NoError(t, err)

	unknown := uuid.New()
	_, err = svc.RecordTransaction(wsCtx(), service.RecordTransactionInput{
		Type: models.TransactionIncome, Category: "Order Payment", Amount: 500,
		RelatedOrderID: &unknown,
	})
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	// a real order id from another workspace is rejected the same way
	otherCtx := service.WithWorkspaceID(context.Background(), uuid.New())
	_, err = svc.RecordTransaction(otherCtx, service.RecordTransactionInput{
		Type: models.TransactionIncome, Category: "Order Payment", Amount: 500,
		RelatedOrderID: &known,
	})
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderTransactions_ScopedToWorkspace(t *testing.T) {
	ownOrder := uuid.New()
	foreignOrder := uuid.New()

	orders := &MockOrderRepo{
		ExistsFunc: func(ctx context.Context, workspaceID, id uuid.UUID) (bool, error) {
			return workspaceID == testWorkspace && id == ownOrder, nil
		},
	}
	txns := &MockTransactionRepo{
		GetByOrderIDFunc: func(ctx context.Context, workspaceID, orderID uuid.UUID) ([]models.Transaction, error) {
			if workspaceID == testWorkspace && orderID == ownOrder {
				return []models.Transaction{{Amount: 1000, Category: "Order Payment"}}, nil
			}
			return nil, nil
		},
	}
	repo := &repository.Repository{Transactions: txns, Orders: orders}
	svc := service.NewLedgerService(repo, nil)

	rows, err := svc.OrderTransactions(wsCtx(), ownOrder)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1000), rows[0].Amount)

	// an order belonging to another workspace reads as not found, never as
	// that workspace's ledger rows
	_, err = svc.OrderTransactions(wsCtx(), foreignOrder)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestAllTransactions_ScopedToWorkspace(t *testing.T) {
	var gotWorkspace uuid.UUID
	txns := &MockTransactionRepo{
		ListAllFunc: func(ctx context.Context, workspaceID uuid.UUID) ([]models.Transaction, error) {
			gotWorkspace = workspaceID
			return []models.Transaction{{Amount: 100}, {Amount: 200}}, nil
		},
	}
	repo := &repository.Repository{Transactions: txns}
	svc := service.NewLedgerService(repo, nil)

	rows, err := svc.AllTransactions(wsCtx())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, testWorkspace, gotWorkspace)

	_, err = svc.AllTransactions(context.Background())
	assert.ErrorIs(t, err, service.ErrWorkspaceRequired)
}

func TestRecordTransaction_Validation(t *testing.T) {
	repo := &repository.Repository{Transactions: &MockTransactionRepo{}, Orders: &MockOrderRepo{}}
	svc := service.NewLedgerService(repo, nil)

	_, err := svc.RecordTransaction(context.Background(), service.RecordTransactionInput{
		Type: models.TransactionIncome, Category: "x", Amount: 1,
	})
	assert.ErrorIs(t, err, service.ErrWorkspaceRequired)

	_, err = svc.RecordTransaction(wsCtx(), service.RecordTransactionInput{
		Type: "TRANSFER", Category: "x", Amount: 1,
	})
	assert.ErrorIs(t, err, service.ErrTransactionTypeInvalid)

	_, err = svc.RecordTransaction(wsCtx(), service.RecordTransactionInput{
		Type: models.TransactionIncome, Amount: 1,
	})
	assert.ErrorIs(t, err, service.ErrCategoryRequired)

	_, err = svc.RecordTransaction(wsCtx(), service.RecordTransactionInput{
		Type: models.TransactionIncome, Category: "x", Amount: 0,
	})
	assert.ErrorIs(t, err, service.ErrAmountInvalid)
}

func TestListTransactions_ScopesToWorkspace(t *testing.T) {
	var gotFilter repository.TransactionListFilter
	txns := &MockTransactionRepo{
		ListFunc: func(ctx context.Context, f repository.TransactionListFilter) ([]models.Transaction, int64, error) {
			gotFilter = f
			return []models.Transaction{{Amount: 100}}, 1, nil
		},
	}
	repo := &repository.Repository{Transactions: txns}
	svc := service.NewLedgerService(repo, nil)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	tt := models.TransactionIncome
	list, total, err := svc.ListTransactions(wsCtx(), service.LedgerFilter{Type: &tt, From: &from, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
	assert.Equal(t, testWorkspace, gotFilter.WorkspaceID)
	require.NotNil(t, gotFilter.Type)
	assert.Equal(t, models.TransactionIncome, *gotFilter.Type)
	assert.Equal(t, 10, gotFilter.Limit)
}
