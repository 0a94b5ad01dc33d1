package service

import (
	"context"
	"errors"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrTransactionTypeInvalid = errors.New("transaction type must be INCOME or EXPENSE")
	ErrCategoryRequired       = errors.New("transaction category is required")
)

type RecordTransactionInput struct {
	Type           models.TransactionType
	Category       string
	Amount         int64
	Description    string
	RelatedOrderID *uuid.UUID
}

type LedgerFilter struct {
	Type     *models.TransactionType
	Category *string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// LedgerService is the bookkeeping side of the ledger bridge: order payments
// arrive through the order aggregate, everything else (expenses, other
// income) through RecordTransaction.
type LedgerService interface {
	RecordTransaction(ctx context.Context, in RecordTransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context, f LedgerFilter) ([]models.Transaction, int64, error)
	AllTransactions(ctx context.Context) ([]models.Transaction, error)
	OrderTransactions(ctx context.Context, orderID uuid.UUID) ([]models.Transaction, error)
}

type ledgerService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
}

func NewLedgerService(repo *repository.Repository, events EventBus) LedgerService {
	return &ledgerService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func (s *ledgerService) RecordTransaction(ctx context.Context, in RecordTransactionInput) (*models.Transaction, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	if in.Type != models.TransactionIncome && in.Type != models.TransactionExpense {
		return nil, ErrTransactionTypeInvalid
	}
	if in.Category == "" {
		return nil, ErrCategoryRequired
	}
	if in.Amount <= 0 {
		return nil, ErrAmountInvalid
	}
	// The related order must belong to the caller's workspace; a foreign
	// order id is indistinguishable from a missing one.
	if in.RelatedOrderID != nil {
		ok, err := s.repo.Orders.Exists(ctx, ws, *in.RelatedOrderID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrOrderNotFound
		}
	}

	now := s.now()
	row := &models.Transaction{
		WorkspaceID:    ws,
		Date:           now,
		Type:           in.Type,
		Category:       in.Category,
		Amount:         in.Amount,
		Description:    in.Description,
		RelatedOrderID: in.RelatedOrderID,
		CreatedAt:      now,
	}
	if err := s.repo.Transactions.Create(ctx, row); err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishTransactionRecorded(ctx, TransactionRecordedEvent{
			TransactionID:  row.ID,
			WorkspaceID:    ws,
			Type:           row.Type,
			Category:       row.Category,
			Amount:         row.Amount,
			RelatedOrderID: row.RelatedOrderID,
			Date:           row.Date,
		})
	}

	return row, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, f LedgerFilter) ([]models.Transaction, int64, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.Transactions.List(ctx, repository.TransactionListFilter{
		WorkspaceID: ws,
		Type:        f.Type,
		Category:    f.Category,
		From:        f.From,
		To:          f.To,
		Limit:       f.Limit,
		Offset:      f.Offset,
	})
}

// AllTransactions returns the workspace's full ledger for the CSV export.
func (s *ledgerService) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Transactions.ListAll(ctx, ws)
}

func (s *ledgerService) OrderTransactions(ctx context.Context, orderID uuid.UUID) ([]models.Transaction, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.Orders.Exists(ctx, ws, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	return s.repo.Transactions.GetByOrderID(ctx, ws, orderID)
}
