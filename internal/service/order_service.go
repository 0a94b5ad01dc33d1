package service

import (
	"context"
	"fmt"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/pricing"
	"pressdesk/internal/repository"

	"github.com/google/uuid"
)

// ledgerCategoryOrderPayment is the ledger category for advances and payments
// recorded against an order.
const ledgerCategoryOrderPayment = "Order Payment"

type orderService struct {
	repo   *repository.Repository
	events EventBus
	now    func() time.Time
}

func NewOrderService(repo *repository.Repository, events EventBus) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func requireWorkspace(ctx context.Context) (uuid.UUID, error) {
	ws, ok := WorkspaceIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrWorkspaceRequired
	}
	return ws, nil
}

// defaultDiscount resolves the customer's standing discount against a
// subtotal. Only used when the order carries no explicit discount.
func defaultDiscount(c *models.Customer, subTotal int64) int64 {
	if c.DiscountType == nil || c.DiscountValue == nil {
		return 0
	}
	switch *c.DiscountType {
	case models.DiscountPercentage:
		return pricing.Round(float64(subTotal) * float64(*c.DiscountValue) / 100)
	case models.DiscountFixed:
		return *c.DiscountValue
	}
	return 0
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if in.Discount < 0 {
		return nil, ErrDiscountInvalid
	}
	if in.Advance < 0 {
		return nil, ErrAmountInvalid
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !priority.Valid() {
		return nil, ErrPriorityInvalid
	}

	cust, err := s.repo.Customers.GetByID(ctx, ws, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, ErrCustomerNotFound
	}

	now := s.now()

	items := make([]models.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		built, err := pricing.BuildItem(pricing.Draft{
			Name:       it.Name,
			Category:   it.Category,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Width:      it.Width,
			Height:     it.Height,
			PaperType:  it.PaperType,
			PrintSide:  it.PrintSide,
			ColorMode:  it.ColorMode,
			DesignLink: it.DesignLink,
		})
		if err != nil {
			return nil, err
		}
		built.Position = i
		built.CreatedAt = now
		items = append(items, built)
	}

	subTotal := pricing.SubTotal(items)
	discount := in.Discount
	if discount == 0 {
		discount = defaultDiscount(cust, subTotal)
	}
	grandTotal := pricing.GrandTotal(subTotal, discount)
	paidAmount := in.Advance
	dueAmount := pricing.Due(grandTotal, paidAmount)

	var (
		order     *models.Order
		ledgerRow *models.Transaction
	)

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo, pr repository.PaymentRepo, tr repository.TransactionRepo) error {
		number, err := or.NextNumber(ctx, ws)
		if err != nil {
			return err
		}

		order = &models.Order{
			WorkspaceID:     ws,
			Number:          number,
			CustomerID:      cust.ID,
			CustomerName:    cust.Name,
			CustomerPhone:   cust.Phone,
			CustomerAddress: cust.Address,
			SubTotal:        subTotal,
			Discount:        discount,
			GrandTotal:      grandTotal,
			PaidAmount:      paidAmount,
			DueAmount:       dueAmount,
			Status:          models.OrderStatusPending,
			Priority:        priority,
			OrderDate:       now,
			DeliveryDate:    in.DeliveryDate,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if in.Note != "" {
			note := in.Note
			order.Note = &note
		}

		if err := or.Create(ctx, order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := ir.BulkCreate(ctx, items); err != nil {
			return err
		}

		if in.Advance > 0 {
			payment := &models.PaymentRecord{
				OrderID:   order.ID,
				Date:      now,
				Amount:    in.Advance,
				Note:      "advance",
				CreatedAt: now,
			}
			if err := pr.Create(ctx, payment); err != nil {
				return err
			}

			orderID := order.ID
			ledgerRow = &models.Transaction{
				WorkspaceID:    ws,
				Date:           now,
				Type:           models.TransactionIncome,
				Category:       ledgerCategoryOrderPayment,
				Amount:         in.Advance,
				Description:    fmt.Sprintf("Advance for order #%d (%s)", order.Number, cust.Name),
				RelatedOrderID: &orderID,
				CreatedAt:      now,
			}
			if err := tr.Create(ctx, ledgerRow); err != nil {
				return err
			}
		}

		ordWith, err := or.GetByID(ctx, ws, order.ID)
		if err != nil {
			return err
		}
		order = ordWith
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:     order.ID,
			WorkspaceID: ws,
			Number:      order.Number,
			CustomerID:  order.CustomerID,
			GrandTotal:  order.GrandTotal,
			DueAmount:   order.DueAmount,
			CreatedAt:   order.CreatedAt,
		})
		if ledgerRow != nil {
			_ = s.events.PublishTransactionRecorded(ctx, TransactionRecordedEvent{
				TransactionID:  ledgerRow.ID,
				WorkspaceID:    ws,
				Type:           ledgerRow.Type,
				Category:       ledgerRow.Category,
				Amount:         ledgerRow.Amount,
				RelatedOrderID: ledgerRow.RelatedOrderID,
				Date:           ledgerRow.Date,
			})
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	ord, err := s.repo.Orders.GetByID(ctx, ws, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, 0, err
	}

	ordersPtr, total, err := s.repo.Orders.List(ctx, repository.OrderListFilter{
		WorkspaceID: ws,
		CustomerID:  f.CustomerID,
		Status:      f.Status,
		Limit:       f.Limit,
		Offset:      f.Offset,
	})
	if err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, len(ordersPtr))
	for i, o := range ordersPtr {
		orders[i] = *o
	}
	return orders, total, nil
}

// AllOrders returns the workspace's full order collection, newest first.
// Backs the export collaborator, which reads collections as one unit.
func (s *orderService) AllOrders(ctx context.Context) ([]*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Orders.ListAll(ctx, ws)
}

// RecordPayment appends to the payment history and rederives paid/due from
// the full history inside one transaction, together with the ledger entry.
// Overpayment is allowed: due goes negative and stays visible as credit.
func (s *orderService) RecordPayment(ctx context.Context, orderID uuid.UUID, amount int64, note string) (*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrAmountInvalid
	}

	ord, err := s.repo.Orders.GetByID(ctx, ws, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	now := s.now()
	var ledgerRow *models.Transaction

	err = s.repo.Orders.WithTx(ctx, func(or repository.OrderRepo, ir repository.OrderItemRepo, pr repository.PaymentRepo, tr repository.TransactionRepo) error {
		payment := &models.PaymentRecord{
			OrderID:   ord.ID,
			Date:      now,
			Amount:    amount,
			Note:      note,
			CreatedAt: now,
		}
		if err := pr.Create(ctx, payment); err != nil {
			return err
		}

		paid, err := pr.SumByOrder(ctx, ord.ID)
		if err != nil {
			return err
		}
		due := pricing.Due(ord.GrandTotal, paid)
		if err := or.UpdateTotals(ctx, ord.ID, ord.SubTotal, ord.GrandTotal, paid, due); err != nil {
			return err
		}

		oid := ord.ID
		ledgerRow = &models.Transaction{
			WorkspaceID:    ws,
			Date:           now,
			Type:           models.TransactionIncome,
			Category:       ledgerCategoryOrderPayment,
			Amount:         amount,
			Description:    fmt.Sprintf("Payment for order #%d (%s)", ord.Number, ord.CustomerName),
			RelatedOrderID: &oid,
			CreatedAt:      now,
		}
		if err := tr.Create(ctx, ledgerRow); err != nil {
			return err
		}

		ordWith, err := or.GetByID(ctx, ws, ord.ID)
		if err != nil {
			return err
		}
		ord = ordWith
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil && ledgerRow != nil {
		_ = s.events.PublishTransactionRecorded(ctx, TransactionRecordedEvent{
			TransactionID:  ledgerRow.ID,
			WorkspaceID:    ws,
			Type:           ledgerRow.Type,
			Category:       ledgerRow.Category,
			Amount:         ledgerRow.Amount,
			RelatedOrderID: ledgerRow.RelatedOrderID,
			Date:           ledgerRow.Date,
		})
	}

	return ord, nil
}

// SetStatus overwrites the status unconditionally. Any status is reachable
// from any other; the shop corrects mistakes by just setting the right one.
// Customer notification is the caller's decision, not a side effect here.
func (s *orderService) SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrStatusInvalid
	}

	ord, err := s.repo.Orders.GetByID(ctx, ws, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.repo.Orders.UpdateStatus(ctx, ord.ID, status); err != nil {
		return nil, err
	}
	return s.repo.Orders.GetByID(ctx, ws, ord.ID)
}

func (s *orderService) CustomerDue(ctx context.Context, customerID uuid.UUID) (int64, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return 0, err
	}
	cust, err := s.repo.Customers.GetByID(ctx, ws, customerID)
	if err != nil {
		return 0, err
	}
	if cust == nil {
		return 0, ErrCustomerNotFound
	}
	return s.repo.Orders.SumDueByCustomer(ctx, ws, customerID)
}
