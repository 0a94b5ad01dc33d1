package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/repository"

	"github.com/google/uuid"
)

var ErrCustomerNameRequired = errors.New("customer name is required")

type CustomerInput struct {
	Name          string
	Phone         string
	Address       string
	DiscountType  *models.DiscountType
	DiscountValue *int64
}

// DirectoryService covers the customer directory and workspace settings: the
// collaborators the order aggregate snapshots from and the invoice renderer
// reads. CRUD only, no business rules beyond basic validation.
type DirectoryService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*models.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, in CustomerInput) (*models.Customer, error)

	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) (*models.Settings, error)
}

type directoryService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewDirectoryService(repo *repository.Repository) DirectoryService {
	return &directoryService{repo: repo, now: time.Now}
}

func (s *directoryService) CreateCustomer(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrCustomerNameRequired
	}

	now := s.now()
	c := &models.Customer{
		WorkspaceID:   ws,
		Name:          strings.TrimSpace(in.Name),
		Phone:         in.Phone,
		Address:       in.Address,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *directoryService) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.Customers.GetByID(ctx, ws, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

func (s *directoryService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Customers.List(ctx, ws)
}

// UpdateCustomer changes the directory record only. Orders keep the snapshot
// taken at their creation time.
func (s *directoryService) UpdateCustomer(ctx context.Context, id uuid.UUID, in CustomerInput) (*models.Customer, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.Customers.GetByID(ctx, ws, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrCustomerNameRequired
	}

	c.Name = strings.TrimSpace(in.Name)
	c.Phone = in.Phone
	c.Address = in.Address
	c.DiscountType = in.DiscountType
	c.DiscountValue = in.DiscountValue
	c.UpdatedAt = s.now()

	if err := s.repo.Customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *directoryService) GetSettings(ctx context.Context) (*models.Settings, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Settings.Get(ctx, ws)
}

func (s *directoryService) SaveSettings(ctx context.Context, in models.Settings) (*models.Settings, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	in.WorkspaceID = ws
	in.UpdatedAt = s.now()
	if err := s.repo.Settings.Upsert(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}
