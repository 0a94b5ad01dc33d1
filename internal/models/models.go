package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityNormal Priority = "NORMAL"
	PriorityLow    Priority = "LOW"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// PressStage tracks where a press job sits in production. An order without a
// stage is treated as PLATE. Transitions are deliberately unconstrained so
// mistaken assignments can be corrected.
type PressStage string

const (
	StagePlate    PressStage = "PLATE"
	StagePrint    PressStage = "PRINT"
	StageBind     PressStage = "BIND"
	StageComplete PressStage = "COMPLETE"
)

func (s PressStage) Valid() bool {
	switch s {
	case StagePlate, StagePrint, StageBind, StageComplete:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Order is the aggregate root. Monetary fields are whole BDT; all derived
// amounts (sub_total, grand_total, paid_amount, due_amount) are recomputed
// from items and payments on every mutation path; the stored columns exist
// for querying, never as an independent source of truth.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_orders_workspace_number" json:"workspace_id"`
	Number      int       `gorm:"not null;uniqueIndex:ux_orders_workspace_number" json:"number"`

	// Customer snapshot taken at creation time; immutable afterwards even if
	// the directory record changes.
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName    string    `gorm:"type:text;not null" json:"customer_name"`
	CustomerPhone   string    `gorm:"type:text" json:"customer_phone"`
	CustomerAddress string    `gorm:"type:text" json:"customer_address"`

	SubTotal   int64 `gorm:"not null;default:0" json:"sub_total"`
	Discount   int64 `gorm:"not null;default:0" json:"discount"`
	GrandTotal int64 `gorm:"not null;default:0" json:"grand_total"`
	PaidAmount int64 `gorm:"not null;default:0" json:"paid_amount"`
	// DueAmount may go negative: overpayment is a credit owed to the customer.
	DueAmount int64 `gorm:"not null;default:0" json:"due_amount"`

	Status   OrderStatus `gorm:"type:text;not null;default:'PENDING';index" json:"status"`
	Priority Priority    `gorm:"type:text;not null;default:'NORMAL'" json:"priority"`

	OrderDate    time.Time  `gorm:"not null;default:now();index" json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`

	PressStage     *PressStage `gorm:"type:text" json:"press_stage,omitempty"`
	PressStartTime *time.Time  `json:"press_start_time,omitempty"`

	Note *string `gorm:"type:text" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Items    []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payments []PaymentRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one priced line. Area-based categories carry width/height/sqft,
// the "Press" category carries paper/print-side/color-mode, everything else
// carries neither. Total is derived by the pricing package.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Position int       `gorm:"not null;default:0" json:"position"` // insertion order = print order

	Name     string  `gorm:"type:text;not null" json:"name"`
	Category string  `gorm:"type:text;not null" json:"category"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Rate     float64 `gorm:"not null" json:"rate"`
	Total    int64   `gorm:"not null" json:"total"`

	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	SqFt   *float64 `json:"sq_ft,omitempty"`

	PaperType *string `gorm:"type:text" json:"paper_type,omitempty"`
	PrintSide *string `gorm:"type:text" json:"print_side,omitempty"`
	ColorMode *string `gorm:"type:text" json:"color_mode,omitempty"`

	DesignLink *string `gorm:"type:text" json:"design_link,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

// PaymentRecord is append-only; paid_amount on the order is always the sum of
// these rows.
type PaymentRecord struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Date    time.Time `gorm:"not null;default:now()" json:"date"`
	Amount  int64     `gorm:"not null" json:"amount"`
	Note    string    `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (PaymentRecord) TableName() string { return "payment_records" }

type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`

	Name    string `gorm:"type:text;not null" json:"name"`
	Phone   string `gorm:"type:text" json:"phone"`
	Address string `gorm:"type:text" json:"address"`

	DiscountType  *DiscountType `gorm:"type:text" json:"discount_type,omitempty"`
	DiscountValue *int64        `json:"discount_value,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// Transaction is a ledger entry. Order payments create INCOME rows with
// category "Order Payment" and the order id attached.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`

	Date        time.Time       `gorm:"not null;default:now();index" json:"date"`
	Type        TransactionType `gorm:"type:text;not null" json:"type"`
	Category    string          `gorm:"type:text;not null" json:"category"`
	Amount      int64           `gorm:"not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`

	RelatedOrderID *uuid.UUID `gorm:"type:uuid;index" json:"related_order_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

// Settings is the per-workspace branding/contact block the invoice renderer
// and messaging composer consume as-is.
type Settings struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"workspace_id"`

	SoftwareName   string `gorm:"type:text" json:"software_name"`
	LogoText       string `gorm:"type:text" json:"logo_text"`
	LogoURL        string `gorm:"type:text" json:"logo_url"`
	ThemeColor     string `gorm:"type:text" json:"theme_color"`
	InvoiceHeader  string `gorm:"type:text" json:"invoice_header"`
	ContactPhone   string `gorm:"type:text" json:"contact_phone"`
	ContactWebsite string `gorm:"type:text" json:"contact_website"`

	// Status-keyed message presets for the WhatsApp composer.
	MessageTemplates map[string]string `gorm:"serializer:json" json:"message_templates"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Settings) TableName() string { return "settings" }
