package repository

import "gorm.io/gorm"

type Repository struct {
	DB           *gorm.DB
	Orders       OrderRepo
	OrderItems   OrderItemRepo
	Payments     PaymentRepo
	Customers    CustomerRepo
	Transactions TransactionRepo
	Settings     SettingsRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:           db,
		Orders:       NewOrderRepo(db),
		OrderItems:   NewOrderItemRepo(db),
		Payments:     NewPaymentRepo(db),
		Customers:    NewCustomerRepo(db),
		Transactions: NewTransactionRepo(db),
		Settings:     NewSettingsRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
