package service

import "errors"

var (
	ErrWorkspaceRequired = errors.New("workspace not resolved")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEmptyItems        = errors.New("empty items")
	ErrAmountInvalid     = errors.New("amount must be > 0")
	ErrDiscountInvalid   = errors.New("discount must be >= 0")
	ErrStatusInvalid     = errors.New("unknown order status")
	ErrStageInvalid      = errors.New("unknown press stage")
	ErrPriorityInvalid   = errors.New("unknown priority")
)
