package ledger

import "github.com/theirongolddev/rebalance/internal/model"

var (
	// ErrNoMonthlyPayment is returned by Pay when the debt has no scheduled
	// monthly payment to apply.
	ErrNoMonthlyPayment = &model.ValidationError{Op: "pay debt", Reason: "set a monthly payment first"}

	// ErrEmptyAmount is returned when a transaction is saved without an amount.
	ErrEmptyAmount = &model.ValidationError{Op: "save transaction", Reason: "amount is required"}

	// ErrNegativeAmount is returned when a transaction amount is below zero.
	ErrNegativeAmount = &model.ValidationError{Op: "save transaction", Reason: "amount must be positive"}

	// ErrBadType is returned for a transaction type other than income/expense.
	ErrBadType = &model.ValidationError{Op: "save transaction", Reason: "type must be income or expense"}
)
