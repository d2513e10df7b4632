package domain

import "errors"

var (
	// ErrZeroAmount is returned when depositing a non positive amount.
	ErrZeroAmount = errors.New("deposit amount must be greater than zero")
	// ErrInvalidAccount is returned when the owner or caller account is empty.
	ErrInvalidAccount = errors.New("account must not be empty")
	// ErrInsufficientAllowance is returned by the token gateway when the owner
	// did not authorize the escrow to pull the requested amount.
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	// ErrInsufficientBalance is returned by the token gateway when the owner's
	// balance does not cover the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidDepositID is returned for unknown or malformed deposit ids.
	ErrInvalidDepositID = errors.New("invalid deposit id")
	// ErrUnauthorized is returned when the caller is not the deposit owner.
	ErrUnauthorized = errors.New("caller is not the owner of the deposit")
	// ErrNotMatured is returned when withdrawing a deposit still within its
	// lock period.
	ErrNotMatured = errors.New("deposit lock period not elapsed yet")
	// ErrAlreadyWithdrawn is returned when withdrawing a deposit twice.
	ErrAlreadyWithdrawn = errors.New("deposit already withdrawn")
	// ErrNoWithdrawableDeposits is returned by bulk withdrawal when the owner
	// has no matured deposits left.
	ErrNoWithdrawableDeposits = errors.New("no withdrawable deposits")
	// ErrTransferFailed is returned when the token gateway fails to move funds
	// out of the escrow.
	ErrTransferFailed = errors.New("token transfer failed")
	// ErrAmountOverflow is returned when the sum of the amounts of a set of
	// deposits does not fit in a uint64.
	ErrAmountOverflow = errors.New("amount overflows uint64")
)
