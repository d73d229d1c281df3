package entities

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
)

var (
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	ErrInvalidOTP          = fmt.Errorf("invalid otp: %w", ErrPreconditionFailed)
	ErrOTPAttemptsExceeded = fmt.Errorf("too many otp attempts: %w", ErrPreconditionFailed)
	ErrPartnerBusy         = fmt.Errorf("partner already has an active order: %w", ErrPreconditionFailed)

	ErrOrderExists = errors.New("order already exists")
)

// NoMatchAvailable: никогда не возвращаются вызывающему как ошибка,
// заказ остается в деградированном состоянии, а наружу уходит warning.
var (
	ErrNoSellerAvailable  = errors.New("no seller available")
	ErrNoPartnerAvailable = errors.New("no delivery partner available")
)
