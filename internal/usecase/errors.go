package usecase

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func NewInvalidPaymentOption(option string) *DomainError {
	return &DomainError{
		Code:    "INVALID_PAYMENT_OPTION",
		Message: fmt.Sprintf("payment_option must be full, deposit or both (got %q)", option),
	}
}

func NewMissingDepositAmount() *DomainError {
	return &DomainError{
		Code:    "MISSING_DEPOSIT_AMOUNT",
		Message: "deposit_amount (or deposit_percentage) is required for this payment option",
	}
}

// PaymentGatewayError names which checkout leg failed. Sessions are not
// cancellable, so a partial failure on "both" leaves the successful leg
// alive; Links carries its URL so the caller retries only the failed
// leg.
type PaymentGatewayError struct {
	Leg   string // "full" or "deposit"
	Links PaymentLinks
	Err   error
}

func (e *PaymentGatewayError) Error() string {
	return fmt.Sprintf("payment gateway failed on %s leg: %v", e.Leg, e.Err)
}

func (e *PaymentGatewayError) Unwrap() error {
	return e.Err
}
