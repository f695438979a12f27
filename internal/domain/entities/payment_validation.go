package entities

import (
	"strings"
	"time"

	"payment_service/internal/domain/failure"

	"github.com/google/uuid"
)

const (
	MinCardNumberLength   = 16
	CVVLength             = 3
	MinBoletoNumberLength = 10
)

// Validate checks the variant-specific fields of p and then the common
// envelope fields. now is the reference time for boleto due dates.
func Validate(p PaymentMethod, now time.Time) error {
	var err error
	switch v := p.(type) {
	case CreditCardPayment:
		err = validateCreditCard(v)
	case DebitCardPayment:
		err = validateDebitCard(v)
	case BoletoPayment:
		err = validateBoleto(v, now)
	case PixPayment:
		err = validatePix(v)
	default:
		return failure.Validationf("unsupported payment method %T", p)
	}
	if err != nil {
		return err
	}
	return validateEnvelope(p.Envelope())
}

func validateCreditCard(p CreditCardPayment) error {
	if len(p.CardNumber) < MinCardNumberLength {
		return failure.Validation("invalid credit card number")
	}
	if len(p.CVV) != CVVLength {
		return failure.Validation("invalid cvv")
	}
	if isBlank(p.CardHolderName) {
		return failure.Validation("invalid card holder name")
	}
	return nil
}

func validateDebitCard(p DebitCardPayment) error {
	if len(p.CardNumber) < MinCardNumberLength {
		return failure.Validation("invalid debit card number")
	}
	if isBlank(p.CardHolderName) {
		return failure.Validation("invalid card holder name")
	}
	return nil
}

func validateBoleto(p BoletoPayment, now time.Time) error {
	if len(p.BoletoNumber) < MinBoletoNumberLength {
		return failure.Validation("invalid boleto number")
	}
	if !p.DueDate.After(now) {
		return failure.Validation("invalid due date")
	}
	return nil
}

func validatePix(p PixPayment) error {
	if isBlank(p.PixKey) {
		return failure.Validation("invalid pix key")
	}
	return nil
}

func validateEnvelope(e PaymentEnvelope) error {
	if !e.Amount.IsPositive() {
		return failure.Validation("invalid payment amount")
	}
	if e.CustomerID == uuid.Nil {
		return failure.Validation("customer id is required")
	}
	if isBlank(e.OrderID) {
		return failure.Validation("order id is required")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MaskCardNumber keeps only the last four digits of a card number.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return ""
	}
	return "**** **** **** " + cardNumber[len(cardNumber)-4:]
}
