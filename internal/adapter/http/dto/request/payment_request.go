package request

import (
	"errors"
	"strings"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidDueDate    = errors.New("invalid due date")
)

// dueDateLayouts accepts RFC 3339 and zone-less local timestamps, read as UTC.
var dueDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ProcessPaymentRequest is the body of POST /payments. paymentType selects
// which of the variant fields are read.
type ProcessPaymentRequest struct {
	PaymentType string          `json:"paymentType" binding:"required,oneof=CREDIT_CARD DEBIT_CARD BOLETO PIX"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"50.00"`
	CustomerID  string          `json:"customerId" binding:"required,uuid"`
	OrderID     string          `json:"orderId" binding:"required"`

	// CREDIT_CARD and DEBIT_CARD
	CardNumber     string `json:"cardNumber"`
	CardHolderName string `json:"cardHolderName"`
	CVV            string `json:"cvv"`

	// BOLETO
	BoletoNumber string `json:"boletoNumber"`
	Beneficiario string `json:"beneficiario"`
	Pagador      string `json:"pagador"`
	DueDate      string `json:"dueDate"`

	// PIX
	PixKey     string `json:"pixKey"`
	PixKeyType string `json:"pixKeyType"`
}

func (r ProcessPaymentRequest) ToInput() (usecase.ProcessPaymentInput, error) {
	customerID, err := uuid.Parse(strings.TrimSpace(r.CustomerID))
	if err != nil {
		return usecase.ProcessPaymentInput{}, ErrInvalidCustomerID
	}

	in := usecase.ProcessPaymentInput{
		PaymentType:    entities.PaymentType(strings.ToUpper(strings.TrimSpace(r.PaymentType))),
		Amount:         r.Amount,
		CustomerID:     customerID,
		OrderID:        strings.TrimSpace(r.OrderID),
		CardNumber:     strings.ReplaceAll(r.CardNumber, " ", ""),
		CardHolderName: r.CardHolderName,
		CVV:            r.CVV,
		BoletoNumber:   r.BoletoNumber,
		Beneficiario:   r.Beneficiario,
		Pagador:        r.Pagador,
		PixKey:         r.PixKey,
		PixKeyType:     entities.PixKeyType(strings.ToUpper(strings.TrimSpace(r.PixKeyType))),
	}

	if in.PaymentType == entities.PaymentTypeBoleto {
		due, err := parseDueDate(r.DueDate)
		if err != nil {
			return usecase.ProcessPaymentInput{}, err
		}
		in.DueDate = due
	}
	return in, nil
}

func parseDueDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDueDate
}
