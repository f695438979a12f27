// Package serialization holds the single external representation of a
// payment. Storage, cache and events all go through Document, so a payment
// never leaves the process with an unmasked card number or a CVV.
package serialization

import (
	"encoding/json"
	"fmt"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Document is the flattened payment. Variant fields are empty for the
// variants that do not have them.
type Document struct {
	ID          string `json:"id" dynamodbav:"id"`
	PaymentType string `json:"paymentType" dynamodbav:"payment_type"`
	Amount      string `json:"amount" dynamodbav:"amount"`
	Status      string `json:"status" dynamodbav:"status"`
	CustomerID  string `json:"customerId" dynamodbav:"customer_id"`
	OrderID     string `json:"orderId" dynamodbav:"order_id"`
	CreatedAt   string `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   string `json:"updatedAt" dynamodbav:"updated_at"`

	CardNumber     string `json:"cardNumber,omitempty" dynamodbav:"card_number,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty" dynamodbav:"card_holder_name,omitempty"`

	BoletoNumber string `json:"boletoNumber,omitempty" dynamodbav:"boleto_number,omitempty"`
	Beneficiario string `json:"beneficiario,omitempty" dynamodbav:"beneficiario,omitempty"`
	Pagador      string `json:"pagador,omitempty" dynamodbav:"pagador,omitempty"`
	DueDate      string `json:"dueDate,omitempty" dynamodbav:"due_date,omitempty"`

	PixKey     string `json:"pixKey,omitempty" dynamodbav:"pix_key,omitempty"`
	PixKeyType string `json:"pixKeyType,omitempty" dynamodbav:"pix_key_type,omitempty"`
}

// ToDocument redacts p and flattens it.
func ToDocument(p entities.PaymentMethod) Document {
	p = entities.Redacted(p)
	env := p.Envelope()
	d := Document{
		ID:          env.ID.String(),
		PaymentType: string(p.Type()),
		Amount:      env.Amount.String(),
		Status:      string(env.Status),
		CustomerID:  env.CustomerID.String(),
		OrderID:     env.OrderID,
		CreatedAt:   formatTime(env.CreatedAt),
		UpdatedAt:   formatTime(env.UpdatedAt),
	}

	switch v := p.(type) {
	case entities.CreditCardPayment:
		d.CardNumber = v.CardNumber
		d.CardHolderName = v.CardHolderName
	case entities.DebitCardPayment:
		d.CardNumber = v.CardNumber
		d.CardHolderName = v.CardHolderName
	case entities.BoletoPayment:
		d.BoletoNumber = v.BoletoNumber
		d.Beneficiario = v.Beneficiario
		d.Pagador = v.Pagador
		d.DueDate = formatTime(v.DueDate)
	case entities.PixPayment:
		d.PixKey = v.PixKey
		d.PixKeyType = string(v.PixKeyType)
	}
	return d
}

// FromDocument rebuilds the variant named by PaymentType. Any malformed
// field is a conversion failure.
func FromDocument(d Document) (entities.PaymentMethod, error) {
	env, err := d.envelope()
	if err != nil {
		return nil, err
	}

	switch entities.PaymentType(d.PaymentType) {
	case entities.PaymentTypeCreditCard:
		return entities.CreditCardPayment{PaymentEnvelope: env, CardNumber: d.CardNumber, CardHolderName: d.CardHolderName}, nil
	case entities.PaymentTypeDebitCard:
		return entities.DebitCardPayment{PaymentEnvelope: env, CardNumber: d.CardNumber, CardHolderName: d.CardHolderName}, nil
	case entities.PaymentTypeBoleto:
		due, err := parseTime("dueDate", d.DueDate)
		if err != nil {
			return nil, err
		}
		return entities.BoletoPayment{PaymentEnvelope: env, BoletoNumber: d.BoletoNumber, Beneficiario: d.Beneficiario, Pagador: d.Pagador, DueDate: due}, nil
	case entities.PaymentTypePix:
		return entities.PixPayment{PaymentEnvelope: env, PixKey: d.PixKey, PixKeyType: entities.PixKeyType(d.PixKeyType)}, nil
	}
	return nil, failure.Conversion(fmt.Sprintf("unknown payment type %q", d.PaymentType), nil)
}

func (d Document) envelope() (entities.PaymentEnvelope, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entities.PaymentEnvelope{}, failure.Conversion("invalid id", err)
	}
	customerID, err := uuid.Parse(d.CustomerID)
	if err != nil {
		return entities.PaymentEnvelope{}, failure.Conversion("invalid customerId", err)
	}
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return entities.PaymentEnvelope{}, failure.Conversion("invalid amount", err)
	}
	status := entities.PaymentStatus(d.Status)
	if !status.IsValid() {
		return entities.PaymentEnvelope{}, failure.Conversion(fmt.Sprintf("invalid status %q", d.Status), nil)
	}
	createdAt, err := parseTime("createdAt", d.CreatedAt)
	if err != nil {
		return entities.PaymentEnvelope{}, err
	}
	updatedAt := createdAt
	if d.UpdatedAt != "" {
		if updatedAt, err = parseTime("updatedAt", d.UpdatedAt); err != nil {
			return entities.PaymentEnvelope{}, err
		}
	}

	return entities.PaymentEnvelope{
		ID:         id,
		Amount:     amount,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		Status:     status,
		CustomerID: customerID,
		OrderID:    d.OrderID,
	}, nil
}

// Marshal encodes the redacted JSON form of p.
func Marshal(p entities.PaymentMethod) ([]byte, error) {
	b, err := json.Marshal(ToDocument(p))
	if err != nil {
		return nil, failure.Conversion("encode payment", err)
	}
	return b, nil
}

func Unmarshal(b []byte) (entities.PaymentMethod, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, failure.Conversion("decode payment", err)
	}
	return FromDocument(d)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, failure.Conversion("invalid "+field, err)
	}
	return t, nil
}
