package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType tags the concrete PaymentMethod variant.
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard  PaymentType = "DEBIT_CARD"
	PaymentTypeBoleto     PaymentType = "BOLETO"
	PaymentTypePix        PaymentType = "PIX"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypeBoleto, PaymentTypePix:
		return true
	}
	return false
}

// PixKeyType is the kind of key identifying a PIX recipient.
type PixKeyType string

const (
	PixKeyTypeCPF      PixKeyType = "CPF"
	PixKeyTypeCNPJ     PixKeyType = "CNPJ"
	PixKeyTypeEmail    PixKeyType = "EMAIL"
	PixKeyTypePhone    PixKeyType = "TELEFONE"
	PixKeyTypeRandomID PixKeyType = "CHAVE_ALEATORIA"
)

func (t PixKeyType) IsValid() bool {
	switch t {
	case PixKeyTypeCPF, PixKeyTypeCNPJ, PixKeyTypeEmail, PixKeyTypePhone, PixKeyTypeRandomID:
		return true
	}
	return false
}

// PaymentEnvelope holds the fields shared by every payment variant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id
//   - GSI customer_id-index: customer_id
type PaymentEnvelope struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Status     PaymentStatus
	CustomerID uuid.UUID
	OrderID    string
}

func (e PaymentEnvelope) Envelope() PaymentEnvelope { return e }

// PaymentMethod is the closed set of payment variants. Variants are value
// types: WithStatus returns a modified copy and never mutates the receiver.
//
// Consumers switch on the concrete type; the gochecksumtype linter enforces
// that every switch lists all four variants.
//
//sumtype:decl
type PaymentMethod interface {
	Envelope() PaymentEnvelope
	Type() PaymentType
	WithStatus(status PaymentStatus, at time.Time) PaymentMethod
	sealedPaymentMethod()
}

type CreditCardPayment struct {
	PaymentEnvelope
	CardNumber     string
	CardHolderName string
	// CVV is only carried between request and validation; it is never
	// persisted, cached or published.
	CVV string
}

type DebitCardPayment struct {
	PaymentEnvelope
	CardNumber     string
	CardHolderName string
}

type BoletoPayment struct {
	PaymentEnvelope
	BoletoNumber string
	Beneficiario string
	Pagador      string
	DueDate      time.Time
}

type PixPayment struct {
	PaymentEnvelope
	PixKey     string
	PixKeyType PixKeyType
}

func (CreditCardPayment) Type() PaymentType { return PaymentTypeCreditCard }
func (DebitCardPayment) Type() PaymentType  { return PaymentTypeDebitCard }
func (BoletoPayment) Type() PaymentType     { return PaymentTypeBoleto }
func (PixPayment) Type() PaymentType        { return PaymentTypePix }

func (p CreditCardPayment) WithStatus(status PaymentStatus, at time.Time) PaymentMethod {
	p.Status, p.UpdatedAt = status, at
	return p
}

func (p DebitCardPayment) WithStatus(status PaymentStatus, at time.Time) PaymentMethod {
	p.Status, p.UpdatedAt = status, at
	return p
}

func (p BoletoPayment) WithStatus(status PaymentStatus, at time.Time) PaymentMethod {
	p.Status, p.UpdatedAt = status, at
	return p
}

func (p PixPayment) WithStatus(status PaymentStatus, at time.Time) PaymentMethod {
	p.Status, p.UpdatedAt = status, at
	return p
}

func (CreditCardPayment) sealedPaymentMethod() {}
func (DebitCardPayment) sealedPaymentMethod()  {}
func (BoletoPayment) sealedPaymentMethod()     {}
func (PixPayment) sealedPaymentMethod()        {}

// NewEnvelope starts a payment in PENDING with a fresh id.
func NewEnvelope(amount decimal.Decimal, customerID uuid.UUID, orderID string, now time.Time) PaymentEnvelope {
	return PaymentEnvelope{
		ID:         uuid.New(),
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
		Status:     PaymentStatusPending,
		CustomerID: customerID,
		OrderID:    orderID,
	}
}

// Redacted returns the form of p that may leave the process: card numbers
// masked and the CVV dropped. Other variants are returned unchanged.
func Redacted(p PaymentMethod) PaymentMethod {
	switch v := p.(type) {
	case CreditCardPayment:
		v.CardNumber = MaskCardNumber(v.CardNumber)
		v.CVV = ""
		return v
	case DebitCardPayment:
		v.CardNumber = MaskCardNumber(v.CardNumber)
		return v
	case BoletoPayment:
		return v
	case PixPayment:
		return v
	}
	return p
}
