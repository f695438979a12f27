package response

import (
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentResponse is the flattened view of any payment variant. Card numbers
// are always masked and the CVV is never returned.
type PaymentResponse struct {
	ID          string          `json:"id"`
	PaymentType string          `json:"paymentType"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
	Status      string          `json:"status"`
	CustomerID  string          `json:"customerId"`
	OrderID     string          `json:"orderId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	CardNumber     string `json:"cardNumber,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`

	BoletoNumber string     `json:"boletoNumber,omitempty"`
	Beneficiario string     `json:"beneficiario,omitempty"`
	Pagador      string     `json:"pagador,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`

	PixKey     string `json:"pixKey,omitempty"`
	PixKeyType string `json:"pixKeyType,omitempty"`
}

type ProcessPaymentResponse struct {
	PaymentResponse
	Warnings []string `json:"warnings,omitempty"`
}

type PageInfo struct {
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

type PageResponse struct {
	Content  []PaymentResponse `json:"content"`
	PageInfo PageInfo          `json:"pageInfo"`
}

func FromPayment(p entities.PaymentMethod) PaymentResponse {
	p = entities.Redacted(p)
	env := p.Envelope()
	res := PaymentResponse{
		ID:          env.ID.String(),
		PaymentType: string(p.Type()),
		Amount:      env.Amount,
		Status:      string(env.Status),
		CustomerID:  env.CustomerID.String(),
		OrderID:     env.OrderID,
		CreatedAt:   env.CreatedAt,
		UpdatedAt:   env.UpdatedAt,
	}

	switch v := p.(type) {
	case entities.CreditCardPayment:
		res.CardNumber, res.CardHolderName = v.CardNumber, v.CardHolderName
	case entities.DebitCardPayment:
		res.CardNumber, res.CardHolderName = v.CardNumber, v.CardHolderName
	case entities.BoletoPayment:
		due := v.DueDate
		res.BoletoNumber, res.Beneficiario, res.Pagador, res.DueDate = v.BoletoNumber, v.Beneficiario, v.Pagador, &due
	case entities.PixPayment:
		res.PixKey, res.PixKeyType = v.PixKey, string(v.PixKeyType)
	}
	return res
}

func FromPayments(items []entities.PaymentMethod) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPayment(p))
	}
	return out
}

func FromProcessResult(r usecase.ProcessResult) ProcessPaymentResponse {
	return ProcessPaymentResponse{PaymentResponse: FromPayment(r.Payment), Warnings: r.Warnings}
}

func FromPage(p usecase.Page) PageResponse {
	return PageResponse{
		Content: FromPayments(p.Items),
		PageInfo: PageInfo{
			PageNumber:    p.PageNumber,
			PageSize:      p.PageSize,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages,
			First:         p.First,
			Last:          p.Last,
			HasNext:       p.HasNext,
			HasPrevious:   p.HasPrevious,
		},
	}
}
