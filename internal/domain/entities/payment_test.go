package entities

import (
	"errors"
	"testing"
	"time"

	"payment_service/internal/domain/failure"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var refNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validEnvelope() PaymentEnvelope {
	return NewEnvelope(decimal.RequireFromString("50.00"), uuid.New(), "order-1", refNow)
}

func allVariants(env PaymentEnvelope) []PaymentMethod {
	return []PaymentMethod{
		CreditCardPayment{PaymentEnvelope: env, CardNumber: "4111111111111234", CardHolderName: "Maria Silva", CVV: "123"},
		DebitCardPayment{PaymentEnvelope: env, CardNumber: "5555444433332222", CardHolderName: "Joao Souza"},
		BoletoPayment{PaymentEnvelope: env, BoletoNumber: "23793381286000000", Beneficiario: "Loja", Pagador: "Ana", DueDate: refNow.Add(72 * time.Hour)},
		PixPayment{PaymentEnvelope: env, PixKey: "ana@example.com", PixKeyType: PixKeyTypeEmail},
	}
}

func TestNewEnvelope(t *testing.T) {
	env := validEnvelope()
	if env.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if env.Status != PaymentStatusPending {
		t.Fatalf("expected PENDING, got %s", env.Status)
	}
	if !env.CreatedAt.Equal(refNow) || !env.UpdatedAt.Equal(refNow) {
		t.Fatalf("unexpected timestamps: %+v", env)
	}
	if other := validEnvelope(); other.ID == env.ID {
		t.Fatal("ids must be unique")
	}
}

func TestValidate_AllVariantsValid(t *testing.T) {
	for _, p := range allVariants(validEnvelope()) {
		if err := Validate(p, refNow); err != nil {
			t.Fatalf("%s: unexpected error %v", p.Type(), err)
		}
	}
}

func TestValidate_CommonFieldsRejectedForEveryVariant(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PaymentEnvelope)
		msg    string
	}{
		{name: "zero amount", mutate: func(e *PaymentEnvelope) { e.Amount = decimal.Zero }, msg: "invalid payment amount"},
		{name: "negative amount", mutate: func(e *PaymentEnvelope) { e.Amount = decimal.RequireFromString("-1.50") }, msg: "invalid payment amount"},
		{name: "missing customer", mutate: func(e *PaymentEnvelope) { e.CustomerID = uuid.Nil }, msg: "customer id is required"},
		{name: "blank order", mutate: func(e *PaymentEnvelope) { e.OrderID = "   " }, msg: "order id is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := validEnvelope()
			tc.mutate(&env)
			for _, p := range allVariants(env) {
				err := Validate(p, refNow)
				if !errors.Is(err, failure.ErrValidation) {
					t.Fatalf("%s: expected validation error, got %v", p.Type(), err)
				}
				var fe *failure.Error
				if !errors.As(err, &fe) || fe.Message != tc.msg {
					t.Fatalf("%s: expected %q, got %v", p.Type(), tc.msg, err)
				}
			}
		})
	}
}

func TestValidate_CardRules(t *testing.T) {
	env := validEnvelope()

	cases := []struct {
		name    string
		payment PaymentMethod
		wantErr bool
	}{
		{name: "credit short number", payment: CreditCardPayment{PaymentEnvelope: env, CardNumber: "411111111111123", CardHolderName: "M", CVV: "123"}, wantErr: true},
		{name: "credit cvv too short", payment: CreditCardPayment{PaymentEnvelope: env, CardNumber: "4111111111111234", CardHolderName: "M", CVV: "12"}, wantErr: true},
		{name: "credit cvv too long", payment: CreditCardPayment{PaymentEnvelope: env, CardNumber: "4111111111111234", CardHolderName: "M", CVV: "1234"}, wantErr: true},
		{name: "credit blank holder", payment: CreditCardPayment{PaymentEnvelope: env, CardNumber: "4111111111111234", CardHolderName: " ", CVV: "123"}, wantErr: true},
		{name: "debit short number", payment: DebitCardPayment{PaymentEnvelope: env, CardNumber: "5555", CardHolderName: "J"}, wantErr: true},
		{name: "debit without cvv is fine", payment: DebitCardPayment{PaymentEnvelope: env, CardNumber: "5555444433332222", CardHolderName: "J"}, wantErr: false},
		{name: "debit blank holder", payment: DebitCardPayment{PaymentEnvelope: env, CardNumber: "5555444433332222"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.payment, refNow)
			if tc.wantErr && failure.KindOf(err) != failure.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_BoletoAndPixRules(t *testing.T) {
	env := validEnvelope()

	if err := Validate(BoletoPayment{PaymentEnvelope: env, BoletoNumber: "123456789", DueDate: refNow.Add(time.Hour)}, refNow); err == nil {
		t.Fatal("expected short boleto number to fail")
	}
	if err := Validate(BoletoPayment{PaymentEnvelope: env, BoletoNumber: "1234567890", DueDate: refNow}, refNow); err == nil {
		t.Fatal("expected due date equal to now to fail")
	}
	if err := Validate(BoletoPayment{PaymentEnvelope: env, BoletoNumber: "1234567890", DueDate: refNow.Add(-time.Minute)}, refNow); err == nil {
		t.Fatal("expected past due date to fail")
	}
	if err := Validate(PixPayment{PaymentEnvelope: env, PixKey: "  ", PixKeyType: PixKeyTypeCPF}, refNow); err == nil {
		t.Fatal("expected blank pix key to fail")
	}
}

func TestWithStatus_ReturnsCopy(t *testing.T) {
	orig := PixPayment{PaymentEnvelope: validEnvelope(), PixKey: "k", PixKeyType: PixKeyTypeRandomID}
	later := refNow.Add(time.Minute)

	updated := orig.WithStatus(PaymentStatusCancelled, later)

	if orig.Status != PaymentStatusPending {
		t.Fatalf("receiver was mutated: %s", orig.Status)
	}
	got, ok := updated.(PixPayment)
	if !ok {
		t.Fatalf("expected PixPayment, got %T", updated)
	}
	if got.Status != PaymentStatusCancelled || !got.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected status/time: %+v", got.PaymentEnvelope)
	}
	got.Status, got.UpdatedAt = orig.Status, orig.UpdatedAt
	if got != orig {
		t.Fatalf("fields other than status changed: %+v vs %+v", got, orig)
	}
}

func TestRedacted(t *testing.T) {
	cc := CreditCardPayment{PaymentEnvelope: validEnvelope(), CardNumber: "4111111111111234", CardHolderName: "M", CVV: "999"}

	red := Redacted(cc).(CreditCardPayment)
	if red.CardNumber != "**** **** **** 1234" {
		t.Fatalf("unexpected mask: %q", red.CardNumber)
	}
	if red.CVV != "" {
		t.Fatal("cvv must be dropped")
	}
	if cc.CVV != "999" {
		t.Fatal("original must stay untouched")
	}

	dc := DebitCardPayment{PaymentEnvelope: validEnvelope(), CardNumber: "5555444433332222"}
	if got := Redacted(dc).(DebitCardPayment).CardNumber; got != "**** **** **** 2222" {
		t.Fatalf("unexpected debit mask: %q", got)
	}
}

func TestMaskCardNumber(t *testing.T) {
	cases := map[string]string{
		"4111111111111234":    "**** **** **** 1234",
		"123":                 "",
		"":                    "",
		"**** **** **** 1234": "**** **** **** 1234",
	}
	for in, want := range cases {
		if got := MaskCardNumber(in); got != want {
			t.Errorf("MaskCardNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
