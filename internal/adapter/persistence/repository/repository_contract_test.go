package repository

import (
	"context"
	"testing"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func newPix(customerID uuid.UUID, orderID string, status entities.PaymentStatus, createdAt time.Time) entities.PixPayment {
	env := entities.NewEnvelope(decimal.RequireFromString("50.00"), customerID, orderID, createdAt)
	env.Status = status
	return entities.PixPayment{PaymentEnvelope: env, PixKey: "key-" + orderID, PixKeyType: entities.PixKeyTypeRandomID}
}

// runRepositoryContract checks behavior every IPaymentRepository must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) interfaces.IPaymentRepository) {
	ctx := context.Background()

	t.Run("save masks card data", func(t *testing.T) {
		repo := newRepo(t)
		env := entities.NewEnvelope(decimal.RequireFromString("10.00"), uuid.New(), "order-cc", baseTime)
		cc := entities.CreditCardPayment{PaymentEnvelope: env, CardNumber: "4111111111111234", CardHolderName: "Ana", CVV: "123"}

		_, err := repo.Save(ctx, cc)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, env.ID)
		require.NoError(t, err)
		stored, ok := got.(entities.CreditCardPayment)
		require.True(t, ok, "got %T", got)
		assert.Equal(t, "**** **** **** 1234", stored.CardNumber)
		assert.Empty(t, stored.CVV)
		assert.Equal(t, "Ana", stored.CardHolderName)
	})

	t.Run("missing id is nil without error", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("eligible finders filter by status", func(t *testing.T) {
		repo := newRepo(t)
		cases := map[entities.PaymentStatus]bool{
			entities.PaymentStatusPending:    false,
			entities.PaymentStatusProcessing: true,
			entities.PaymentStatusCompleted:  true,
			entities.PaymentStatusFailed:     false,
			entities.PaymentStatusCancelled:  false,
			entities.PaymentStatusRefunded:   false,
		}
		for status, eligible := range cases {
			p := newPix(uuid.New(), "order-"+string(status), status, baseTime)
			_, err := repo.Save(ctx, p)
			require.NoError(t, err)

			forCancel, err := repo.FindEligibleForCancel(ctx, p.ID)
			require.NoError(t, err)
			forRefund, err := repo.FindEligibleForRefund(ctx, p.ID)
			require.NoError(t, err)

			assert.Equal(t, eligible, forCancel != nil, "cancel %s", status)
			assert.Equal(t, eligible, forRefund != nil, "refund %s", status)
		}
	})

	t.Run("save overwrites status and keeps other fields", func(t *testing.T) {
		repo := newRepo(t)
		p := newPix(uuid.New(), "order-upd", entities.PaymentStatusProcessing, baseTime)
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)

		_, err = repo.Save(ctx, p.WithStatus(entities.PaymentStatusCancelled, baseTime.Add(time.Minute)))
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		pix := got.(entities.PixPayment)
		assert.Equal(t, entities.PaymentStatusCancelled, pix.Status)
		assert.Equal(t, p.PixKey, pix.PixKey)
		assert.True(t, p.Amount.Equal(pix.Amount))
		assert.True(t, p.CreatedAt.Equal(pix.CreatedAt))

		n, err := repo.CountAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("find by order and customer", func(t *testing.T) {
		repo := newRepo(t)
		customer := uuid.New()
		a := newPix(customer, "order-a", entities.PaymentStatusProcessing, baseTime)
		b := newPix(customer, "order-b", entities.PaymentStatusCompleted, baseTime.Add(time.Second))
		c := newPix(uuid.New(), "order-a", entities.PaymentStatusProcessing, baseTime.Add(2*time.Second))
		for _, p := range []entities.PaymentMethod{a, b, c} {
			_, err := repo.Save(ctx, p)
			require.NoError(t, err)
		}

		byOrder, err := repo.FindByOrderID(ctx, "order-a")
		require.NoError(t, err)
		require.Len(t, byOrder, 2)
		assert.Equal(t, a.ID, byOrder[0].Envelope().ID)
		assert.Equal(t, c.ID, byOrder[1].Envelope().ID)

		byCustomer, err := repo.FindByCustomerID(ctx, customer)
		require.NoError(t, err)
		require.Len(t, byCustomer, 2)

		none, err := repo.FindByOrderID(ctx, "order-zzz")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("pages newest first", func(t *testing.T) {
		repo := newRepo(t)
		ids := make([]uuid.UUID, 5)
		for i := range ids {
			p := newPix(uuid.New(), "order-p", entities.PaymentStatusProcessing, baseTime.Add(time.Duration(i)*time.Second+time.Duration(i)*time.Millisecond))
			ids[i] = p.ID
			_, err := repo.Save(ctx, p)
			require.NoError(t, err)
		}

		n, err := repo.CountAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)

		first, err := repo.FindPage(ctx, 2, 0)
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, ids[4], first[0].Envelope().ID)
		assert.Equal(t, ids[3], first[1].Envelope().ID)

		last, err := repo.FindPage(ctx, 2, 4)
		require.NoError(t, err)
		require.Len(t, last, 1)
		assert.Equal(t, ids[0], last[0].Envelope().ID)

		beyond, err := repo.FindPage(ctx, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})
}

func TestPaymentMemoryRepository(t *testing.T) {
	runRepositoryContract(t, func(*testing.T) interfaces.IPaymentRepository {
		return NewPaymentMemoryRepository()
	})
}
