package repository

import (
	"context"
	"sync"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PaymentMemoryRepository is a process-local repository for development and
// tests. It stores the redacted form, like the durable repositories.
type PaymentMemoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]entities.PaymentMethod
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{items: make(map[uuid.UUID]entities.PaymentMethod)}
}

func (r *PaymentMemoryRepository) Save(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := entities.Redacted(p)

	r.mu.Lock()
	r.items[stored.Envelope().ID] = stored
	r.mu.Unlock()
	return stored, nil
}

func (r *PaymentMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *PaymentMemoryRepository) FindEligibleForCancel(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	return r.findEligible(ctx, id)
}

func (r *PaymentMemoryRepository) FindEligibleForRefund(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	return r.findEligible(ctx, id)
}

func (r *PaymentMemoryRepository) findEligible(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil || !isEligibleForReversal(p) {
		return nil, err
	}
	return p, nil
}

func (r *PaymentMemoryRepository) FindByOrderID(ctx context.Context, orderID string) ([]entities.PaymentMethod, error) {
	return r.filter(ctx, func(e entities.PaymentEnvelope) bool { return e.OrderID == orderID })
}

func (r *PaymentMemoryRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entities.PaymentMethod, error) {
	return r.filter(ctx, func(e entities.PaymentEnvelope) bool { return e.CustomerID == customerID })
}

func (r *PaymentMemoryRepository) filter(ctx context.Context, keep func(entities.PaymentEnvelope) bool) ([]entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]entities.PaymentMethod, 0)
	for _, p := range r.items {
		if keep(p.Envelope()) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()
	sortOldestFirst(out)
	return out, nil
}

func (r *PaymentMemoryRepository) CountAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *PaymentMemoryRepository) FindPage(ctx context.Context, size, offset int) ([]entities.PaymentMethod, error) {
	all, err := r.filter(ctx, func(entities.PaymentEnvelope) bool { return true })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(all)
	return pageOf(all, size, offset), nil
}
