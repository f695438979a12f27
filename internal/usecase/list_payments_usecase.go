package usecase

import (
	"context"
	"math"
	"strings"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps page*size within int for every allowed size.
	MaxPage = math.MaxInt / MaxPageSize
)

// Page is a zero-based page of payments, newest first.
type Page struct {
	Items         []entities.PaymentMethod
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
	HasNext       bool
	HasPrevious   bool
}

type IListPaymentsUseCase interface {
	FindPayments(ctx context.Context, page, size int) Page
	GetByOrderID(ctx context.Context, orderID string) ([]entities.PaymentMethod, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]entities.PaymentMethod, error)
}

type ListPaymentsUseCase struct {
	repo interfaces.IPaymentRepository
	log  *zap.Logger
}

var _ IListPaymentsUseCase = (*ListPaymentsUseCase)(nil)

func NewListPaymentsUseCase(repo interfaces.IPaymentRepository, log *zap.Logger) *ListPaymentsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ListPaymentsUseCase{repo: repo, log: log}
}

// FindPayments clamps page and size to safe bounds. Repository failures are
// logged and yield an empty page.
func (u *ListPaymentsUseCase) FindPayments(ctx context.Context, page, size int) Page {
	page, size = safePage(page), safeSize(size)
	log := u.log.With(zap.Int("page", page), zap.Int("size", size))

	total, err := u.repo.CountAll(ctx)
	if err != nil {
		log.Error("[payment][usecase] list count failed", zap.Error(err))
		return newPage(nil, page, size, 0)
	}

	items, err := u.repo.FindPage(ctx, size, page*size)
	if err != nil {
		log.Error("[payment][usecase] list page failed", zap.Error(err))
		return newPage(nil, page, size, 0)
	}
	return newPage(items, page, size, total)
}

func (u *ListPaymentsUseCase) GetByOrderID(ctx context.Context, orderID string) ([]entities.PaymentMethod, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, failure.Validation("order id is required")
	}

	items, err := u.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		u.log.Error("[payment][usecase] list by order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, asProcessing("find payments by order", err)
	}
	if len(items) == 0 {
		return nil, failure.NotFound("no payments for order " + orderID)
	}
	return items, nil
}

func (u *ListPaymentsUseCase) GetByCustomerID(ctx context.Context, customerID string) ([]entities.PaymentMethod, error) {
	raw := strings.TrimSpace(customerID)
	if raw == "" {
		return nil, failure.Validation("customer id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, failure.Validationf("invalid customer id %q", customerID)
	}

	items, err := u.repo.FindByCustomerID(ctx, id)
	if err != nil {
		u.log.Error("[payment][usecase] list by customer failed", zap.String("customer_id", raw), zap.Error(err))
		return nil, asProcessing("find payments by customer", err)
	}
	if len(items) == 0 {
		return nil, failure.NotFound("no payments for customer " + raw)
	}
	return items, nil
}

func safePage(page int) int {
	switch {
	case page < 0:
		return 0
	case page > MaxPage:
		return MaxPage
	}
	return page
}

func safeSize(size int) int {
	switch {
	case size <= 0:
		return DefaultPageSize
	case size > MaxPageSize:
		return MaxPageSize
	}
	return size
}

func newPage(items []entities.PaymentMethod, page, size int, total int64) Page {
	if items == nil {
		items = []entities.PaymentMethod{}
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return Page{
		Items:         items,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
		HasNext:       page+1 < totalPages,
		HasPrevious:   page > 0,
	}
}
