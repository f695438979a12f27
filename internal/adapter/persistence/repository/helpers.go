package repository

import (
	"sort"

	"payment_service/internal/domain/entities"
)

func isEligibleForReversal(p entities.PaymentMethod) bool {
	return p != nil && p.Envelope().Status.IsReversible()
}

// sortNewestFirst orders by creation time, newest first, with the id as a
// tie breaker so pages are stable.
func sortNewestFirst(items []entities.PaymentMethod) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Envelope(), items[j].Envelope()
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

func sortOldestFirst(items []entities.PaymentMethod) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Envelope(), items[j].Envelope()
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

func pageOf(items []entities.PaymentMethod, size, offset int) []entities.PaymentMethod {
	if offset < 0 {
		offset = 0
	}
	if size <= 0 || offset >= len(items) {
		return []entities.PaymentMethod{}
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]entities.PaymentMethod, end-offset)
	copy(out, items[offset:end])
	return out
}
