package entities

// PaymentStatus is the lifecycle state of a payment.
//
// Transitions:
//   - PENDING -> PROCESSING
//   - PROCESSING -> COMPLETED | FAILED
//   - PROCESSING | COMPLETED -> CANCELLED | REFUNDED
//
// CANCELLED, REFUNDED and FAILED are terminal.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// AllPaymentStatuses lists every status in declaration order.
var AllPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusProcessing,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusCancelled,
	PaymentStatusRefunded,
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:    {PaymentStatusProcessing},
	PaymentStatusProcessing: {PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded},
	PaymentStatusCompleted:  {PaymentStatusCancelled, PaymentStatusRefunded},
}

func (s PaymentStatus) IsValid() bool {
	for _, v := range AllPaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCancelled, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

// IsReversible reports whether cancel/refund may start from s.
func (s PaymentStatus) IsReversible() bool {
	return s == PaymentStatusProcessing || s == PaymentStatusCompleted
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, v := range paymentTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

func (s PaymentStatus) String() string { return string(s) }

// ReversibleStatuses are the statuses from which cancel and refund are allowed.
var ReversibleStatuses = []PaymentStatus{PaymentStatusProcessing, PaymentStatusCompleted}
