package payments

import "math/rand/v2"

// Outcome is the simulated processor's answer to a submission.
type Outcome int

const (
	// OutcomeAccept moves the payment to PROCESSING.
	OutcomeAccept Outcome = iota
	// OutcomeReject fails the call with a processing error.
	OutcomeReject
	// OutcomeStall hangs for longer than the gateway timeout and then
	// reports FAILED.
	OutcomeStall
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccept:
		return "accepted"
	case OutcomeReject:
		return "rejected"
	case OutcomeStall:
		return "stalled"
	}
	return "unknown"
}

// Decider picks the outcome of each processing call.
type Decider interface {
	Decide() Outcome
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func() Outcome

func (f DeciderFunc) Decide() Outcome { return f() }

// Always returns a Decider that yields o on every call.
func Always(o Outcome) Decider {
	return DeciderFunc(func() Outcome { return o })
}

// RandomDecider accepts 80% of submissions, rejects 10% and stalls 10%.
type RandomDecider struct {
	// Float defaults to rand.Float64.
	Float func() float64
}

func (d RandomDecider) Decide() Outcome {
	draw := rand.Float64
	if d.Float != nil {
		draw = d.Float
	}
	r := draw()
	switch {
	case r < 0.8:
		return OutcomeAccept
	case r < 0.9:
		return OutcomeReject
	default:
		return OutcomeStall
	}
}
