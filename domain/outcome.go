package domain

// Outcome is the evaluator's verdict for one inbound message.
type Outcome int

const (
	// OutcomeIgnored means the message produced no state change:
	// no number, repeat contributor, or a rejected correction.
	OutcomeIgnored Outcome = iota
	// OutcomeAccepted means the count advanced by one.
	OutcomeAccepted
	// OutcomeRecovering means a grace window was opened for the room.
	OutcomeRecovering
	// OutcomeFailed means the store rejected a persistence operation.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeAccepted:
		return "Accepted"
	case OutcomeRecovering:
		return "Recovering"
	case OutcomeFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
