package order

// Status is the order lifecycle state. Orders only ever move forward:
// pending -> confirmed -> delivered, with cancelled reachable from pending
// or confirmed. Delivered and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseStatus validates a raw status value from a request or a stored
// document.
func ParseStatus(raw string) (Status, bool) {
	status := Status(raw)
	_, ok := transitions[status]
	return status, ok
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transition.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
