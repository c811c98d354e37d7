package order

import "fmt"

// Status is stored as its integer value.
type Status int

const (
	StatusNone Status = iota
	StatusNew
	StatusPaymentReceived
	StatusPaymentFailed
	StatusInProgress
	StatusCompleted
	StatusClosed
	StatusCancelled
)

var statusNames = [...]string{
	"None",
	"New",
	"PaymentReceived",
	"PaymentFailed",
	"InProgress",
	"Completed",
	"Closed",
	"Cancelled",
}

func (s Status) Valid() bool { return s >= StatusNone && s <= StatusCancelled }

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}
