package order

import "time"

// Order refers to its product and customer by id only. Unlike Customer and
// Product it has no construction checks.
type Order struct {
	ID          int
	ProductID   int
	CustomerID  int
	Status      Status
	CreatedDate time.Time
	UpdatedDate time.Time
}
