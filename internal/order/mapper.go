package order

import "github.com/MikeMC777/ordenes-api/internal/entity"

func toEntity(o *Order) *entity.Order {
	return &entity.Order{
		ID:          o.ID,
		ProductID:   o.ProductID,
		CustomerID:  o.CustomerID,
		Status:      int(o.Status),
		CreatedDate: o.CreatedDate,
		UpdatedDate: o.UpdatedDate,
	}
}

func toModel(e *entity.Order) *Order {
	return &Order{
		ID:          e.ID,
		ProductID:   e.ProductID,
		CustomerID:  e.CustomerID,
		Status:      Status(e.Status),
		CreatedDate: e.CreatedDate,
		UpdatedDate: e.UpdatedDate,
	}
}

// applyTo copies the updatable fields; the timestamps belong to the row.
func applyTo(dst *entity.Order, o *Order) {
	dst.ProductID = o.ProductID
	dst.CustomerID = o.CustomerID
	dst.Status = int(o.Status)
}
