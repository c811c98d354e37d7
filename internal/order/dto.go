package order

import "time"

// AddOrderRequest payload of order creation.
// swagger:model AddOrderRequest
type AddOrderRequest struct {
	ProductID  int    `json:"product_id"  binding:"required,gt=0" example:"1"`
	CustomerID int    `json:"customer_id" binding:"required,gt=0" example:"1"`
	Status     Status `json:"status"      binding:"min=0,max=7"   example:"1"`
}

// UpdateOrderRequest payload of full update.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	ID         int    `json:"id"          binding:"required,gt=0" example:"1"`
	ProductID  int    `json:"product_id"  binding:"required,gt=0" example:"1"`
	CustomerID int    `json:"customer_id" binding:"required,gt=0" example:"1"`
	Status     Status `json:"status"      binding:"min=0,max=7"   example:"5"`
}

// swagger:model OrderResponse
type OrderResponse struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	CustomerID  int       `json:"customer_id"`
	Status      Status    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

// ToModel never sets the timestamps; the repository owns them.
func (r AddOrderRequest) ToModel() *Order {
	return &Order{ProductID: r.ProductID, CustomerID: r.CustomerID, Status: r.Status}
}

func (r UpdateOrderRequest) ToModel() *Order {
	return &Order{ID: r.ID, ProductID: r.ProductID, CustomerID: r.CustomerID, Status: r.Status}
}

func NewResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		CustomerID:  o.CustomerID,
		Status:      o.Status,
		CreatedDate: o.CreatedDate,
		UpdatedDate: o.UpdatedDate,
	}
}

func NewResponses(list []Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, NewResponse(&list[i]))
	}
	return out
}
