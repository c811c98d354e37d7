package customer

// AddCustomerRequest payload of creation.
// swagger:model AddCustomerRequest
type AddCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"       example:"John"`
	LastName  string `json:"last_name"  binding:"required"       example:"Doe"`
	Phone     string `json:"phone"      binding:"required,phone" example:"078 0156 5740"`
	Email     string `json:"email"      binding:"required,email" example:"john.doe@lineten.com"`
}

// UpdateCustomerRequest payload of full update.
// swagger:model UpdateCustomerRequest
type UpdateCustomerRequest struct {
	ID        int    `json:"id"         binding:"required,gt=0"  example:"1"`
	FirstName string `json:"first_name" binding:"required"       example:"John"`
	LastName  string `json:"last_name"  binding:"required"       example:"Doe"`
	Phone     string `json:"phone"      binding:"required,phone" example:"078 0156 5740"`
	Email     string `json:"email"      binding:"required,email" example:"john.doe@lineten.com"`
}

// CustomerResponse is the public view of a customer.
// swagger:model CustomerResponse
type CustomerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// ToModel leaves the id unset; the store assigns it.
func (r AddCustomerRequest) ToModel() (*Customer, error) {
	return New(0, r.FirstName, r.LastName, r.Phone, r.Email)
}

func (r UpdateCustomerRequest) ToModel() (*Customer, error) {
	return New(r.ID, r.FirstName, r.LastName, r.Phone, r.Email)
}

func NewResponse(c *Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func NewResponses(list []Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, NewResponse(&list[i]))
	}
	return out
}
