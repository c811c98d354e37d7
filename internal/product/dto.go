package product

// AddProductRequest payload of creation.
// swagger:model AddProductRequest
type AddProductRequest struct {
	Name        string `json:"name"        binding:"required" example:"Mechanical Keyboard"`
	Description string `json:"description" binding:"required" example:"RGB 60%"`
	SKU         string `json:"sku"         binding:"required" example:"KB-60-RGB"`
}

// UpdateProductRequest payload of full update.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	ID          int    `json:"id"          binding:"required,gt=0" example:"1"`
	Name        string `json:"name"        binding:"required"      example:"Mechanical Keyboard"`
	Description string `json:"description" binding:"required"      example:"RGB 60%"`
	SKU         string `json:"sku"         binding:"required"      example:"KB-60-RGB"`
}

// swagger:model ProductResponse
type ProductResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
}

func (r AddProductRequest) ToModel() (*Product, error) {
	return New(0, r.Name, r.Description, r.SKU)
}

func (r UpdateProductRequest) ToModel() (*Product, error) {
	return New(r.ID, r.Name, r.Description, r.SKU)
}

func NewResponse(p *Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Description: p.Description, SKU: p.SKU}
}

func NewResponses(list []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, NewResponse(&list[i]))
	}
	return out
}
