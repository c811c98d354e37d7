package product

import "github.com/MikeMC777/ordenes-api/internal/entity"

func toEntity(p *Product) *entity.Product {
	return &entity.Product{ID: p.ID, Name: p.Name, Description: p.Description, SKU: p.SKU}
}

func toModel(e *entity.Product) *Product {
	return &Product{ID: e.ID, Name: e.Name, Description: e.Description, SKU: e.SKU}
}

func applyTo(dst *entity.Product, p *Product) {
	dst.Name = p.Name
	dst.Description = p.Description
	dst.SKU = p.SKU
}
