package product

import "github.com/MikeMC777/ordenes-api/internal/guard"

type Product struct {
	ID          int
	Name        string
	Description string
	SKU         string
}

// New builds a Product, failing with the name of the first blank field.
func New(id int, name, description, sku string) (*Product, error) {
	p := &Product{ID: id, Name: name, Description: description, SKU: sku}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if err := guard.NotBlank(p.Name, "Name"); err != nil {
		return err
	}
	if err := guard.NotBlank(p.Description, "Description"); err != nil {
		return err
	}
	return guard.NotBlank(p.SKU, "SKU")
}
