package customer

import "github.com/MikeMC777/ordenes-api/internal/entity"

func toEntity(c *Customer) *entity.Customer {
	return &entity.Customer{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func toModel(e *entity.Customer) *Customer {
	return &Customer{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		Email:     e.Email,
	}
}

// applyTo copies the updatable fields of c onto an existing row.
func applyTo(dst *entity.Customer, c *Customer) {
	dst.FirstName = c.FirstName
	dst.LastName = c.LastName
	dst.Phone = c.Phone
	dst.Email = c.Email
}
