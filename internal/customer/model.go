package customer

import "github.com/MikeMC777/ordenes-api/internal/guard"

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// New builds a Customer. Every string field must be non-blank; the error
// names the first field that is not.
func New(id int, firstName, lastName, phone, email string) (*Customer, error) {
	c := &Customer{ID: id, FirstName: firstName, LastName: lastName, Phone: phone, Email: email}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"FirstName", c.FirstName},
		{"LastName", c.LastName},
		{"Phone", c.Phone},
		{"Email", c.Email},
	} {
		if err := guard.NotBlank(f.value, f.name); err != nil {
			return err
		}
	}
	return nil
}
