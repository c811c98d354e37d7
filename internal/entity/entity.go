// Package entity holds the storage-shaped rows. Only repositories and the
// schema bootstrap use these types; navigation fields are left empty by the
// repositories and exist so gorm can derive foreign keys.
package entity

import "time"

type Customer struct {
	ID        int     `gorm:"primaryKey;autoIncrement"`
	FirstName string  `gorm:"not null"`
	LastName  string  `gorm:"not null"`
	Phone     string  `gorm:"not null"`
	Email     string  `gorm:"not null"`
	Orders    []Order `gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) Key() int      { return c.ID }
func (c *Customer) SetKey(id int) { c.ID = id }

type Product struct {
	ID          int     `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null"`
	SKU         string  `gorm:"column:sku;not null"`
	Orders      []Order `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

func (p *Product) Key() int      { return p.ID }
func (p *Product) SetKey(id int) { p.ID = id }

type Order struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	ProductID   int       `gorm:"not null;index"`
	CustomerID  int       `gorm:"not null;index"`
	Status      int       `gorm:"not null"`
	CreatedDate time.Time `gorm:"not null"`
	UpdatedDate time.Time `gorm:"not null"`
	Product     *Product  `gorm:"foreignKey:ProductID"`
	Customer    *Customer `gorm:"foreignKey:CustomerID"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) Key() int      { return o.ID }
func (o *Order) SetKey(id int) { o.ID = id }

// All lists the entities in dependency order, parents first.
func All() []any {
	return []any{&Customer{}, &Product{}, &Order{}}
}
