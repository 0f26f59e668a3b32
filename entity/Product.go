package entity

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name     string `json:"name"`
	Category string `gorm:"index" json:"category"` // skill tag, e.g. "electrical"

	PurchaseDate   time.Time `json:"purchaseDate"`
	WarrantyMonths int       `json:"warrantyMonths"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}

// WarrantyActive derives warranty status from the purchase date and term.
func (p *Product) WarrantyActive(at time.Time) bool {
	if p.WarrantyMonths <= 0 {
		return false
	}
	return at.Before(p.PurchaseDate.AddDate(0, p.WarrantyMonths, 0))
}
