package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProduct_WarrantyActive(t *testing.T) {
	purchase := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	p := Product{PurchaseDate: purchase, WarrantyMonths: 12}

	assert.True(t, p.WarrantyActive(purchase.AddDate(0, 6, 0)))
	assert.False(t, p.WarrantyActive(purchase.AddDate(0, 12, 0)))
	assert.False(t, p.WarrantyActive(purchase.AddDate(0, 13, 0)))

	noWarranty := Product{PurchaseDate: purchase, WarrantyMonths: 0}
	assert.False(t, noWarranty.WarrantyActive(purchase))
}

func TestMechanic_HasSkill(t *testing.T) {
	m := Mechanic{Specialization: "electrical, cooling"}

	assert.True(t, m.HasSkill("electrical"))
	assert.True(t, m.HasSkill("Cooling"))
	assert.False(t, m.HasSkill("plumbing"))

	// empty tag matches any mechanic, for general complaints
	assert.True(t, m.HasSkill(""))
}
