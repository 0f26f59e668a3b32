package entity

import (
	"time"

	"gorm.io/gorm"
)

type Complaint struct {
	gorm.Model
	// human-facing reference, e.g. CMP-9f3a2c1d
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	CustomerEmail string `gorm:"index;not null" json:"customerEmail"`
	ContactNumber string `json:"contactNumber"`
	Description   string `json:"description"`

	Status   ComplaintStatus   `gorm:"not null;default:pending" json:"status"`
	Priority ComplaintPriority `gorm:"not null;default:medium" json:"priority"`

	// set only when the complaint enters resolved
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`

	Notes   string `json:"notes"`
	Picture string `json:"picture,omitempty"`

	// client-supplied key so intake retries don't create duplicates
	IdempotencyKey *string `gorm:"uniqueIndex" json:"-"`

	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"` // preload only on detail

	AssignedMechanicID *uint     `json:"assignedMechanicId,omitempty"`
	AssignedMechanic   *Mechanic `json:"-"`

	Events   []StatusEvent `json:"-"` // preload only on history endpoints
	ChatRoom *ChatRoom     `gorm:"foreignKey:ComplaintID" json:"-"`
}
