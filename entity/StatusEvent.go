package entity

import (
	"gorm.io/gorm"
)

// StatusEvent is append-only; the event history is the authoritative record
// and Complaint.Status always mirrors the latest accepted event.
type StatusEvent struct {
	gorm.Model
	ComplaintID uint      `gorm:"index;not null" json:"complaintId"`
	Complaint   Complaint `json:"-"`

	Status    ComplaintStatus `gorm:"not null" json:"status"`
	UpdatedBy string          `gorm:"not null" json:"updatedBy"`
}
