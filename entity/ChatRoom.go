package entity

import (
	"gorm.io/gorm"
)

// ChatRoom links one complaint to its customer/mechanic conversation.
type ChatRoom struct {
	gorm.Model
	ComplaintID uint `gorm:"uniqueIndex;not null" json:"complaintId"`

	Complaint Complaint `json:"-"`

	// preload only on history endpoints
	Messages []Message `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
