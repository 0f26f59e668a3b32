package entity

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Body string `json:"body"`

	// sender is either the complaint's customer or its assigned mechanic
	SenderID   uint   `json:"senderId"`
	SenderRole string `json:"senderRole"`

	RoomID uint     `json:"roomId"`
	Room   ChatRoom `json:"-"` // hidden to avoid marshal loops
}
