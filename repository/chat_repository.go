package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// EnsureRoom returns the complaint's room, creating it on first use.
func (r *ChatRepository) EnsureRoom(tx *gorm.DB, complaintID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := tx.Where("complaint_id = ?", complaintID).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	room = entity.ChatRoom{ComplaintID: complaintID}
	if err := tx.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) GetRoomByID(roomID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) GetRoomByComplaint(complaintID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.Where("complaint_id = ?", complaintID).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) FindMessagesByRoom(roomID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.db.Create(msg).Error
}
