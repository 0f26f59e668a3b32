// services/chat_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type ChatService struct {
	db       *gorm.DB
	repo     *repository.ChatRepository
	cmpRepo  *repository.ComplaintRepository
	userRepo *repository.UserRepository
	empRepo  *repository.EmployeeRepository
	mechRepo *repository.MechanicRepository
}

func NewChatService(
	db *gorm.DB,
	repo *repository.ChatRepository,
	cmpRepo *repository.ComplaintRepository,
	userRepo *repository.UserRepository,
	empRepo *repository.EmployeeRepository,
	mechRepo *repository.MechanicRepository,
) *ChatService {
	return &ChatService{db: db, repo: repo, cmpRepo: cmpRepo, userRepo: userRepo, empRepo: empRepo, mechRepo: mechRepo}
}

func (s *ChatService) GetRoomByID(roomID uint) (*entity.ChatRoom, error) {
	return s.repo.GetRoomByID(roomID)
}

func (s *ChatService) GetRoomByComplaint(complaintID uint) (*entity.ChatRoom, error) {
	room, err := s.repo.GetRoomByComplaint(complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// CanAccessRoom allows the complaint's customer, its assigned mechanic, and
// coordinator/admin staff.
func (s *ChatService) CanAccessRoom(userID uint, role string, complaintID uint) (bool, error) {
	if role == "coordinator" || role == "admin" {
		return true, nil
	}

	c, err := s.cmpRepo.GetByID(complaintID)
	if err != nil {
		return false, err
	}

	switch role {
	case "customer":
		u, err := s.userRepo.FindByID(userID)
		if err != nil {
			return false, err
		}
		return u.Email == c.CustomerEmail, nil
	case "mechanic":
		if c.AssignedMechanicID == nil {
			return false, nil
		}
		emp, err := s.empRepo.GetByUserID(userID)
		if err != nil {
			return false, err
		}
		m, err := s.mechRepo.GetByEmployeeID(emp.ID)
		if err != nil {
			return false, err
		}
		return m.ID == *c.AssignedMechanicID, nil
	default:
		return false, nil
	}
}

func (s *ChatService) GetMessages(roomID uint) ([]entity.Message, error) {
	return s.repo.FindMessagesByRoom(roomID)
}

func (s *ChatService) SendMessage(roomID, senderID uint, senderRole, body string) (*entity.Message, error) {
	if body == "" {
		return nil, errors.New("empty message")
	}
	msg := &entity.Message{
		Body:       body,
		SenderID:   senderID,
		SenderRole: senderRole,
		RoomID:     roomID,
	}
	err := s.repo.CreateMessage(msg)
	return msg, err
}
