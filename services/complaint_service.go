package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintService struct {
	DB       *gorm.DB
	Repo     *repository.ComplaintRepository
	UserRepo *repository.UserRepository
	MechRepo *repository.MechanicRepository
}

func NewComplaintService(
	db *gorm.DB,
	repo *repository.ComplaintRepository,
	userRepo *repository.UserRepository,
	mechRepo *repository.MechanicRepository,
) *ComplaintService {
	return &ComplaintService{DB: db, Repo: repo, UserRepo: userRepo, MechRepo: mechRepo}
}

// ----- Intake -----

type IntakeInput struct {
	RegisteredEmail string
	ContactNumber   string
	Description     string
	ProductID       *uint
	Priority        string
	PictureB64      string
	IdempotencyKey  string
}

type IntakeResult struct {
	UserID      uint   `json:"userId"`
	UserEmail   string `json:"userEmail"`
	ProductIDs  []uint `json:"productIds"`
	ComplaintID uint   `json:"complaintId"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

const (
	contactNumberLen   = 10
	maxDescriptionLen  = 1000
	maxPictureB64Bytes = 5 * 1024 * 1024
)

// Intake registers a new complaint in pending status. Assignment is a
// separate coordinator step, so intake never fails just because no mechanic
// is free. Validation runs before any write and reports every bad field.
func (s *ComplaintService) Intake(in *IntakeInput) (*IntakeResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.RegisteredEmail))

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, persistErr("resolve user", err)
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	verr := &ValidationError{}
	contact := strings.TrimSpace(in.ContactNumber)
	switch {
	case contact == "":
		verr.add("contactNumber", "is required")
	case !digitsOnly(contact):
		verr.add("contactNumber", "must contain digits only")
	case len(contact) != contactNumberLen:
		verr.add("contactNumber", "must be exactly 10 digits")
	}

	desc := strings.TrimSpace(in.Description)
	switch {
	case desc == "":
		verr.add("complaintDescription", "is required")
	case len(desc) > maxDescriptionLen:
		verr.add("complaintDescription", "must be at most 1000 characters")
	}

	priority := entity.PriorityMedium
	if in.Priority != "" {
		p, ok := entity.ParseComplaintPriority(in.Priority)
		if !ok {
			verr.add("priority", "must be one of low, medium, high")
		} else {
			priority = p
		}
	}

	if in.ProductID != nil {
		p, err := s.UserRepo.GetProductForUser(user.ID, *in.ProductID)
		if err != nil {
			return nil, persistErr("check product", err)
		}
		if p == nil {
			verr.add("productId", "is not a product owned by this user")
		} else if !p.WarrantyActive(time.Now()) {
			verr.add("productId", "warranty no longer covers service")
		}
	}

	if in.PictureB64 != "" && len(in.PictureB64) > maxPictureB64Bytes {
		verr.add("picture", "file too large")
	}

	if verr.has() {
		return nil, verr
	}

	products, err := s.UserRepo.ListProducts(user.ID)
	if err != nil {
		return nil, persistErr("list products", err)
	}
	productIDs := make([]uint, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}

	// retried intake with the same key returns the original complaint
	if in.IdempotencyKey != "" {
		existing, err := s.Repo.GetByIdempotencyKey(in.IdempotencyKey)
		if err != nil {
			return nil, persistErr("idempotency lookup", err)
		}
		if existing != nil {
			return &IntakeResult{
				UserID: user.ID, UserEmail: user.Email, ProductIDs: productIDs,
				ComplaintID: existing.ID, Code: existing.Code,
				Message: "complaint already registered",
			}, nil
		}
	}

	picture := ""
	if in.PictureB64 != "" {
		path, err := utils.SaveBase64Image(in.PictureB64, "uploads/complaints")
		if err != nil {
			verr.add("picture", "invalid base64 image")
			return nil, verr
		}
		picture = path
	}

	complaint := entity.Complaint{
		Code:          newComplaintCode(),
		CustomerEmail: user.Email,
		ContactNumber: contact,
		Description:   desc,
		Status:        entity.StatusPending,
		Priority:      priority,
		ProductID:     in.ProductID,
		Picture:       picture,
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		complaint.IdempotencyKey = &key
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &complaint); err != nil {
			return err
		}
		ev := entity.StatusEvent{
			ComplaintID: complaint.ID,
			Status:      entity.StatusPending,
			UpdatedBy:   user.Email,
		}
		return s.Repo.AppendEvent(tx, &ev)
	})
	if err != nil {
		// a rolled-back create must not leave its upload behind
		if picture != "" {
			os.Remove(picture)
		}
		// two intakes racing on one key: the loser hits the unique index,
		// so answer with the winner's complaint
		if in.IdempotencyKey != "" {
			if existing, lookErr := s.Repo.GetByIdempotencyKey(in.IdempotencyKey); lookErr == nil && existing != nil {
				return &IntakeResult{
					UserID: user.ID, UserEmail: user.Email, ProductIDs: productIDs,
					ComplaintID: existing.ID, Code: existing.Code,
					Message: "complaint already registered",
				}, nil
			}
		}
		return nil, persistErr("create complaint", err)
	}

	return &IntakeResult{
		UserID:      user.ID,
		UserEmail:   user.Email,
		ProductIDs:  productIDs,
		ComplaintID: complaint.ID,
		Code:        complaint.Code,
		Message:     "complaint registered",
	}, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newComplaintCode() string {
	return "CMP-" + strings.Split(uuid.NewString(), "-")[0]
}

// ----- Queries / updates -----

func (s *ComplaintService) Detail(id uint) (*entity.Complaint, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("load complaint", err)
	}
	return c, nil
}

func (s *ComplaintService) DetailForCustomer(email string, id uint) (*entity.Complaint, error) {
	c, err := s.Repo.GetForCustomer(strings.ToLower(email), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("load complaint", err)
	}
	return c, nil
}

func (s *ComplaintService) List(f repository.ListFilter) ([]entity.Complaint, int64, error) {
	items, total, err := s.Repo.List(f)
	if err != nil {
		return nil, 0, persistErr("list complaints", err)
	}
	return items, total, nil
}

func (s *ComplaintService) UpdatePriority(id uint, priority entity.ComplaintPriority) error {
	if _, err := s.Detail(id); err != nil {
		return err
	}
	if err := s.Repo.UpdateFields(id, map[string]any{"priority": priority}); err != nil {
		return persistErr("update priority", err)
	}
	return nil
}

func (s *ComplaintService) AddNote(id uint, note string) error {
	c, err := s.Detail(id)
	if err != nil {
		return err
	}
	notes := c.Notes
	if notes != "" {
		notes += "\n"
	}
	notes += note
	if err := s.Repo.UpdateFields(id, map[string]any{"notes": notes}); err != nil {
		return persistErr("add note", err)
	}
	return nil
}

// SoftDelete keeps the row and its event history for audit.
func (s *ComplaintService) SoftDelete(id uint) error {
	if err := s.Repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistErr("delete complaint", err)
	}
	return nil
}
