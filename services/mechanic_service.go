// services/mechanic_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MechanicService struct {
	DB        *gorm.DB
	MechRepo  *repository.MechanicRepository
	EmpRepo   *repository.EmployeeRepository
	Repo      *repository.ComplaintRepository
	Complaint *ComplaintService
}

func NewMechanicService(
	db *gorm.DB,
	mechRepo *repository.MechanicRepository,
	empRepo *repository.EmployeeRepository,
	repo *repository.ComplaintRepository,
	complaint *ComplaintService,
) *MechanicService {
	return &MechanicService{DB: db, MechRepo: mechRepo, EmpRepo: empRepo, Repo: repo, Complaint: complaint}
}

// ByUserID resolves the mechanic profile behind a logged-in account.
func (s *MechanicService) ByUserID(userID uint) (*entity.Mechanic, error) {
	emp, err := s.EmpRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("load employee", err)
	}
	m, err := s.MechRepo.GetByEmployeeID(emp.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("load mechanic", err)
	}
	return m, nil
}

// SetAvailability toggles the mechanic in or out of the assignment pool.
// Going available while still bound to an open complaint is refused — the
// assignment must be resolved or cancelled first.
func (s *MechanicService) SetAvailability(userID uint, available bool) error {
	m, err := s.ByUserID(userID)
	if err != nil {
		return err
	}

	if available {
		open, err := s.MechRepo.HasOpenAssignment(m.ID)
		if err != nil {
			return persistErr("check assignments", err)
		}
		if open {
			return errors.New("cannot go available while an assignment is open")
		}
	}

	target := entity.MechanicBusy
	if available {
		target = entity.MechanicAvailable
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entity.Mechanic{}).Where("id = ?", m.ID).
			Update("status", target).Error
	})
}

// CurrentWork lists the open complaints bound to this mechanic.
func (s *MechanicService) CurrentWork(userID uint) ([]entity.Complaint, error) {
	m, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}
	st := entity.StatusInProgress
	items, _, err := s.Repo.List(repository.ListFilter{Status: &st, MechanicID: &m.ID, Limit: 100})
	if err != nil {
		return nil, persistErr("list work", err)
	}
	return items, nil
}

// Histories lists finished complaints this mechanic handled.
func (s *MechanicService) Histories(userID uint) ([]entity.Complaint, error) {
	m, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}
	var out []entity.Complaint
	err = s.DB.Where("assigned_mechanic_id = ? AND status IN ?", m.ID,
		[]entity.ComplaintStatus{entity.StatusResolved, entity.StatusCancelled}).
		Order("id DESC").Limit(100).Find(&out).Error
	if err != nil {
		return nil, persistErr("list histories", err)
	}
	return out, nil
}

// FinishJob resolves or cancels a complaint owned by this mechanic. The
// ledger releases the mechanic back to the pool inside the same transaction.
func (s *MechanicService) FinishJob(userID, complaintID uint, target entity.ComplaintStatus, actorEmail string) (*entity.StatusEvent, error) {
	m, err := s.ByUserID(userID)
	if err != nil {
		return nil, err
	}
	c, err := s.Complaint.Detail(complaintID)
	if err != nil {
		return nil, err
	}
	if c.AssignedMechanicID == nil || *c.AssignedMechanicID != m.ID {
		return nil, errors.New("complaint is not assigned to this mechanic")
	}
	return s.Complaint.RecordTransition(complaintID, target, actorEmail)
}
