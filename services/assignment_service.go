package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type AssignmentService struct {
	DB        *gorm.DB
	Repo      *repository.ComplaintRepository
	MechRepo  *repository.MechanicRepository
	ChatRepo  *repository.ChatRepository
	Complaint *ComplaintService
}

func NewAssignmentService(
	db *gorm.DB,
	repo *repository.ComplaintRepository,
	mechRepo *repository.MechanicRepository,
	chatRepo *repository.ChatRepository,
	complaint *ComplaintService,
) *AssignmentService {
	return &AssignmentService{DB: db, Repo: repo, MechRepo: mechRepo, ChatRepo: chatRepo, Complaint: complaint}
}

// ResolveAssignment picks a mechanic from the pool without mutating anything.
// The pool arrives in the fixed join-date/id order, so the same snapshot
// always yields the same pick. An empty skill tag matches any mechanic.
func ResolveAssignment(skillTag string, pool []entity.Mechanic) (uint, error) {
	for i := range pool {
		m := &pool[i]
		if m.Status != entity.MechanicAvailable {
			continue
		}
		if m.HasSkill(skillTag) {
			return m.ID, nil
		}
	}
	return 0, ErrNoMechanicAvailable
}

// errClaimLost aborts the assignment transaction when another request claimed
// the candidate first; the loop then retries against the remaining pool.
var errClaimLost = errors.New("mechanic claim lost")

// Assign binds a pending, unassigned complaint to one mechanic and moves it
// to in_progress. The claim is a conditional update, so a mechanic grabbed by
// a concurrent assignment just drops out of the candidate pool here.
func (s *AssignmentService) Assign(complaintID uint, skillTag, actor string) (*entity.Complaint, error) {
	c, err := s.Complaint.Detail(complaintID)
	if err != nil {
		return nil, err
	}
	if c.Status != entity.StatusPending {
		return nil, ErrInvalidTransition
	}
	if c.AssignedMechanicID != nil {
		return nil, ErrConflict
	}

	// no coordinator tag → fall back to the product category
	if skillTag == "" && c.ProductID != nil {
		var p entity.Product
		if err := s.DB.First(&p, *c.ProductID).Error; err == nil {
			skillTag = p.Category
		}
	}

	pool, err := s.MechRepo.ListAvailable()
	if err != nil {
		return nil, persistErr("list mechanics", err)
	}

	for {
		mechID, err := ResolveAssignment(skillTag, pool)
		if err != nil {
			return nil, err
		}

		err = s.DB.Transaction(func(tx *gorm.DB) error {
			claimed, err := s.MechRepo.ClaimAvailable(tx, mechID)
			if err != nil {
				return persistErr("claim mechanic", err)
			}
			if claimed == 0 {
				return errClaimLost
			}

			bound, err := s.Repo.AssignMechanic(tx, c.ID, mechID)
			if err != nil {
				return persistErr("bind mechanic", err)
			}
			if bound == 0 {
				return ErrConflict
			}

			affected, err := s.Repo.UpdateStatusGuard(tx, c.ID, entity.StatusPending, entity.StatusInProgress)
			if err != nil {
				return persistErr("update status", err)
			}
			if affected == 0 {
				return ErrConflict
			}

			ev := entity.StatusEvent{
				ComplaintID: c.ID,
				Status:      entity.StatusInProgress,
				UpdatedBy:   actor,
			}
			if err := s.Repo.AppendEvent(tx, &ev); err != nil {
				return persistErr("append event", err)
			}

			_, err = s.ChatRepo.EnsureRoom(tx, c.ID)
			return err
		})
		if errors.Is(err, errClaimLost) {
			pool = dropMechanic(pool, mechID)
			continue
		}
		if err != nil {
			return nil, err
		}

		return s.Complaint.Detail(c.ID)
	}
}

func dropMechanic(pool []entity.Mechanic, id uint) []entity.Mechanic {
	out := pool[:0]
	for _, m := range pool {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
