// services/complaint_transitions.go
package services

import (
	"errors"
	"fmt"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

// RecordTransition is the only mutation path for complaint status. It checks
// the edge against the transition graph, then applies it with a guarded
// update so two concurrent calls from the same prior state cannot both
// succeed — the loser sees ErrConflict and must re-read.
func (s *ComplaintService) RecordTransition(complaintID uint, target entity.ComplaintStatus, actor string) (*entity.StatusEvent, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, string(target))
	}

	c, err := s.Repo.GetByID(complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("load complaint", err)
	}

	if !c.Status.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, target)
	}

	ev := entity.StatusEvent{
		ComplaintID: c.ID,
		Status:      target,
		UpdatedBy:   actor,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, c.ID, c.Status, target)
		if err != nil {
			return persistErr("update status", err)
		}
		if affected == 0 {
			// edge was legal on our read, so the row moved underneath us
			return ErrConflict
		}

		if target == entity.StatusResolved {
			if err := s.Repo.SetResolvedAt(tx, c.ID, time.Now()); err != nil {
				return persistErr("stamp resolved_at", err)
			}
		}

		// a finished complaint frees its mechanic for the pool
		if target.Terminal() && c.AssignedMechanicID != nil {
			if err := s.MechRepo.Release(tx, *c.AssignedMechanicID); err != nil {
				return persistErr("release mechanic", err)
			}
		}

		return s.Repo.AppendEvent(tx, &ev)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// CancelByCustomer cancels a complaint on its owner's behalf. Customers may
// only cancel while the complaint is still pending; once a mechanic is
// working it, cancellation belongs to the coordinator desk.
func (s *ComplaintService) CancelByCustomer(email string, complaintID uint) (*entity.StatusEvent, error) {
	c, err := s.DetailForCustomer(email, complaintID)
	if err != nil {
		return nil, err
	}
	if c.Status != entity.StatusPending {
		return nil, fmt.Errorf("%w: only pending complaints can be cancelled by the customer", ErrInvalidTransition)
	}
	return s.RecordTransition(complaintID, entity.StatusCancelled, email)
}

// History returns the ordered status ledger of one complaint.
func (s *ComplaintService) History(complaintID uint) ([]entity.StatusEvent, error) {
	if _, err := s.Detail(complaintID); err != nil {
		return nil, err
	}
	events, err := s.Repo.ListEvents(complaintID)
	if err != nil {
		return nil, persistErr("list events", err)
	}
	return events, nil
}
