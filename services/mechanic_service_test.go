package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMechanicService(db *gorm.DB) *MechanicService {
	return NewMechanicService(db,
		repository.NewMechanicRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewComplaintRepository(db),
		newComplaintService(db),
	)
}

func mechanicUserID(t *testing.T, db *gorm.DB, m *entity.Mechanic) uint {
	t.Helper()
	var emp entity.Employee
	require.NoError(t, db.First(&emp, m.EmployeeID).Error)
	return emp.UserID
}

func TestSetAvailability_RefusedWhileAssigned(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	assignSvc := newAssignmentService(db)
	mechSvc := newMechanicService(db)

	seedCustomer(t, db, "a@x.com", 1)
	c := seedComplaint(t, db, svc, "a@x.com")
	m := seedMechanic(t, db, "ravi", "electrical", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	uid := mechanicUserID(t, db, m)

	_, err := assignSvc.Assign(c.ID, "electrical", "coord")
	require.NoError(t, err)

	assert.Error(t, mechSvc.SetAvailability(uid, true))

	_, err = svc.RecordTransition(c.ID, entity.StatusResolved, "ravi")
	require.NoError(t, err)
	assert.NoError(t, mechSvc.SetAvailability(uid, true))
}

func TestFinishJob_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	assignSvc := newAssignmentService(db)
	mechSvc := newMechanicService(db)

	seedCustomer(t, db, "a@x.com", 1)
	c := seedComplaint(t, db, svc, "a@x.com")
	owner := seedMechanic(t, db, "ravi", "electrical", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	other := seedMechanic(t, db, "arun", "electrical", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := assignSvc.Assign(c.ID, "electrical", "coord")
	require.NoError(t, err)

	_, err = mechSvc.FinishJob(mechanicUserID(t, db, other), c.ID, entity.StatusResolved, "arun")
	assert.Error(t, err)

	ev, err := mechSvc.FinishJob(mechanicUserID(t, db, owner), c.ID, entity.StatusResolved, "ravi")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusResolved, ev.Status)
}

func TestCurrentWorkAndHistories(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	assignSvc := newAssignmentService(db)
	mechSvc := newMechanicService(db)

	seedCustomer(t, db, "a@x.com", 1)
	m := seedMechanic(t, db, "ravi", "electrical", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	uid := mechanicUserID(t, db, m)

	c := seedComplaint(t, db, svc, "a@x.com")
	_, err := assignSvc.Assign(c.ID, "electrical", "coord")
	require.NoError(t, err)

	work, err := mechSvc.CurrentWork(uid)
	require.NoError(t, err)
	require.Len(t, work, 1)
	assert.Equal(t, c.ID, work[0].ID)

	_, err = svc.RecordTransition(c.ID, entity.StatusResolved, "ravi")
	require.NoError(t, err)

	work, err = mechSvc.CurrentWork(uid)
	require.NoError(t, err)
	assert.Empty(t, work)

	hist, err := mechSvc.Histories(uid)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, c.ID, hist[0].ID)
}
