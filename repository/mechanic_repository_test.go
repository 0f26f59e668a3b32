package repository

import (
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAvailable_OrderAndFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewMechanicRepository(db)

	late := seedMechanicRow(t, db, "arun", "electrical", time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), entity.MechanicAvailable)
	early := seedMechanicRow(t, db, "ravi", "electrical", time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), entity.MechanicAvailable)
	seedMechanicRow(t, db, "neha", "plumbing", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), entity.MechanicBusy)

	inactive := seedMechanicRow(t, db, "vikram", "electrical", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), entity.MechanicAvailable)
	require.NoError(t, db.Model(&entity.Employee{}).
		Where("id = ?", inactive.EmployeeID).
		Update("status", entity.EmployeeInactive).Error)

	pool, err := repo.ListAvailable()
	require.NoError(t, err)

	// busy and inactive-employee mechanics stay out; earliest join date leads
	require.Len(t, pool, 2)
	assert.Equal(t, early.ID, pool[0].ID)
	assert.Equal(t, late.ID, pool[1].ID)
	assert.Equal(t, "ravi", pool[0].Employee.Name)
}

func TestListAvailable_JoinDateTieBreaksOnEmployeeID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMechanicRepository(db)

	joined := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
	first := seedMechanicRow(t, db, "ravi", "electrical", joined, entity.MechanicAvailable)
	seedMechanicRow(t, db, "arun", "electrical", joined, entity.MechanicAvailable)

	pool, err := repo.ListAvailable()
	require.NoError(t, err)
	require.Len(t, pool, 2)
	assert.Equal(t, first.ID, pool[0].ID)
}

func TestClaimAvailable_SecondClaimLoses(t *testing.T) {
	db := newTestDB(t)
	repo := NewMechanicRepository(db)
	m := seedMechanicRow(t, db, "ravi", "electrical", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), entity.MechanicAvailable)

	n, err := repo.ClaimAvailable(db, m.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.ClaimAvailable(db, m.ID)
	require.NoError(t, err)
	assert.Zero(t, n, "a claimed mechanic must not be claimable again")

	got, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MechanicBusy, got.Status)
}

func TestRelease_ReturnsMechanicToPool(t *testing.T) {
	db := newTestDB(t)
	repo := NewMechanicRepository(db)
	m := seedMechanicRow(t, db, "ravi", "electrical", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), entity.MechanicBusy)

	require.NoError(t, repo.Release(db, m.ID))

	pool, err := repo.ListAvailable()
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, m.ID, pool[0].ID)
}

func TestHasOpenAssignment(t *testing.T) {
	db := newTestDB(t)
	repo := NewMechanicRepository(db)
	m := seedMechanicRow(t, db, "ravi", "electrical", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), entity.MechanicBusy)

	c := seedComplaintRow(t, db, "a@x.com", entity.StatusInProgress)
	require.NoError(t, db.Model(c).Update("assigned_mechanic_id", m.ID).Error)

	open, err := repo.HasOpenAssignment(m.ID)
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, db.Model(c).Update("status", entity.StatusResolved).Error)

	open, err = repo.HasOpenAssignment(m.ID)
	require.NoError(t, err)
	assert.False(t, open)
}
