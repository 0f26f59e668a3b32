package repository

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Product{},
		&entity.Employee{}, &entity.Mechanic{},
		&entity.Complaint{}, &entity.StatusEvent{},
		&entity.ChatRoom{}, &entity.Message{},
	))
	return db
}

var seedSeq atomic.Uint64

func seedComplaintRow(t *testing.T, db *gorm.DB, email string, status entity.ComplaintStatus) *entity.Complaint {
	t.Helper()
	c := entity.Complaint{
		Code:          fmt.Sprintf("CMP-%08x", seedSeq.Add(1)),
		CustomerEmail: email,
		ContactNumber: "9876543210",
		Description:   "Engine noise",
		Status:        status,
		Priority:      entity.PriorityMedium,
	}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedMechanicRow(t *testing.T, db *gorm.DB, name, specialization string, joined time.Time, status entity.MechanicStatus) *entity.Mechanic {
	t.Helper()
	user := entity.User{Email: name + "@service.local", Password: "x", Name: name, Role: "mechanic"}
	require.NoError(t, db.Create(&user).Error)
	emp := entity.Employee{
		Name: name, Email: user.Email,
		Position: entity.PositionMechanic, Status: entity.EmployeeActive,
		JoinDate: joined, UserID: user.ID,
	}
	require.NoError(t, db.Create(&emp).Error)
	m := entity.Mechanic{EmployeeID: emp.ID, Specialization: specialization, Status: status}
	require.NoError(t, db.Create(&m).Error)
	return &m
}
