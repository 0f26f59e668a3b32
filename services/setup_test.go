package services

import (
	"path/filepath"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

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

func newComplaintService(db *gorm.DB) *ComplaintService {
	return NewComplaintService(db,
		repository.NewComplaintRepository(db),
		repository.NewUserRepository(db),
		repository.NewMechanicRepository(db),
	)
}

func newAssignmentService(db *gorm.DB) *AssignmentService {
	return NewAssignmentService(db,
		repository.NewComplaintRepository(db),
		repository.NewMechanicRepository(db),
		repository.NewChatRepository(db),
		newComplaintService(db),
	)
}

func seedCustomer(t *testing.T, db *gorm.DB, email string, productCount int) *entity.User {
	t.Helper()
	user := entity.User{Email: email, Password: "x", Name: "Test Customer", Role: "customer"}
	require.NoError(t, db.Create(&user).Error)
	for i := 0; i < productCount; i++ {
		p := entity.Product{
			Name:           "Washing Machine",
			Category:       "electrical",
			PurchaseDate:   time.Now().AddDate(0, -2, 0),
			WarrantyMonths: 12,
			UserID:         user.ID,
		}
		require.NoError(t, db.Create(&p).Error)
	}
	return &user
}

func seedMechanic(t *testing.T, db *gorm.DB, name, specialization string, joined time.Time) *entity.Mechanic {
	t.Helper()
	user := entity.User{Email: name + "@service.local", Password: "x", Name: name, Role: "mechanic"}
	require.NoError(t, db.Create(&user).Error)
	emp := entity.Employee{
		Name: name, Email: user.Email,
		Position: entity.PositionMechanic, Status: entity.EmployeeActive,
		JoinDate: joined, UserID: user.ID,
	}
	require.NoError(t, db.Create(&emp).Error)
	m := entity.Mechanic{
		EmployeeID:     emp.ID,
		Specialization: specialization,
		Status:         entity.MechanicAvailable,
	}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func seedComplaint(t *testing.T, db *gorm.DB, svc *ComplaintService, email string) *entity.Complaint {
	t.Helper()
	result, err := svc.Intake(&IntakeInput{
		RegisteredEmail: email,
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
	})
	require.NoError(t, err)
	c, err := svc.Detail(result.ComplaintID)
	require.NoError(t, err)
	return c
}
