package entity

import (
	"time"

	"gorm.io/gorm"
)

type EmployeePosition string

const (
	PositionCoordinator EmployeePosition = "coordinator"
	PositionMechanic    EmployeePosition = "mechanic"
)

func ParseEmployeePosition(s string) (EmployeePosition, bool) {
	switch s {
	case "coordinator":
		return PositionCoordinator, true
	case "mechanic":
		return PositionMechanic, true
	default:
		return "", false
	}
}

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee rows are soft-deleted only, so complaints keep valid references.
type Employee struct {
	gorm.Model
	Name        string           `json:"name"`
	Email       string           `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string           `json:"phoneNumber"`
	Address     string           `json:"address"`
	Position    EmployeePosition `gorm:"not null" json:"position"`
	Status      EmployeeStatus   `gorm:"not null;default:active" json:"status"`
	JoinDate    time.Time        `json:"joinDate"`

	// login account for the employee
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	// only mechanic-position employees carry a Mechanic profile
	MechanicProfile *Mechanic `gorm:"foreignKey:EmployeeID" json:"-"`
}
