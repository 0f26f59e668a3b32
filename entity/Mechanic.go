package entity

import (
	"strings"

	"gorm.io/gorm"
)

type MechanicStatus string

const (
	MechanicAvailable MechanicStatus = "available"
	MechanicBusy      MechanicStatus = "busy"
)

// Mechanic is the capability profile of a mechanic-position employee.
// Coordinators never get one, so there are no conditional fields to branch on.
type Mechanic struct {
	gorm.Model
	EmployeeID uint     `gorm:"uniqueIndex;not null" json:"employeeId"`
	Employee   Employee `json:"-"` // preload for join-date ordering / detail

	// comma-separated skill tags, e.g. "electrical,cooling"
	Specialization string         `json:"specialization"`
	Status         MechanicStatus `gorm:"not null;default:available" json:"status"`

	Assignments []Complaint `gorm:"foreignKey:AssignedMechanicID" json:"-"`
}

// HasSkill matches a skill tag case-insensitively. An empty tag matches any
// mechanic so general complaints can still be assigned.
func (m *Mechanic) HasSkill(tag string) bool {
	if strings.TrimSpace(tag) == "" {
		return true
	}
	want := strings.ToLower(strings.TrimSpace(tag))
	for _, s := range strings.Split(m.Specialization, ",") {
		if strings.ToLower(strings.TrimSpace(s)) == want {
			return true
		}
	}
	return false
}
