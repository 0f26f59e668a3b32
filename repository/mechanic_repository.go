package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MechanicRepository struct{ DB *gorm.DB }

func NewMechanicRepository(db *gorm.DB) *MechanicRepository {
	return &MechanicRepository{DB: db}
}

func (r *MechanicRepository) GetByID(id uint) (*entity.Mechanic, error) {
	var m entity.Mechanic
	if err := r.DB.Preload("Employee").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MechanicRepository) GetByEmployeeID(employeeID uint) (*entity.Mechanic, error) {
	var m entity.Mechanic
	if err := r.DB.Where("employee_id = ?", employeeID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MechanicRepository) Create(tx *gorm.DB, m *entity.Mechanic) error {
	return tx.Create(m).Error
}

// ListAvailable returns available mechanics of active employees in the fixed
// assignment order: earliest join date first, employee id as the tie-break.
// Callers must not re-sort — repeated assignment runs over the same snapshot
// have to pick the same mechanic.
func (r *MechanicRepository) ListAvailable() ([]entity.Mechanic, error) {
	var out []entity.Mechanic
	err := r.DB.Preload("Employee").
		Joins("JOIN employees e ON e.id = mechanics.employee_id").
		Where("mechanics.status = ? AND e.status = ? AND e.deleted_at IS NULL",
			entity.MechanicAvailable, entity.EmployeeActive).
		Order("e.join_date ASC, e.id ASC").
		Find(&out).Error
	return out, err
}

func (r *MechanicRepository) List() ([]entity.Mechanic, error) {
	var out []entity.Mechanic
	err := r.DB.Preload("Employee").Order("id ASC").Find(&out).Error
	return out, err
}

// ClaimAvailable flips available→busy only if the mechanic is still
// available. RowsAffected == 0 means another assignment claimed it first.
func (r *MechanicRepository) ClaimAvailable(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&entity.Mechanic{}).
		Where("id = ? AND status = ?", id, entity.MechanicAvailable).
		Update("status", entity.MechanicBusy)
	return res.RowsAffected, res.Error
}

// Release returns a busy mechanic to the pool.
func (r *MechanicRepository) Release(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Mechanic{}).
		Where("id = ? AND status = ?", id, entity.MechanicBusy).
		Update("status", entity.MechanicAvailable).Error
}

func (r *MechanicRepository) UpdateSpecialization(id uint, specialization string) error {
	return r.DB.Model(&entity.Mechanic{}).Where("id = ?", id).
		Update("specialization", specialization).Error
}

// HasOpenAssignment reports whether any non-terminal complaint is bound to
// this mechanic.
func (r *MechanicRepository) HasOpenAssignment(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Complaint{}).
		Where("assigned_mechanic_id = ? AND status IN ?", id,
			[]entity.ComplaintStatus{entity.StatusPending, entity.StatusInProgress}).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
