package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ DB *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) Create(tx *gorm.DB, e *entity.Employee) error {
	return tx.Create(e).Error
}

func (r *EmployeeRepository) GetByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByUserID(userID uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("user_id = ?", userID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Employee{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *EmployeeRepository) List(position *entity.EmployeePosition, status *entity.EmployeeStatus) ([]entity.Employee, error) {
	q := r.DB.Model(&entity.Employee{})
	if position != nil {
		q = q.Where("position = ?", *position)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []entity.Employee
	err := q.Order("join_date ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", id).Updates(updates).Error
}

func (r *EmployeeRepository) SetStatus(id uint, status entity.EmployeeStatus) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", id).
		Update("status", status).Error
}

// SoftDelete hides the employee; complaint references stay intact for audit.
func (r *EmployeeRepository) SoftDelete(id uint) error {
	res := r.DB.Delete(&entity.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
