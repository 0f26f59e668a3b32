package repository

import (
	"errors"
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	DB *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{DB: db}
}

// ---------------- Complaints (CRUD) ----------------

func (r *ComplaintRepository) Create(tx *gorm.DB, c *entity.Complaint) error {
	return tx.Create(c).Error
}

func (r *ComplaintRepository) GetByID(id uint) (*entity.Complaint, error) {
	var c entity.Complaint
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) GetByCode(code string) (*entity.Complaint, error) {
	var c entity.Complaint
	if err := r.DB.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByIdempotencyKey returns (nil, nil) when no complaint carries the key.
func (r *ComplaintRepository) GetByIdempotencyKey(key string) (*entity.Complaint, error) {
	var c entity.Complaint
	if err := r.DB.Where("idempotency_key = ?", key).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) GetForCustomer(email string, id uint) (*entity.Complaint, error) {
	var c entity.Complaint
	if err := r.DB.Where("id = ? AND customer_email = ?", id, email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListFilter narrows active-complaint listings. Soft-deleted rows are always
// excluded by gorm's DeletedAt scope.
type ListFilter struct {
	Status        *entity.ComplaintStatus
	Priority      *entity.ComplaintPriority
	MechanicID    *uint
	CustomerEmail string
	Page          int
	Limit         int
}

func (r *ComplaintRepository) List(f ListFilter) ([]entity.Complaint, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.Complaint{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}
	if f.MechanicID != nil {
		q = q.Where("assigned_mechanic_id = ?", *f.MechanicID)
	}
	if f.CustomerEmail != "" {
		q = q.Where("customer_email = ?", f.CustomerEmail)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Complaint
	err := q.Order("id DESC").Limit(f.Limit).Offset((f.Page - 1) * f.Limit).Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard moves the status only if the row is still in `from`.
// RowsAffected == 0 means the transition lost a race or was never legal;
// the caller decides which. Also bumps updated_at.
func (r *ComplaintRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to entity.ComplaintStatus) (int64, error) {
	res := tx.Model(&entity.Complaint{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *ComplaintRepository) SetResolvedAt(tx *gorm.DB, id uint, at time.Time) error {
	return tx.Model(&entity.Complaint{}).Where("id = ?", id).
		Update("resolved_at", &at).Error
}

// AssignMechanic binds a mechanic only while the complaint is unassigned.
func (r *ComplaintRepository) AssignMechanic(tx *gorm.DB, id, mechanicID uint) (int64, error) {
	res := tx.Model(&entity.Complaint{}).
		Where("id = ? AND assigned_mechanic_id IS NULL", id).
		Update("assigned_mechanic_id", mechanicID)
	return res.RowsAffected, res.Error
}

func (r *ComplaintRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Complaint{}).Where("id = ?", id).Updates(updates).Error
}

// SoftDelete hides the complaint from active queries; history stays for audit.
func (r *ComplaintRepository) SoftDelete(id uint) error {
	res := r.DB.Delete(&entity.Complaint{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------------- Status events (append-only ledger) ----------------

func (r *ComplaintRepository) AppendEvent(tx *gorm.DB, ev *entity.StatusEvent) error {
	return tx.Create(ev).Error
}

func (r *ComplaintRepository) ListEvents(complaintID uint) ([]entity.StatusEvent, error) {
	var events []entity.StatusEvent
	err := r.DB.Where("complaint_id = ?", complaintID).
		Order("id ASC").
		Find(&events).Error
	return events, err
}

// ---------------- Dashboard helpers ----------------

func (r *ComplaintRepository) CountByStatus(status entity.ComplaintStatus) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Complaint{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}
