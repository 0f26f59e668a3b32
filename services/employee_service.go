package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployeeService struct {
	DB       *gorm.DB
	Repo     *repository.EmployeeRepository
	MechRepo *repository.MechanicRepository
	UserRepo *repository.UserRepository
}

func NewEmployeeService(
	db *gorm.DB,
	repo *repository.EmployeeRepository,
	mechRepo *repository.MechanicRepository,
	userRepo *repository.UserRepository,
) *EmployeeService {
	return &EmployeeService{DB: db, Repo: repo, MechRepo: mechRepo, UserRepo: userRepo}
}

type CreateEmployeeInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	Position    string
	// skill tags, mechanics only
	Specialization string
	JoinDate       *time.Time
}

// Create registers an employee with a login account. Mechanic-position
// employees also get a Mechanic profile so they can enter the assignment
// pool; coordinators never carry one.
func (s *EmployeeService) Create(in *CreateEmployeeInput) (*entity.Employee, error) {
	verr := &ValidationError{}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		verr.add("email", "is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "is required")
	}
	if len(in.Password) < 6 {
		verr.add("password", "must be at least 6 characters")
	}
	position, ok := entity.ParseEmployeePosition(in.Position)
	if !ok {
		verr.add("position", "must be coordinator or mechanic")
	}
	if verr.has() {
		return nil, verr
	}

	if count, err := s.Repo.CountByEmail(email); err != nil {
		return nil, persistErr("check email", err)
	} else if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	joinDate := time.Now()
	if in.JoinDate != nil {
		joinDate = *in.JoinDate
	}

	emp := entity.Employee{
		Name:        strings.TrimSpace(in.Name),
		Email:       email,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		Position:    position,
		Status:      entity.EmployeeActive,
		JoinDate:    joinDate,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		user := entity.User{
			Email:    email,
			Password: string(hashed),
			Name:     emp.Name,
			Role:     string(position),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		emp.UserID = user.ID

		if err := s.Repo.Create(tx, &emp); err != nil {
			return err
		}

		if position == entity.PositionMechanic {
			m := entity.Mechanic{
				EmployeeID:     emp.ID,
				Specialization: strings.ToLower(strings.TrimSpace(in.Specialization)),
				Status:         entity.MechanicAvailable,
			}
			return s.MechRepo.Create(tx, &m)
		}
		return nil
	})
	if err != nil {
		return nil, persistErr("create employee", err)
	}
	return &emp, nil
}

func (s *EmployeeService) List(position *entity.EmployeePosition, status *entity.EmployeeStatus) ([]entity.Employee, error) {
	items, err := s.Repo.List(position, status)
	if err != nil {
		return nil, persistErr("list employees", err)
	}
	return items, nil
}

func (s *EmployeeService) Get(id uint) (*entity.Employee, error) {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("load employee", err)
	}
	return e, nil
}

func (s *EmployeeService) Update(id uint, updates map[string]any) (*entity.Employee, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateFields(id, updates); err != nil {
		return nil, persistErr("update employee", err)
	}
	return s.Get(id)
}

// Deactivate pulls an employee out of service without touching history. A
// mechanic with an open assignment cannot be deactivated.
func (s *EmployeeService) Deactivate(id uint) error {
	e, err := s.Get(id)
	if err != nil {
		return err
	}
	if e.Position == entity.PositionMechanic {
		if m, err := s.MechRepo.GetByEmployeeID(e.ID); err == nil {
			open, err := s.MechRepo.HasOpenAssignment(m.ID)
			if err != nil {
				return persistErr("check assignments", err)
			}
			if open {
				return errors.New("cannot deactivate a mechanic with open assignments")
			}
		}
	}
	if err := s.Repo.SetStatus(id, entity.EmployeeInactive); err != nil {
		return persistErr("deactivate employee", err)
	}
	return nil
}

// SoftDelete never hard-deletes; complaint references stay valid for audit.
func (s *EmployeeService) SoftDelete(id uint) error {
	if err := s.Deactivate(id); err != nil {
		return err
	}
	if err := s.Repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistErr("delete employee", err)
	}
	return nil
}
