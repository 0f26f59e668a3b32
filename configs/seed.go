package configs

import (
	"time"

	"backend/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		logrus.WithField("email", cfg.AdminEmail).Info("admin already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemo loads a small staff roster for local development.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Employee{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)

	staff := []struct {
		name, email    string
		position       entity.EmployeePosition
		specialization string
		joined         time.Time
	}{
		{"Asha Pillai", "asha@service.local", entity.PositionCoordinator, "", time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Ravi Menon", "ravi@service.local", entity.PositionMechanic, "electrical,cooling", time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"Arun Das", "arun@service.local", entity.PositionMechanic, "electrical", time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"Neha Raj", "neha@service.local", entity.PositionMechanic, "plumbing", time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, s := range staff {
		user := entity.User{
			Email:    s.email,
			Password: string(hash),
			Name:     s.name,
			Role:     string(s.position),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		emp := entity.Employee{
			Name:     s.name,
			Email:    s.email,
			Position: s.position,
			Status:   entity.EmployeeActive,
			JoinDate: s.joined,
			UserID:   user.ID,
		}
		if err := db.Create(&emp).Error; err != nil {
			return err
		}
		if s.position == entity.PositionMechanic {
			m := entity.Mechanic{
				EmployeeID:     emp.ID,
				Specialization: s.specialization,
				Status:         entity.MechanicAvailable,
			}
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
	}

	logrus.Info("demo staff seeded")
	return nil
}
