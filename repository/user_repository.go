package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users/products tables only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByEmail resolves a registered email. An unknown email is a normal
// branch for intake, so it returns (nil, nil) instead of an error.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// ---------------- Products (purchases owned by a user) ----------------

func (r *UserRepository) AddProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *UserRepository) ListProducts(userID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&products).Error
	return products, err
}

// GetProductForUser loads a product only if this user owns it.
func (r *UserRepository) GetProductForUser(userID, productID uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("id = ? AND user_id = ?", productID, userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
