package repository

import (
	"strings"

	"cooksync/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Search matches name or email substrings for the admin user table.
func (r *UserRepository) Search(q string, skip, limit int) ([]entity.User, int64, error) {
	query := r.DB.Model(&entity.User{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := query.Order("id DESC").Offset(skip).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) UpdateRole(id uint, role string) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) UpdateBadge(tx *gorm.DB, email, badge string) error {
	return tx.Model(&entity.User{}).Where("email = ?", email).Update("badge", badge).Error
}
