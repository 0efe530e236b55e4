package repository

import (
	"strings"

	"cooksync/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) ListByMeal(mealID uint, skip, limit int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("meal_id = ?", mealID).
		Order("posted_at DESC").
		Offset(skip).Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListByUser(email string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("user_email = ?", email).
		Order("posted_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListAll backs the admin all-reviews table; search matches the meal title.
func (r *ReviewRepository) ListAll(search string, skip, limit int) ([]entity.Review, int64, error) {
	q := r.DB.Model(&entity.Review{})
	if search != "" {
		q = q.Where("LOWER(meal_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []entity.Review
	err := q.Order("posted_at DESC").Offset(skip).Limit(limit).Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Review{}, id).Error
}
