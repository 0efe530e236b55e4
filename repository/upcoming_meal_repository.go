package repository

import (
	"errors"

	"cooksync/entity"

	"gorm.io/gorm"
)

type UpcomingMealRepository struct{ DB *gorm.DB }

func NewUpcomingMealRepository(db *gorm.DB) *UpcomingMealRepository {
	return &UpcomingMealRepository{DB: db}
}

func (r *UpcomingMealRepository) List(sort string, skip, limit int) ([]entity.UpcomingMeal, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.UpcomingMeal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "likes DESC"
	if sort == "postTime" {
		order = "post_time DESC"
	}

	var meals []entity.UpcomingMeal
	err := r.DB.Order(order).Offset(skip).Limit(limit).Find(&meals).Error
	return meals, total, err
}

func (r *UpcomingMealRepository) FindByID(tx *gorm.DB, id uint) (*entity.UpcomingMeal, error) {
	var m entity.UpcomingMeal
	if err := tx.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *UpcomingMealRepository) Create(m *entity.UpcomingMeal) error {
	return r.DB.Create(m).Error
}

// HasLiked reports whether the identity already sits in the likedUsers set.
func (r *UpcomingMealRepository) HasLiked(tx *gorm.DB, mealID uint, email string) (bool, error) {
	var like entity.UpcomingMealLike
	err := tx.Where("upcoming_meal_id = ? AND user_email = ?", mealID, email).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UpcomingMealRepository) AddLike(tx *gorm.DB, mealID uint, email string) error {
	if err := tx.Create(&entity.UpcomingMealLike{UpcomingMealID: mealID, UserEmail: email}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.UpcomingMeal{}).Where("id = ?", mealID).
		Update("likes", gorm.Expr("likes + 1")).Error
}

// Promote moves an upcoming meal into the meals table and removes it, with
// its likes, from the upcoming set.
func (r *UpcomingMealRepository) Promote(tx *gorm.DB, m *entity.UpcomingMeal) (*entity.Meal, error) {
	meal := &entity.Meal{
		Title:            m.Title,
		Category:         m.Category,
		Image:            m.Image,
		Ingredients:      m.Ingredients,
		Description:      m.Description,
		Price:            m.Price,
		Likes:            m.Likes,
		DistributorName:  m.DistributorName,
		DistributorEmail: m.DistributorEmail,
		PostTime:         m.PostTime,
	}
	if err := tx.Create(meal).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("upcoming_meal_id = ?", m.ID).Delete(&entity.UpcomingMealLike{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&entity.UpcomingMeal{}, m.ID).Error; err != nil {
		return nil, err
	}
	return meal, nil
}
