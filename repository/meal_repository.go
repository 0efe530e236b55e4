package repository

import (
	"strings"

	"cooksync/entity"

	"gorm.io/gorm"
)

// MealFilter carries the list query params. All predicates compose with AND;
// zero values mean "no filter".
type MealFilter struct {
	Search   string
	Category string
	PriceMin *float64
	PriceMax *float64
	Skip     int
	Limit    int
	Sort     string
}

func (f MealFilter) IsZero() bool {
	return f.Search == "" && (f.Category == "" || f.Category == "All") &&
		f.PriceMin == nil && f.PriceMax == nil && f.Sort == ""
}

type MealRepository struct{ DB *gorm.DB }

func NewMealRepository(db *gorm.DB) *MealRepository { return &MealRepository{DB: db} }

func (r *MealRepository) applyFilter(f MealFilter) *gorm.DB {
	q := r.DB.Model(&entity.Meal{})
	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if f.Category != "" && f.Category != "All" {
		q = q.Where("category = ?", f.Category)
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	return q
}

// List returns one window of the filtered set plus the total matching count.
func (r *MealRepository) List(f MealFilter) ([]entity.Meal, int64, error) {
	q := r.applyFilter(f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "post_time DESC"
	switch f.Sort {
	case "likes":
		order = "likes DESC"
	case "reviews":
		order = "review_count DESC"
	case "price":
		order = "price ASC"
	}

	var meals []entity.Meal
	err := q.Order(order).Offset(f.Skip).Limit(f.Limit).Find(&meals).Error
	return meals, total, err
}

func (r *MealRepository) FindByID(id uint) (*entity.Meal, error) {
	var m entity.Meal
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) Create(m *entity.Meal) error {
	return r.DB.Create(m).Error
}

func (r *MealRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Meal{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MealRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Meal{}, id).Error
}

func (r *MealRepository) IncrementLikes(id uint) error {
	return r.DB.Model(&entity.Meal{}).Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1")).Error
}

func (r *MealRepository) IncrementReviewCount(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Meal{}).Where("id = ?", id).
		Update("review_count", gorm.Expr("review_count + 1")).Error
}

func (r *MealRepository) DecrementReviewCount(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Meal{}).Where("id = ? AND review_count > 0", id).
		Update("review_count", gorm.Expr("review_count - 1")).Error
}
