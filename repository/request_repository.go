package repository

import (
	"strings"

	"cooksync/entity"

	"gorm.io/gorm"
)

type RequestRepository struct{ DB *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{DB: db} }

// List backs the admin serve table; search matches requester name or email.
func (r *RequestRepository) List(search, status string, skip, limit int) ([]entity.MealRequest, int64, error) {
	q := r.DB.Model(&entity.MealRequest{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_email) LIKE ? OR LOWER(user_name) LIKE ?", like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []entity.MealRequest
	err := q.Order("request_time DESC").Offset(skip).Limit(limit).Find(&requests).Error
	return requests, total, err
}

func (r *RequestRepository) ListByUser(email string) ([]entity.MealRequest, error) {
	var requests []entity.MealRequest
	err := r.DB.Where("user_email = ?", email).
		Order("request_time DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) Create(req *entity.MealRequest) error {
	return r.DB.Create(req).Error
}

func (r *RequestRepository) FindByID(id uint) (*entity.MealRequest, error) {
	var req entity.MealRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatusGuard flips status only when the row is still in `from`, so two
// concurrent serves cannot both fire. Returns rows affected.
func (r *RequestRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.Model(&entity.MealRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *RequestRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MealRequest{}, id).Error
}

func (r *RequestRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MealRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
