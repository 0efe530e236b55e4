package repository

import (
	"cooksync/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) ListByUser(email string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("user_email = ?", email).
		Order("paid_at DESC").
		Find(&payments).Error
	return payments, err
}
