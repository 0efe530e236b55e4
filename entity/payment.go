package entity

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	UserEmail     string    `gorm:"index" json:"userEmail"`
	Package       string    `json:"package"`
	Price         float64   `json:"price"`
	TransactionID string    `gorm:"uniqueIndex" json:"transactionId"`
	PaidAt        time.Time `json:"date"`
}
