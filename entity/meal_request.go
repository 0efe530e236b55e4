package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestPending   = "Pending"
	RequestApproved  = "Approved"
	RequestDelivered = "Delivered"
	RequestRejected  = "Rejected"
)

type MealRequest struct {
	gorm.Model
	UserEmail       string    `gorm:"index" json:"userEmail"`
	UserName        string    `json:"userName"`
	MealID          uint      `gorm:"index;not null" json:"mealId"`
	MealTitle       string    `json:"mealTitle"`
	DistributorName string    `json:"distributorName"`
	Status          string    `gorm:"not null;default:Pending" json:"status"`
	RequestTime     time.Time `json:"requestTime"`
}
