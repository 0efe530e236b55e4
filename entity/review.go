package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	MealID    uint      `gorm:"index;not null" json:"mealId"`
	MealTitle string    `json:"mealTitle"`
	UserEmail string    `gorm:"index" json:"userEmail"`
	UserName  string    `json:"userName"`
	Text      string    `gorm:"column:review;not null" json:"review"`
	PostedAt  time.Time `json:"createdAt"`
}
