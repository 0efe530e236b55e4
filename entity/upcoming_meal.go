package entity

import (
	"time"

	"gorm.io/gorm"
)

// UpcomingMeal is a candidate meal. Once its like count reaches the publish
// threshold (or an admin force-publishes it) the row is promoted into meals
// and removed here along with its likes.
type UpcomingMeal struct {
	gorm.Model
	Title            string     `gorm:"not null" json:"title"`
	Category         string     `gorm:"index" json:"category"`
	Image            string     `json:"image"`
	Ingredients      StringList `gorm:"type:text" json:"ingredients"`
	Description      string     `json:"description"`
	Price            float64    `json:"price"`
	Likes            int64      `gorm:"default:0" json:"likes"`
	DistributorName  string     `json:"distributorName"`
	DistributorEmail string     `json:"distributorEmail"`
	PostTime         time.Time  `json:"postTime"`

	LikedUsers []UpcomingMealLike `gorm:"foreignKey:UpcomingMealID" json:"-"`
}

// One row per (meal, user); the unique index is the likedUsers set.
type UpcomingMealLike struct {
	gorm.Model
	UpcomingMealID uint   `gorm:"uniqueIndex:uniq_upcoming_like" json:"upcomingMealId"`
	UserEmail      string `gorm:"uniqueIndex:uniq_upcoming_like" json:"userEmail"`
}
