package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
)

// StringList stores a []string as a JSON text column so it works on both
// postgres and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

type Meal struct {
	gorm.Model
	Title            string     `gorm:"not null" json:"title"`
	Category         string     `gorm:"index" json:"category"`
	Image            string     `json:"image"`
	Ingredients      StringList `gorm:"type:text" json:"ingredients"`
	Description      string     `json:"description"`
	Price            float64    `json:"price"`
	Rating           float64    `json:"rating"`
	Likes            int64      `gorm:"default:0" json:"likes"`
	ReviewCount      int64      `gorm:"default:0" json:"reviewCount"`
	DistributorName  string     `json:"distributorName"`
	DistributorEmail string     `json:"distributorEmail"`
	PostTime         time.Time  `json:"postTime"`

	MealReviews []Review      `gorm:"foreignKey:MealID" json:"-"`
	Requests    []MealRequest `gorm:"foreignKey:MealID" json:"-"`
}
