package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Membership tiers, lowest to highest. Checkout upgrades the badge.
const (
	BadgeNone     = "None"
	BadgeBronze   = "Bronze"
	BadgeSilver   = "Silver"
	BadgeGold     = "Gold"
	BadgePlatinum = "Platinum"
)

var badgeRank = map[string]int{
	BadgeNone:     0,
	BadgeBronze:   1,
	BadgeSilver:   2,
	BadgeGold:     3,
	BadgePlatinum: 4,
}

// BadgeAtLeast reports whether badge meets the min tier. Unknown badges never
// qualify.
func BadgeAtLeast(badge, min string) bool {
	r, ok := badgeRank[badge]
	if !ok {
		return false
	}
	return r >= badgeRank[min]
}

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Photo    string `json:"photo"`
	Role     string `gorm:"not null;default:user" json:"role"`
	Badge    string `gorm:"not null;default:Bronze" json:"badge"`

	Reviews  []Review  `gorm:"foreignKey:UserEmail;references:Email" json:"-"`
	Payments []Payment `gorm:"foreignKey:UserEmail;references:Email" json:"-"`
}
