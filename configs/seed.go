package configs

import (
	"log"
	"time"

	"cooksync/entity"

	"golang.org/x/crypto/bcrypt"
)

// First-boot admin account from env.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
		Badge:    entity.BadgePlatinum,
	}
	return db.Create(&admin).Error
}

// Demo meals so a fresh install has something to browse.
func SeedMeals() error {
	var count int64
	db.Model(&entity.Meal{}).Count(&count)
	if count > 0 {
		return nil
	}

	meals := []entity.Meal{
		{
			Title:            "Masala Omelette",
			Category:         entity.CategoryBreakfast,
			Image:            "https://cdn.cooksync.app/seed/masala-omelette.jpg",
			Ingredients:      entity.StringList{"eggs", "onion", "green chili", "coriander"},
			Description:      "Spiced three-egg omelette served with toast.",
			Price:            4.50,
			Rating:           4.2,
			DistributorName:  "Hostel Kitchen",
			DistributorEmail: "kitchen@cooksync.app",
			PostTime:         time.Now(),
		},
		{
			Title:            "Pasta Special",
			Category:         entity.CategoryLunch,
			Image:            "https://cdn.cooksync.app/seed/pasta-special.jpg",
			Ingredients:      entity.StringList{"penne", "tomato", "basil", "parmesan"},
			Description:      "House pasta in tomato-basil sauce.",
			Price:            7.99,
			Rating:           4.6,
			DistributorName:  "Hostel Kitchen",
			DistributorEmail: "kitchen@cooksync.app",
			PostTime:         time.Now(),
		},
		{
			Title:            "Grilled Chicken Bowl",
			Category:         entity.CategoryDinner,
			Image:            "https://cdn.cooksync.app/seed/chicken-bowl.jpg",
			Ingredients:      entity.StringList{"chicken", "rice", "broccoli"},
			Description:      "Char-grilled chicken over seasoned rice.",
			Price:            9.25,
			Rating:           4.4,
			DistributorName:  "Hostel Kitchen",
			DistributorEmail: "kitchen@cooksync.app",
			PostTime:         time.Now(),
		},
	}
	return db.Create(&meals).Error
}
