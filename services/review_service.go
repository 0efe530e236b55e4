package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cooksync/entity"
	"cooksync/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB       *gorm.DB
	repo     *repository.ReviewRepository
	mealRepo *repository.MealRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, mealRepo *repository.MealRepository) *ReviewService {
	return &ReviewService{DB: db, repo: repo, mealRepo: mealRepo}
}

// Add validates before anything is written: no identity, no request; empty
// text, no request. Insert and reviewCount bump share one transaction.
func (s *ReviewService) Add(mealID uint, email, name, text string) (*entity.Review, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: review text is required", ErrValidation)
	}

	meal, err := s.mealRepo.FindByID(mealID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		MealID:    meal.ID,
		MealTitle: meal.Title,
		UserEmail: email,
		UserName:  name,
		Text:      text,
		PostedAt:  time.Now(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(tx, review); err != nil {
			return err
		}
		return s.mealRepo.IncrementReviewCount(tx, meal.ID)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListForMeal(mealID uint, skip, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.ListByMeal(mealID, skip, limit)
}

func (s *ReviewService) ListForUser(email string) ([]entity.Review, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}
	return s.repo.ListByUser(email)
}

func (s *ReviewService) ListAll(search string, skip, limit int) ([]entity.Review, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.ListAll(search, skip, limit)
}

// Delete is allowed for the review owner and admins. The meal's reviewCount
// follows the delete in the same transaction, mirroring Add.
func (s *ReviewService) Delete(id uint, requesterEmail, requesterRole string) error {
	review, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if requesterRole != entity.RoleAdmin && review.UserEmail != requesterEmail {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(tx, id); err != nil {
			return err
		}
		return s.mealRepo.DecrementReviewCount(tx, review.MealID)
	})
}
