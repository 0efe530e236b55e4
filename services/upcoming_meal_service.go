package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cooksync/entity"
	"cooksync/pkg/cache"
	"cooksync/repository"

	"gorm.io/gorm"
)

// Liking upcoming meals is a premium perk.
const upcomingLikeMinBadge = entity.BadgeSilver

type UpcomingMealService struct {
	DB               *gorm.DB
	repo             *repository.UpcomingMealRepository
	cache            *cache.Cache
	publishThreshold int64
}

func NewUpcomingMealService(db *gorm.DB, repo *repository.UpcomingMealRepository, c *cache.Cache, publishThreshold int64) *UpcomingMealService {
	return &UpcomingMealService{DB: db, repo: repo, cache: c, publishThreshold: publishThreshold}
}

func (s *UpcomingMealService) List(sort string, skip, limit int) ([]entity.UpcomingMeal, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(sort, skip, limit)
}

type UpcomingMealInput struct {
	Title       string            `json:"title" binding:"required"`
	Category    string            `json:"category" binding:"required"`
	Image       string            `json:"image"`
	Ingredients entity.StringList `json:"ingredients"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
}

func (s *UpcomingMealService) Create(in UpcomingMealInput, distributorName, distributorEmail string) (*entity.UpcomingMeal, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: title and category are required", ErrValidation)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	meal := &entity.UpcomingMeal{
		Title:            strings.TrimSpace(in.Title),
		Category:         in.Category,
		Image:            in.Image,
		Ingredients:      in.Ingredients,
		Description:      in.Description,
		Price:            in.Price,
		DistributorName:  distributorName,
		DistributorEmail: distributorEmail,
		PostTime:         time.Now(),
	}
	if err := s.repo.Create(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// Like adds the identity to the likedUsers set and bumps the count. When the
// count reaches the publish threshold the meal is promoted in the same
// transaction; a published meal is gone from the upcoming list, so further
// likes see ErrNotFound.
func (s *UpcomingMealService) Like(ctx context.Context, mealID uint, email, badge string) (*entity.UpcomingMeal, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}
	if !entity.BadgeAtLeast(badge, upcomingLikeMinBadge) {
		return nil, ErrMembershipRequired
	}

	var (
		out      *entity.UpcomingMeal
		promoted bool
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		meal, err := s.repo.FindByID(tx, mealID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		liked, err := s.repo.HasLiked(tx, mealID, email)
		if err != nil {
			return err
		}
		if liked {
			return ErrAlreadyLiked
		}

		if err := s.repo.AddLike(tx, mealID, email); err != nil {
			return err
		}
		meal.Likes++

		if meal.Likes >= s.publishThreshold {
			if _, err := s.repo.Promote(tx, meal); err != nil {
				return err
			}
			promoted = true
		}
		out = meal
		return nil
	})
	if err != nil {
		return nil, err
	}
	if promoted {
		_ = s.cache.InvalidateMealList(ctx)
	}
	return out, nil
}

// Publish is the admin force-promotion, threshold or not. Promotion adds a
// row to the meals table, so the cached meal list is dropped.
func (s *UpcomingMealService) Publish(ctx context.Context, mealID uint) (*entity.Meal, error) {
	var out *entity.Meal
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		meal, err := s.repo.FindByID(tx, mealID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		promoted, err := s.repo.Promote(tx, meal)
		if err != nil {
			return err
		}
		out = promoted
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.InvalidateMealList(ctx)
	return out, nil
}
