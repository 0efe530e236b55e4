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

const defaultPageSize = 9

type MealService struct {
	repo     *repository.MealRepository
	userRepo *repository.UserRepository
	cache    *cache.Cache
}

func NewMealService(repo *repository.MealRepository, userRepo *repository.UserRepository, c *cache.Cache) *MealService {
	return &MealService{repo: repo, userRepo: userRepo, cache: c}
}

// List applies the AND-composed filters and one skip/limit window. The
// unfiltered first page is served from redis when warm; every meal mutation
// drops that key.
func (s *MealService) List(ctx context.Context, f repository.MealFilter) ([]entity.Meal, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = defaultPageSize
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	if f.IsZero() && f.Skip == 0 && s.cache != nil {
		if meals, ok := s.cache.GetMealList(ctx); ok {
			total := int64(len(meals))
			if f.Limit < len(meals) {
				meals = meals[:f.Limit]
			}
			return meals, total, nil
		}
	}

	meals, total, err := s.repo.List(f)
	if err != nil {
		return nil, 0, err
	}

	if f.IsZero() && f.Skip == 0 && s.cache != nil && total == int64(len(meals)) {
		_ = s.cache.SetMealList(ctx, meals)
	}
	return meals, total, nil
}

func (s *MealService) Get(id uint) (*entity.Meal, error) {
	m, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

// Like records one like per identity. The redis marker is checked before any
// row is touched, so a repeat like performs zero writes.
func (s *MealService) Like(ctx context.Context, mealID uint, email string) (*entity.Meal, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}

	key := s.cache.LikeMarkerKey(mealID, email)
	liked, err := s.cache.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, ErrAlreadyLiked
	}

	if _, err := s.Get(mealID); err != nil {
		return nil, err
	}

	if err := s.repo.IncrementLikes(mealID); err != nil {
		return nil, err
	}
	if err := s.cache.SetMarker(ctx, key); err != nil {
		return nil, err
	}
	_ = s.cache.InvalidateMealList(ctx)

	return s.Get(mealID)
}

type MealInput struct {
	Title       string            `json:"title" binding:"required"`
	Category    string            `json:"category" binding:"required"`
	Image       string            `json:"image"`
	Ingredients entity.StringList `json:"ingredients"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
}

func (in *MealInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if strings.TrimSpace(in.Image) == "" {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}

// Create adds a meal with the distributor snapshot taken from the admin who
// posted it.
func (s *MealService) Create(ctx context.Context, in MealInput, distributorEmail string) (*entity.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	distributorName := distributorEmail
	if u, err := s.userRepo.FindByEmail(distributorEmail); err == nil {
		distributorName = u.Name
	}

	meal := &entity.Meal{
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
	_ = s.cache.InvalidateMealList(ctx)
	return meal, nil
}

func (s *MealService) Update(ctx context.Context, id uint, in MealInput) (*entity.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"title":       strings.TrimSpace(in.Title),
		"category":    in.Category,
		"image":       in.Image,
		"ingredients": in.Ingredients,
		"description": in.Description,
		"price":       in.Price,
	}
	if err := s.repo.Update(id, fields); err != nil {
		return nil, err
	}
	_ = s.cache.InvalidateMealList(ctx)
	return s.Get(id)
}

func (s *MealService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	_ = s.cache.InvalidateMealList(ctx)
	return nil
}
