package services

import (
	"errors"
	"time"

	"cooksync/entity"
	"cooksync/repository"

	"gorm.io/gorm"
)

type RequestService struct {
	DB       *gorm.DB
	repo     *repository.RequestRepository
	mealRepo *repository.MealRepository
	userRepo *repository.UserRepository
	minBadge string
}

func NewRequestService(db *gorm.DB, repo *repository.RequestRepository, mealRepo *repository.MealRepository, userRepo *repository.UserRepository, minBadge string) *RequestService {
	return &RequestService{DB: db, repo: repo, mealRepo: mealRepo, userRepo: userRepo, minBadge: minBadge}
}

// Create gates on identity and badge tier before touching storage, then
// snapshots requester and meal into a Pending request. The badge comes from
// the users table, not the token, so a fresh upgrade counts immediately.
func (s *RequestService) Create(mealID uint, email string) (*entity.MealRequest, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthRequired
	}
	if err != nil {
		return nil, err
	}
	if !entity.BadgeAtLeast(user.Badge, s.minBadge) {
		return nil, ErrMembershipRequired
	}

	meal, err := s.mealRepo.FindByID(mealID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	req := &entity.MealRequest{
		UserEmail:       user.Email,
		UserName:        user.Name,
		MealID:          meal.ID,
		MealTitle:       meal.Title,
		DistributorName: meal.DistributorName,
		Status:          entity.RequestPending,
		RequestTime:     time.Now(),
	}
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Cancel lets a requester withdraw their own request while it is Pending.
func (s *RequestService) Cancel(id uint, email string) error {
	if email == "" {
		return ErrAuthRequired
	}

	req, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if req.UserEmail != email {
		return ErrForbidden
	}
	if req.Status != entity.RequestPending {
		return ErrConflict
	}
	return s.repo.Delete(id)
}

// Serve is the admin transition out of Pending. The guarded update means a
// double-fired serve loses cleanly.
func (s *RequestService) Serve(id uint, toStatus string) (*entity.MealRequest, error) {
	switch toStatus {
	case entity.RequestApproved, entity.RequestDelivered, entity.RequestRejected:
	default:
		return nil, ErrConflict
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.repo.UpdateStatusGuard(tx, id, entity.RequestPending, toStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			if _, err := s.repo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *RequestService) List(search, status string, skip, limit int) ([]entity.MealRequest, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(search, status, skip, limit)
}

func (s *RequestService) ListForUser(email string) ([]entity.MealRequest, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}
	return s.repo.ListByUser(email)
}
