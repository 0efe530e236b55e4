package services

import (
	"testing"

	"cooksync/entity"
	"cooksync/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T, db *gorm.DB) *ReviewService {
	t.Helper()
	return NewReviewService(db, repository.NewReviewRepository(db), repository.NewMealRepository(db))
}

func TestReviewAddGates(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(t, db)
	meal := seedMeal(t, db, "Pasta Special", entity.CategoryLunch, 7.99)

	_, err := svc.Add(meal.ID, "", "Ana", "tasty")
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = svc.Add(meal.ID, "ana@example.com", "Ana", "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add(999, "ana@example.com", "Ana", "tasty")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Review{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestReviewAddIncrementsCount(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(t, db)
	meal := seedMeal(t, db, "Pasta Special", entity.CategoryLunch, 7.99)

	review, err := svc.Add(meal.ID, "ana@example.com", "Ana", " tasty ")
	require.NoError(t, err)
	assert.Equal(t, "tasty", review.Text)
	assert.Equal(t, meal.Title, review.MealTitle)

	var stored entity.Meal
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.Equal(t, int64(1), stored.ReviewCount)

	reviews, err := svc.ListForMeal(meal.ID, 0, 20)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
}

func TestReviewDeletePermissions(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(t, db)
	meal := seedMeal(t, db, "Pasta Special", entity.CategoryLunch, 7.99)

	review, err := svc.Add(meal.ID, "ana@example.com", "Ana", "tasty")
	require.NoError(t, err)

	err = svc.Delete(review.ID, "ben@example.com", entity.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(review.ID, "ana@example.com", entity.RoleUser))

	// Admin may remove anyone's review.
	review, err = svc.Add(meal.ID, "ana@example.com", "Ana", "tasty again")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(review.ID, "admin@example.com", entity.RoleAdmin))

	err = svc.Delete(review.ID, "admin@example.com", entity.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewDeleteDecrementsCount(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(t, db)
	meal := seedMeal(t, db, "Pasta Special", entity.CategoryLunch, 7.99)

	first, err := svc.Add(meal.ID, "ana@example.com", "Ana", "tasty")
	require.NoError(t, err)
	second, err := svc.Add(meal.ID, "ben@example.com", "Ben", "decent")
	require.NoError(t, err)

	var stored entity.Meal
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.Equal(t, int64(2), stored.ReviewCount)

	require.NoError(t, svc.Delete(first.ID, "ana@example.com", entity.RoleUser))
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.Equal(t, int64(1), stored.ReviewCount)

	require.NoError(t, svc.Delete(second.ID, "admin@example.com", entity.RoleAdmin))
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.Equal(t, int64(0), stored.ReviewCount)
}

func TestReviewListAllSearch(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(t, db)
	pasta := seedMeal(t, db, "Pasta Special", entity.CategoryLunch, 7.99)
	curry := seedMeal(t, db, "Beef Curry", entity.CategoryDinner, 12.00)

	_, err := svc.Add(pasta.ID, "ana@example.com", "Ana", "good")
	require.NoError(t, err)
	_, err = svc.Add(curry.ID, "ben@example.com", "Ben", "hot")
	require.NoError(t, err)

	reviews, total, err := svc.ListAll("pasta", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Pasta Special", reviews[0].MealTitle)
}
