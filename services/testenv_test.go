package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cooksync/entity"
	"cooksync/pkg/cache"
	"cooksync/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// Each test gets its own named in-memory database so parallel tests and
// pooled connections cannot see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Meal{},
		&entity.UpcomingMeal{}, &entity.UpcomingMealLike{},
		&entity.Review{},
		&entity.MealRequest{},
		&entity.Payment{},
	))
	return db
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return cache.New(client, time.Minute)
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role, badge string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, Password: "x", Role: role, Badge: badge}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMeal(t *testing.T, db *gorm.DB, title, category string, price float64) *entity.Meal {
	t.Helper()
	m := &entity.Meal{
		Title:            title,
		Category:         category,
		Image:            "https://cdn.example.com/" + title + ".jpg",
		Ingredients:      entity.StringList{"salt"},
		Price:            price,
		DistributorName:  "Hostel Kitchen",
		DistributorEmail: "kitchen@example.com",
		PostTime:         time.Now(),
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newMealService(t *testing.T, db *gorm.DB) *MealService {
	t.Helper()
	return NewMealService(
		repository.NewMealRepository(db),
		repository.NewUserRepository(db),
		newTestCache(t),
	)
}
