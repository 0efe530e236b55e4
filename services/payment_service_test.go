package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cooksync/entity"
	"cooksync/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCharger struct {
	calls int
	err   error
}

func (f *fakeCharger) Charge(ctx context.Context, paymentMethodID string, amountCents int64, description string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("txn_%d", f.calls), nil
}

func newPaymentService(t *testing.T, db *gorm.DB, charger Charger) *PaymentService {
	t.Helper()
	return NewPaymentService(db, repository.NewPaymentRepository(db), repository.NewUserRepository(db), charger)
}

func TestCheckoutInvalidPackage(t *testing.T) {
	db := newTestDB(t)
	charger := &fakeCharger{}
	svc := newPaymentService(t, db, charger)
	seedUser(t, db, "Ana", "ana@example.com", entity.RoleUser, entity.BadgeBronze)

	_, err := svc.Checkout(context.Background(), "ana@example.com", "Diamond", "pm_123")
	assert.ErrorIs(t, err, ErrInvalidPackage)
	assert.Equal(t, 0, charger.calls)
}

func TestCheckoutSuccessUpgradesBadge(t *testing.T) {
	db := newTestDB(t)
	charger := &fakeCharger{}
	svc := newPaymentService(t, db, charger)
	seedUser(t, db, "Ana", "ana@example.com", entity.RoleUser, entity.BadgeBronze)

	payment, err := svc.Checkout(context.Background(), "ana@example.com", "Gold", "pm_123")
	require.NoError(t, err)
	assert.Equal(t, "Gold", payment.Package)
	assert.Equal(t, 39.99, payment.Price)
	assert.Equal(t, "txn_1", payment.TransactionID)
	assert.False(t, payment.PaidAt.IsZero())

	var user entity.User
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&user).Error)
	assert.Equal(t, entity.BadgeGold, user.Badge)
}

func TestCheckoutChargeFailureRecordsNothing(t *testing.T) {
	db := newTestDB(t)
	charger := &fakeCharger{err: errors.New("card declined")}
	svc := newPaymentService(t, db, charger)
	seedUser(t, db, "Ana", "ana@example.com", entity.RoleUser, entity.BadgeBronze)

	_, err := svc.Checkout(context.Background(), "ana@example.com", "Silver", "pm_123")
	assert.ErrorIs(t, err, ErrChargeFailed)

	var count int64
	require.NoError(t, db.Model(&entity.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var user entity.User
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&user).Error)
	assert.Equal(t, entity.BadgeBronze, user.Badge)
}

func TestCheckoutRequiresIdentity(t *testing.T) {
	db := newTestDB(t)
	charger := &fakeCharger{}
	svc := newPaymentService(t, db, charger)

	_, err := svc.Checkout(context.Background(), "", "Silver", "pm_123")
	assert.ErrorIs(t, err, ErrAuthRequired)

	// Unknown identity cannot check out either.
	_, err = svc.Checkout(context.Background(), "ghost@example.com", "Silver", "pm_123")
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, 0, charger.calls)
}

func TestPaymentHistory(t *testing.T) {
	db := newTestDB(t)
	charger := &fakeCharger{}
	svc := newPaymentService(t, db, charger)
	seedUser(t, db, "Ana", "ana@example.com", entity.RoleUser, entity.BadgeBronze)

	_, err := svc.Checkout(context.Background(), "ana@example.com", "Silver", "pm_123")
	require.NoError(t, err)
	_, err = svc.Checkout(context.Background(), "ana@example.com", "Gold", "pm_456")
	require.NoError(t, err)

	payments, err := svc.History("ana@example.com")
	require.NoError(t, err)
	require.Len(t, payments, 2)

	_, err = svc.History("")
	assert.ErrorIs(t, err, ErrAuthRequired)
}
