package services

import (
	"testing"
	"time"

	"cooksync/entity"
	"cooksync/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterDefaults(t *testing.T) {
	svc := newAuthService(t, newTestDB(t))

	user, err := svc.Register("Ana", "  ANA@Example.com ", "secret1", "https://cdn.example.com/ana.png")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.BadgeBronze, user.Badge)
	assert.NotEqual(t, "secret1", user.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t, newTestDB(t))

	_, err := svc.Register("Ana", "ana@example.com", "secret1", "")
	require.NoError(t, err)

	_, err = svc.Register("Other Ana", "ana@example.com", "secret2", "")
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t, newTestDB(t))

	_, err := svc.Register("", "ana@example.com", "secret1", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t, newTestDB(t))

	_, err := svc.Register("Ana", "ana@example.com", "secret1", "")
	require.NoError(t, err)

	token, user, err := svc.Login("ana@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@example.com", user.Email)

	_, _, err = svc.Login("ana@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("ghost@example.com", "secret1")
	assert.Error(t, err)
}
