package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/users"
	pkgauth "github.com/agriconnect/agriconnect-backend/pkg/auth"
	"github.com/agriconnect/agriconnect-backend/pkg/config"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  name TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'buyer',
  phone TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "agriconnect-test",
		ExpirationMinutes: 15,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := users.NewRepository(setupAuthTestDB(t))
	return NewService(repo, nil, nil, testJWTConfig(), config.PasswordConfig{}, nil)
}

func TestRegisterCreatesAccountAndMintsToken(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Rahim@Example.com",
		Password: "correct horse",
		Name:     "Rahim Uddin",
		Role:     "farmer",
	})
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", view.User.Email)
	assert.Equal(t, "farmer", view.User.Role)
	require.NotEmpty(t, view.Token)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig(), view.Token)
	require.NoError(t, err)
	assert.Equal(t, view.User.ID, claims.UserID.String())
}

func TestRegisterDefaultsRoleToBuyer(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.Register(context.Background(), RegisterInput{
		Email:    "buyer@example.com",
		Password: "correct horse",
		Name:     "Karim",
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer", view.User.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	input := RegisterInput{
		Email:    "dup@example.com",
		Password: "correct horse",
		Name:     "Karim",
	}

	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestLoginWithValidCredentials(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "login@example.com",
		Password: "correct horse",
		Name:     "Karim",
	})
	require.NoError(t, err)

	view, err := svc.Login(context.Background(), LoginInput{
		Email:    "login@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, view.Token)
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "known@example.com",
		Password: "correct horse",
		Name:     "Karim",
	})
	require.NoError(t, err)

	_, wrongPw := svc.Login(context.Background(), LoginInput{
		Email:    "known@example.com",
		Password: "wrong",
	})
	_, unknown := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.Equal(t, pkgerrors.As(wrongPw).Code(), pkgerrors.As(unknown).Code())
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(wrongPw).Code())
}

func TestLoginRecordsLastLogin(t *testing.T) {
	repo := users.NewRepository(setupAuthTestDB(t))
	svc := NewService(repo, nil, nil, testJWTConfig(), config.PasswordConfig{}, nil)

	view, err := svc.Register(context.Background(), RegisterInput{
		Email:    "stamp@example.com",
		Password: "correct horse",
		Name:     "Karim",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "stamp@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	user, err := repo.ByEmail(context.Background(), view.User.Email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotNil(t, user.LastLoginAt)
}
