package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *InMemoryUserRepository, *Tokens) {
	t.Helper()
	tokens, err := NewTokens("test-secret-key-for-testing-only", time.Hour)
	require.NoError(t, err)
	repo := NewInMemoryUserRepository()
	return NewService(repo, tokens), repo, tokens
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	service, repo, _ := newTestService(t)

	password := "Password@123"

	_, err := service.Register(context.Background(), "Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
	assert.Equal(t, RoleCustomer, user.Role)
}

func TestRegister_Validation(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "", "a@b.co", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = service.Register(ctx, "A", "a@b.co", "pw")
	require.NoError(t, err)

	_, err = service.Register(ctx, "A", " A@B.co ", "pw")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_IssuesCustomerToken(t *testing.T) {
	service, _, tokens := newTestService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "Meera", "meera@example.com", "Password@123")
	require.NoError(t, err)

	_, err = service.Login(ctx, "meera@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(ctx, "nobody@example.com", "Password@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := service.Login(ctx, "meera@example.com", "Password@123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.ShopperID)

	claims, err := tokens.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ShopperID)
	assert.Equal(t, RoleCustomer, claims.Role)
}

func TestGuest(t *testing.T) {
	service, _, tokens := newTestService(t)

	a, err := service.Guest()
	require.NoError(t, err)
	b, err := service.Guest()
	require.NoError(t, err)
	assert.NotEqual(t, a.ShopperID, b.ShopperID)

	claims, err := tokens.Validate(a.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleGuest, claims.Role)
	assert.Equal(t, a.ShopperID, claims.ShopperID)
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	service, repo, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.SeedAdmin(ctx, "admin@prakruti.in", "s3cret"))
	require.NoError(t, service.SeedAdmin(ctx, "admin@prakruti.in", "s3cret"))
	require.NoError(t, service.SeedAdmin(ctx, "", ""))

	assert.Len(t, repo.users, 1)
	assert.Equal(t, RoleAdmin, repo.users["admin@prakruti.in"].Role)
}

func TestTokens(t *testing.T) {
	tokens, err := NewTokens("k1", time.Hour)
	require.NoError(t, err)
	other, err := NewTokens("k2", time.Hour)
	require.NoError(t, err)

	tok, err := tokens.Generate("shopper-1", "", RoleGuest)
	require.NoError(t, err)

	_, err = other.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewTokens("k1", -time.Minute)
	require.NoError(t, err)
	old, err := expired.Generate("shopper-1", "", RoleGuest)
	require.NoError(t, err)
	_, err = tokens.Validate(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Generate("", "", RoleGuest)
	assert.Error(t, err)

	_, err = NewTokens("", time.Hour)
	assert.Error(t, err)
}
