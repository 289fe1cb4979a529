// internal/domain/user/service_test.go
package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/coupledelight/shop-api/internal/pkg/auth"
	"github.com/coupledelight/shop-api/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[uuid.UUID]*User)}
}

func (m *memoryRepository) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == NormalizeEmail(u.Email) {
			return ErrEmailTaken
		}
	}
	if err := u.BeforeCreate(nil); err != nil {
		return err
	}
	stored := *u
	m.users[u.ID] = &stored
	return nil
}

func (m *memoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == NormalizeEmail(email) {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *u
	return &found, nil
}

func (m *memoryRepository) Save(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *u
	m.users[u.ID] = &stored
	return nil
}

func newTestService() (*Service, *memoryRepository) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "CoupleDelight"},
		JWT: config.JWTConfig{
			Secret:             "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
	}
	repo := newMemoryRepository()
	svc := NewService(repo, auth.NewPasswordManager(bcrypt.MinCost), auth.NewJWTManager(cfg), logger.Discard())
	return svc, repo
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Email:    "  Priya@Example.com ",
		Password: "moonlight42",
		Profile:  Profile{CoupleName: "P & R", Partner1Age: 29, LookingFor: "couples"},
	})
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", resp.User.Email)
	assert.Equal(t, RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	_, err = svc.Register(ctx, &RegisterRequest{Email: "priya@example.com", Password: "another-one"})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	logged, err := svc.Login(ctx, &LoginRequest{Email: "PRIYA@example.com", Password: "moonlight42"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, logged.User.ID)
	assert.NotNil(t, logged.User.LastLoginAt)
}

func TestService_RegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "not-an-email", Password: "moonlight42"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.Register(ctx, &RegisterRequest{Email: "a@b.in", Password: "abc"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.Register(ctx, &RegisterRequest{
		Email:    "a@b.in",
		Password: "moonlight42",
		Profile:  Profile{Partner2Age: 17},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestService_LoginFailuresAreUniform(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "a@b.in", Password: "moonlight42"})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &User{Email: "social@b.in", Provider: ProviderGoogle}))

	cases := []LoginRequest{
		{Email: "missing@b.in", Password: "moonlight42"},
		{Email: "a@b.in", Password: "wrong-password"},
		{Email: "social@b.in", Password: "anything"},
	}
	for _, req := range cases {
		_, err := svc.Login(ctx, &req)
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", err.Error())
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	}
}

func TestService_Refresh(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Email: "a@b.in", Password: "moonlight42"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	_, err = svc.Refresh(ctx, resp.AccessToken)
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestService_UpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Email: "a@b.in", Password: "moonlight42"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, resp.User.ID, Profile{Location: "Pune", LookingFor: "both"})
	require.NoError(t, err)
	assert.Equal(t, "Pune", updated.Profile.Location)

	got, err := svc.GetProfile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "both", got.Profile.LookingFor)

	_, err = svc.UpdateProfile(ctx, resp.User.ID, Profile{LookingFor: "everyone"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.GetProfile(ctx, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
