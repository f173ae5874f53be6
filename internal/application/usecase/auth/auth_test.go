package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

type memoryUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// racingUserRepo hides existing rows from ExistsByEmail, as a concurrent
// signup would.
type racingUserRepo struct {
	*memoryUserRepo
}

func (r racingUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

func (r racingUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return domainerror.ErrEmailAlreadyExists
	}
	return r.memoryUserRepo.Create(ctx, user)
}

type plainPasswordService struct{}

func (plainPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return errors.New("too short")
	}
	return nil
}

type stubTokenService struct{}

func (stubTokenService) GenerateToken(_ context.Context, userID uuid.UUID, email string) (string, error) {
	return "token-" + userID.String() + "-" + email, nil
}

func (stubTokenService) ValidateToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	return authErr.Code
}

var registeredAt = time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)

func clockAt(now time.Time) adapter.Clock {
	return func() time.Time { return now }
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		repo := newMemoryUserRepo()
		uc := NewRegisterUserUseCase(repo, plainPasswordService{}, stubTokenService{}, clockAt(registeredAt))

		out, err := uc.Execute(ctx, RegisterUserInput{Name: "Asha", Email: " Asha@Example.com ", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", out.User.Email)
		assert.Equal(t, registeredAt, out.User.CreatedAt)
		assert.NotEmpty(t, out.Token)
		assert.Len(t, repo.users, 1)
	})

	tests := []struct {
		name  string
		input RegisterUserInput
		code  domainerror.AuthErrorCode
	}{
		{"missing name", RegisterUserInput{Email: "a@b.co", Password: "secret1"}, domainerror.ErrCodeMissingFields},
		{"bad email", RegisterUserInput{Name: "A", Email: "nope", Password: "secret1"}, domainerror.ErrCodeInvalidEmail},
		{"short password", RegisterUserInput{Name: "A", Email: "a@b.co", Password: "12345"}, domainerror.ErrCodeWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(newMemoryUserRepo(), plainPasswordService{}, stubTokenService{}, nil)

			_, err := uc.Execute(ctx, tt.input)

			assert.Equal(t, tt.code, authCode(t, err))
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		repo := newMemoryUserRepo()
		uc := NewRegisterUserUseCase(repo, plainPasswordService{}, stubTokenService{}, nil)
		_, err := uc.Execute(ctx, RegisterUserInput{Name: "A", Email: "a@b.co", Password: "secret1"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, RegisterUserInput{Name: "B", Email: "A@B.CO", Password: "secret2"})

		assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
	})

	t.Run("duplicate caught by the store", func(t *testing.T) {
		repo := racingUserRepo{newMemoryUserRepo()}
		uc := NewRegisterUserUseCase(repo, plainPasswordService{}, stubTokenService{}, nil)
		_, err := uc.Execute(ctx, RegisterUserInput{Name: "A", Email: "a@b.co", Password: "secret1"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, RegisterUserInput{Name: "B", Email: "a@b.co", Password: "secret2"})

		assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepo()
	user := entity.NewUser("Asha", "asha@example.com", "hashed:secret1", registeredAt)
	require.NoError(t, repo.Create(ctx, user))
	uc := NewLoginUserUseCase(repo, plainPasswordService{}, stubTokenService{})

	out, err := uc.Execute(ctx, LoginUserInput{Email: "ASHA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)

	_, err = uc.Execute(ctx, LoginUserInput{Email: "asha@example.com", Password: "wrong"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	_, err = uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "secret1"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	str := func(s string) *string { return &s }

	setup := func(t *testing.T) (*memoryUserRepo, *entity.User, *UpdateProfileUseCase) {
		repo := newMemoryUserRepo()
		user := entity.NewUser("Asha", "asha@example.com", "hashed:secret1", registeredAt)
		other := entity.NewUser("Ravi", "ravi@example.com", "hashed:secret2", registeredAt)
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.Create(ctx, other))
		return repo, user, NewUpdateProfileUseCase(repo, plainPasswordService{}, stubTokenService{}, clockAt(registeredAt.Add(time.Hour)))
	}

	t.Run("updates name and email", func(t *testing.T) {
		repo, user, uc := setup(t)

		out, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, Name: str("Asha K"), Email: str("asha.k@example.com")})

		require.NoError(t, err)
		assert.Equal(t, "Asha K", out.User.Name)
		assert.Equal(t, "asha.k@example.com", repo.users[user.ID].Email)
		assert.Equal(t, registeredAt.Add(time.Hour), repo.users[user.ID].UpdatedAt)
		assert.Equal(t, registeredAt, repo.users[user.ID].CreatedAt)
		assert.Contains(t, out.Token, "asha.k@example.com")
	})

	t.Run("email taken by another user", func(t *testing.T) {
		_, user, uc := setup(t)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, Email: str("ravi@example.com")})

		assert.Equal(t, domainerror.ErrCodeEmailInUse, authCode(t, err))
	})

	t.Run("keeping own email is allowed", func(t *testing.T) {
		_, user, uc := setup(t)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, Email: str("ASHA@example.com")})

		assert.NoError(t, err)
	})

	t.Run("new password requires current password", func(t *testing.T) {
		_, user, uc := setup(t)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, NewPassword: "another1"})

		assert.Equal(t, domainerror.ErrCodeCurrentPasswordRequired, authCode(t, err))
	})

	t.Run("wrong current password", func(t *testing.T) {
		_, user, uc := setup(t)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, CurrentPassword: "nope", NewPassword: "another1"})

		assert.Equal(t, domainerror.ErrCodeIncorrectPassword, authCode(t, err))
	})

	t.Run("short new password leaves profile untouched", func(t *testing.T) {
		repo, user, uc := setup(t)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, Name: str("Changed"), CurrentPassword: "secret1", NewPassword: "123"})

		assert.Equal(t, domainerror.ErrCodeWeakPassword, authCode(t, err))
		assert.Equal(t, "Asha", repo.users[user.ID].Name)
	})

	t.Run("changes password", func(t *testing.T) {
		repo, user, uc := setup(t)

		_, err := uc.Execute(ctx, UpdateProfileInput{UserID: user.ID, CurrentPassword: "secret1", NewPassword: "another1"})

		require.NoError(t, err)
		assert.Equal(t, "hashed:another1", repo.users[user.ID].PasswordHash)
	})
}
