package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"
	mockSvc "authgate/internal/mocks/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Password: "pw123"}
	userID := uuid.New()

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			// The store assigns the identifier on insert.
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.On("Issue", userID, input.Email).Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "nil input", input: nil},
		{name: "empty email", input: &usecase.RegisterInput{Password: "pw123"}},
		{name: "empty password", input: &usecase.RegisterInput{Email: "a@x.com"}},
		{name: "both empty", input: &usecase.RegisterInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Register(ctx, tt.input)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrEmailPasswordRequired))
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Password: "pw123"}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_LostInsertRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Password: "pw123"}

	// The pre-check saw no user, but a concurrent registration won the insert.
	// The store's conflict is surfaced as the same 409, not a crash.
	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "a@x.com", Password: "pw123"}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "a@x.com", Password: "pw123"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(user, nil)
	fx.hasher.On("Check", input.Password, user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user.ID, user.Email).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailPasswordRequired))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@x.com", Password: "pw123"}

	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "a@x.com", Password: "wrong"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(user, nil)
	fx.hasher.On("Check", input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "a@x.com", Password: "pw123"}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(user, nil)
	fx.hasher.On("Check", input.Password, user.PasswordHash).Return(true)
	fx.tokenService.On("Issue", user.ID, user.Email).Return("", errors.New("signing failure"))

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
