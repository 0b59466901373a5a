package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/service/ports"
	"github.com/stpnv0/CarRental/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	tokens := mocks.NewMockTokenIssuer(t)
	svc := NewUserService(repo, tokens, nil)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, user *domain.User) { created = user }).
		Return(nil)
	tokens.EXPECT().Issue(mock.Anything).Return("signed", nil)

	token, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "  Alice ",
		Email:    " Alice@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed", token)
	require.NotNil(t, created)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := NewUserService(nil, nil, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{Email: "a@b.c", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "fill all the fields")
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	svc := NewUserService(nil, nil, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Bob", Email: "not-an-email", Password: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	svc := NewUserService(nil, nil, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil, nil)

	repo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserService_Register_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil, nil)

	repoErr := errors.New("db error")
	repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, repoErr)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Email: "bob@example.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		tokens := mocks.NewMockTokenIssuer(t)
		svc := NewUserService(repo, tokens, nil)

		repo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(user, nil)
		tokens.EXPECT().Issue("u1").Return("signed", nil)

		token, err := svc.Login(context.Background(), domain.LoginInput{Email: "BOB@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		svc := NewUserService(repo, nil, nil)

		repo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(user, nil)

		_, err := svc.Login(context.Background(), domain.LoginInput{Email: "bob@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := mocks.NewMockUserRepo(t)
		svc := NewUserService(repo, nil, nil)

		repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(context.Background(), domain.LoginInput{Email: "ghost@example.com", Password: "secret123"})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserService_BecomeOwner(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil, nil)

	repo.EXPECT().UpdateRole(mock.Anything, "u1", domain.RoleOwner).Return(nil).Twice()

	require.NoError(t, svc.BecomeOwner(context.Background(), "u1"))
	require.NoError(t, svc.BecomeOwner(context.Background(), "u1"))
}

func TestUserService_UpdateImage(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewUserService(repo, nil, images)

	img := &domain.Image{Filename: "me.png", Data: []byte("png")}
	images.EXPECT().Upload(mock.Anything, img, ports.FolderUsers).Return("https://ik.example/users/me.png", nil)
	repo.EXPECT().UpdateImage(mock.Anything, "u1", "https://ik.example/users/me.png").Return(nil)

	url, err := svc.UpdateImage(context.Background(), "u1", img)

	require.NoError(t, err)
	assert.Equal(t, "https://ik.example/users/me.png", url)
}

func TestUserService_UpdateImage_NoImage(t *testing.T) {
	svc := NewUserService(nil, nil, nil)

	_, err := svc.UpdateImage(context.Background(), "u1", nil)

	assert.ErrorIs(t, err, domain.ErrImageRequired)
}

func TestUserService_UpdateImage_UploadError(t *testing.T) {
	images := mocks.NewMockImageStore(t)
	svc := NewUserService(nil, nil, images)

	uploadErr := errors.New("imagekit down")
	images.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).Return("", uploadErr)

	_, err := svc.UpdateImage(context.Background(), "u1", &domain.Image{Data: []byte("x")})

	assert.ErrorIs(t, err, uploadErr)
}
