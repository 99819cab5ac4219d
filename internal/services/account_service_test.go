package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wanderai/internal/models/db_models"
	"wanderai/internal/models/request_models"
	"wanderai/pkg/utils"
)

type fakeAccountRepo struct {
	accounts []db_models.Account
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, acc := range f.accounts {
		if acc.Email == email {
			found := acc
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) (primitive.ObjectID, error) {
	account.ID = primitive.NewObjectID()
	f.accounts = append(f.accounts, *account)
	return account.ID, nil
}

func newAccountService() (*fakeAccountRepo, AccountServiceInterface, *utils.JWTMaker) {
	repo := &fakeAccountRepo{}
	maker := utils.NewJWTMaker("test-secret", time.Hour)
	return repo, NewAccountService(repo, maker), maker
}

func TestCreateAccount_AndLogin(t *testing.T) {
	_, svc, maker := newAccountService()

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name: "Ada", Email: "Ada@Example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// Email lookup is case-insensitive because both sides are lowercased.
	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "ada@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.NotEmpty(t, resp.Token)

	claims, err := maker.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	_, svc, _ := newAccountService()

	req := request_models.SignUpRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, svc, _ := newAccountService()

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret123",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "ada@example.com", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, svc, _ := newAccountService()

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
