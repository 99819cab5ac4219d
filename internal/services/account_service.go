package services

import (
	"context"
	"strings"
	"time"

	"wanderai/internal/models/db_models"
	"wanderai/internal/models/request_models"
	"wanderai/internal/models/response_models"
	"wanderai/internal/repositories"
	"wanderai/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtMaker    *utils.JWTMaker
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtMaker *utils.JWTMaker) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtMaker:    jwtMaker,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwtMaker.CreateToken(account.ID.Hex())
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.UserResponse{
			ID:    account.ID.Hex(),
			Name:  account.Name,
			Email: account.Email,
		},
	}, nil
}
