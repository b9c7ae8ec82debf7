package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	LoginWithGoogle(ctx context.Context, profile utils.GoogleProfile) (*db_models.User, error)
	GetAccount(ctx context.Context, id string) (*db_models.User, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	now         func() time.Time
	compare     func(hash, plain string) error
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		now:         time.Now,
		compare:     utils.ComparePasswords,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks email and password. Unknown emails, wrong passwords and
// accounts without a password all fail the same way.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		log.Printf("find account by email: %v", err)
		return nil, utils.ErrDatabaseError
	}

	hash := ""
	if account != nil {
		hash = account.PasswordHash
	}
	// compare even for unknown emails so both failures take equally long
	if err := a.compare(hash, request.Password); err != nil || account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	return account, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("find account by email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.NewInvalidFieldError("password", err.Error())
	}

	newAccount := &db_models.User{
		DisplayName:  strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    a.now().UTC(),
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// unique index race with a concurrent registration
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		log.Printf("insert account: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return newAccount, nil
}

// LoginWithGoogle finds or creates the user for a Google profile. A local
// account with the same email gets the Google id linked instead of a second
// account being created. Linking and creating both need a verified email.
func (a *AccountService) LoginWithGoogle(ctx context.Context, profile utils.GoogleProfile) (*db_models.User, error) {
	account, err := a.accountRepo.FindByGoogleID(ctx, profile.ID)
	if err != nil {
		log.Printf("find account by google id: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		return account, nil
	}

	if !profile.EmailVerified {
		return nil, utils.ErrUnverifiedEmail
	}

	email := normalizeEmail(profile.Email)
	account, err = a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("find account by email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account != nil {
		if err := a.accountRepo.LinkGoogleID(ctx, account.ID.Hex(), profile); err != nil {
			log.Printf("link google id to %s: %v", account.ID.Hex(), err)
			return nil, utils.ErrDatabaseError
		}
		account.GoogleID = profile.ID
		if profile.Photo != "" {
			account.Photo = profile.Photo
		}
		log.Printf("linked google login to existing account %s", account.ID.Hex())
		return account, nil
	}

	newAccount := &db_models.User{
		GoogleID:    profile.ID,
		DisplayName: profile.DisplayName,
		Email:       email,
		Photo:       profile.Photo,
		CreatedAt:   a.now().UTC(),
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		log.Printf("insert google account: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return newAccount, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*db_models.User, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		log.Printf("find account %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUserNotFound
	}
	return account, nil
}
