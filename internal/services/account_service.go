package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"nomadtrip/internal/models/db_models"
	"nomadtrip/internal/models/request_models"
	"nomadtrip/internal/models/response_models"
	"nomadtrip/internal/repositories"
	"nomadtrip/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)
}

type AccountService struct {
	repo          repositories.AccountRepository
	autoProvision bool
	loginDelay    time.Duration
}

// NewAccountService wires the account flows. With autoProvision enabled any
// credential pair signs in, creating the account on first contact; the delay
// keeps the sign-in exchange from completing instantly.
func NewAccountService(repo repositories.AccountRepository, autoProvision bool, loginDelay time.Duration) AccountServiceInterface {
	return &AccountService{
		repo:          repo,
		autoProvision: autoProvision,
		loginDelay:    loginDelay,
	}
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	account, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Account lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		if !s.autoProvision {
			return nil, utils.ErrInvalidCredentials
		}
		account, err = s.provisionAccount(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
	} else if !s.autoProvision {
		if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
			return nil, utils.ErrInvalidCredentials
		}
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		log.Printf("Token creation failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toUserResponse(account),
	}, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Account lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	name := req.DisplayName
	if name == "" {
		name = displayNameFromEmail(req.Email)
	}

	account := &db_models.Account{
		Name:         name,
		Email:        req.Email,
		PasswordHash: hash,
		AvatarURL:    avatarURL(name),
	}
	if err := s.repo.Insert(ctx, account); err != nil {
		log.Printf("Account insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toUserResponse(account)
	return &resp, nil
}

func (s *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	account, err := s.repo.FindById(ctx, userID)
	if err != nil {
		log.Printf("Account lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toUserResponse(account)
	return &resp, nil
}

func (s *AccountService) provisionAccount(ctx context.Context, email, password string) (*db_models.Account, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	name := displayNameFromEmail(email)
	account := &db_models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AvatarURL:    avatarURL(name),
	}
	if err := s.repo.Insert(ctx, account); err != nil {
		log.Printf("Account insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}

func displayNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "Nomad Traveler"
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	if len(words) == 0 {
		return "Nomad Traveler"
	}
	return strings.Join(words, " ")
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=f43f5e&color=fff"
}

func toUserResponse(a *db_models.Account) response_models.UserResponse {
	return response_models.UserResponse{
		ID:     a.ID.String(),
		Name:   a.Name,
		Email:  a.Email,
		Avatar: a.AvatarURL,
	}
}
