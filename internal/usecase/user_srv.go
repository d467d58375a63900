package usecase

import (
	"context"
	"errors"
	"fmt"

	"greenvault/internal/data/entity"
	"greenvault/internal/data/mirror"
	"greenvault/internal/data/repository"
	"greenvault/internal/dto/request"
	"greenvault/internal/dto/response"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Authenticate(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	GetInfo(ctx context.Context, username string) (*response.AccountResponse, error)
	ListAll(ctx context.Context) ([]response.AccountResponse, error)
	DeleteAccount(ctx context.Context, username string) error
}

type userService struct {
	users   repository.UserRepository
	pending repository.PendingRepository
	mirror  *mirror.Store
	log     *zap.Logger
}

func NewUserService(
	users repository.UserRepository,
	pending repository.PendingRepository,
	mirrorStore *mirror.Store,
	log *zap.Logger,
) UserService {
	return &userService{
		users:   users,
		pending: pending,
		mirror:  mirrorStore,
		log:     log,
	}
}

// Authenticate checks a credential pair against the User Store and returns
// the matched account's role and barangay.
func (s *userService) Authenticate(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	account, err := s.users.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		s.log.Error("Failed to authenticate", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("authenticate %s: %w", req.Username, err)
	}
	if account == nil {
		s.log.Warn("Invalid credentials", zap.String("username", req.Username))
		return nil, entity.ErrInvalidCredentials
	}

	s.log.Info("User authenticated",
		zap.String("username", account.Username),
		zap.String("role", account.Role))

	return &response.LoginResponse{
		Username: account.Username,
		Role:     account.Role,
		Barangay: account.Barangay,
	}, nil
}

func (s *userService) GetInfo(ctx context.Context, username string) (*response.AccountResponse, error) {
	account, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", username, err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", username, entity.ErrNotFound)
	}
	return toAccountResponse(account), nil
}

func (s *userService) ListAll(ctx context.Context) ([]response.AccountResponse, error) {
	accounts, err := s.users.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list accounts", zap.Error(err))
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	out := make([]response.AccountResponse, len(accounts))
	for i, account := range accounts {
		out[i] = *toAccountResponse(account)
	}
	return out, nil
}

// DeleteAccount removes an account everywhere it lives: any pending row
// (best-effort), the User Store row (authoritative), and the role's mirror
// file line. Only the store deletion decides success; mirror and pending
// failures are logged and swallowed.
func (s *userService) DeleteAccount(ctx context.Context, username string) error {
	// 1. Read the role first, it locates the mirror file
	account, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("delete account %s: %w", username, err)
	}
	if account == nil {
		return fmt.Errorf("account %s: %w", username, entity.ErrNotFound)
	}

	// 2. Best-effort cleanup of any pending row, absence included
	if err := s.pending.Delete(ctx, username); err != nil && !errors.Is(err, entity.ErrNotFound) {
		s.log.Warn("Failed to delete pending registration during cascade",
			zap.Error(err),
			zap.String("username", username))
	}

	// 3. Authoritative store deletion
	if err := s.users.Delete(ctx, username); err != nil {
		return fmt.Errorf("delete account %s: %w", username, err)
	}

	// 4. Drop the mirror line; a stale line is tolerable, a failed delete is not
	if err := s.mirror.Remove(username, account.Role); err != nil {
		s.log.Warn("Failed to remove mirror record, file may retain a stale line",
			zap.Error(err),
			zap.String("username", username),
			zap.String("role", account.Role))
	}

	s.log.Info("Account deleted",
		zap.String("username", username),
		zap.String("role", account.Role))
	return nil
}
