package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"greenvault/internal/data/entity"
	"greenvault/internal/data/mirror"
	"greenvault/internal/data/repository"
	"greenvault/internal/dto/request"
	"greenvault/internal/dto/response"
	"greenvault/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegistrationService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
}

type registrationService struct {
	activation *activation
	approvals  ApprovalService
	config     *utils.Config
	log        *zap.Logger
}

func NewRegistrationService(
	users repository.UserRepository,
	mirrorStore *mirror.Store,
	approvals ApprovalService,
	config *utils.Config,
	log *zap.Logger,
) RegistrationService {
	return &registrationService{
		activation: &activation{users: users, mirror: mirrorStore, log: log},
		approvals:  approvals,
		config:     config,
		log:        log,
	}
}

func (s *registrationService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}
	if len(req.Password) < s.config.Data.MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			entity.ErrValidation, s.config.Data.MinPasswordLen)
	}

	// 2. Classify the role
	policy := entity.PolicyFor(req.Role)

	// 3. Roles with civic authority go through the approval queue and never
	// touch the User Store or the mirror here.
	if policy.RequiresApproval {
		if strings.TrimSpace(req.Identifier) == "" {
			return nil, fmt.Errorf("%w: %s registration requires an identifier",
				entity.ErrValidation, req.Role)
		}

		if err := s.approvals.SubmitForApproval(ctx, req.Username, req.Password, req.Role, req.Identifier); err != nil {
			return nil, err
		}

		s.log.Info("Registration queued for approval",
			zap.String("username", req.Username),
			zap.String("role", req.Role))

		return &response.RegisterResponse{Status: "pending_approval"}, nil
	}

	// 4. Direct registration under a barangay, or the System scope
	barangay := req.Barangay
	if !policy.UsesBarangay {
		barangay = entity.SystemBarangay
	} else if strings.TrimSpace(barangay) == "" {
		return nil, fmt.Errorf("%w: please select a barangay", entity.ErrValidation)
	}

	var identifier *string
	if req.Identifier != "" {
		identifier = &req.Identifier
	}

	account := &entity.Account{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		Barangay:   barangay,
		Identifier: identifier,
	}

	if err := s.activation.run(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("Account registered",
		zap.String("username", account.Username),
		zap.String("role", account.Role),
		zap.String("barangay", account.Barangay))

	return &response.RegisterResponse{
		Status:     "active",
		Account:    toAccountResponse(account),
		MirrorFile: s.activation.mirror.Path(account.Role),
	}, nil
}

// activation runs the direct-registration path shared by Register and
// Approve: User Store write first, then best-effort mirror append. The store
// outcome alone decides success; a mirror fault is logged and swallowed so it
// can never mask or reverse a store success, and a store duplicate leaves no
// orphan mirror line behind.
type activation struct {
	users  repository.UserRepository
	mirror *mirror.Store
	log    *zap.Logger
}

func (a *activation) run(ctx context.Context, account *entity.Account) error {
	now := time.Now()
	account.ID = uuid.New()
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := a.users.Create(ctx, account); err != nil {
		return err
	}

	rec := mirror.Record{
		Username: account.Username,
		Password: account.Password,
		Role:     account.Role,
		Barangay: account.Barangay,
	}
	if account.Identifier != nil {
		rec.Identifier = *account.Identifier
	}

	if err := a.mirror.Append(rec); err != nil {
		a.log.Warn("Mirror append failed, relational store remains authoritative",
			zap.Error(err),
			zap.String("username", account.Username),
			zap.String("role", account.Role))
	}

	return nil
}

func toAccountResponse(account *entity.Account) *response.AccountResponse {
	return &response.AccountResponse{
		Username:   account.Username,
		Role:       account.Role,
		Barangay:   account.Barangay,
		Identifier: account.Identifier,
		CreatedAt:  account.CreatedAt,
	}
}
