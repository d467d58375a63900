package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greenvault/internal/data/entity"
	"greenvault/internal/data/mirror"
	"greenvault/internal/data/repository"
	"greenvault/internal/dto/response"
	"greenvault/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApprovalService owns the pending-registration workflow. A row moves
// Pending -> Approved or Pending -> Rejected and never back; approval is the
// only path that turns a pending record into a live account.
type ApprovalService interface {
	SubmitForApproval(ctx context.Context, username, password, role, identifier string) error
	ListPending(ctx context.Context, roleFilter string) ([]response.PendingResponse, error)
	Approve(ctx context.Context, username string) (*response.AccountResponse, error)
	Reject(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
}

type approvalService struct {
	pending    repository.PendingRepository
	activation *activation
	config     *utils.Config
	log        *zap.Logger
}

func NewApprovalService(
	pending repository.PendingRepository,
	users repository.UserRepository,
	mirrorStore *mirror.Store,
	config *utils.Config,
	log *zap.Logger,
) ApprovalService {
	return &approvalService{
		pending:    pending,
		activation: &activation{users: users, mirror: mirrorStore, log: log},
		config:     config,
		log:        log,
	}
}

func (s *approvalService) SubmitForApproval(ctx context.Context, username, password, role, identifier string) error {
	now := time.Now()
	pending := &entity.PendingRegistration{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:   username,
		Password:   password,
		Role:       role,
		Identifier: identifier,
		Status:     entity.StatusPending,
	}

	if err := s.pending.Create(ctx, pending); err != nil {
		return err
	}

	s.log.Info("Pending registration submitted",
		zap.String("username", username),
		zap.String("role", role))
	return nil
}

func (s *approvalService) ListPending(ctx context.Context, roleFilter string) ([]response.PendingResponse, error) {
	pendings, err := s.pending.FindAllPending(ctx, roleFilter)
	if err != nil {
		s.log.Error("Failed to list pending registrations", zap.Error(err))
		return nil, fmt.Errorf("list pending registrations: %w", err)
	}

	out := make([]response.PendingResponse, len(pendings))
	for i, p := range pendings {
		out[i] = toPendingResponse(p)
	}
	return out, nil
}

// Approve marks the Pending row Approved and promotes it through the direct
// registration path using the stored password, role and identifier. The row
// itself is kept as an audit trail.
func (s *approvalService) Approve(ctx context.Context, username string) (*response.AccountResponse, error) {
	row, err := s.pending.FindPending(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("approve %s: %w", username, err)
	}
	if row == nil {
		return nil, fmt.Errorf("no pending registration for %s: %w", username, entity.ErrNotFound)
	}

	if err := s.pending.UpdateStatus(ctx, username, entity.StatusApproved); err != nil {
		return nil, fmt.Errorf("approve %s: %w", username, err)
	}

	identifier := row.Identifier
	account := &entity.Account{
		Username:   row.Username,
		Password:   row.Password,
		Role:       row.Role,
		Barangay:   s.config.Data.DefaultBarangay,
		Identifier: &identifier,
	}

	if err := s.activation.run(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info("Pending registration approved",
		zap.String("username", username),
		zap.String("role", row.Role))

	return toAccountResponse(account), nil
}

// Reject marks the Pending row Rejected. Terminal, no promotion.
func (s *approvalService) Reject(ctx context.Context, username string) error {
	row, err := s.pending.FindPending(ctx, username)
	if err != nil {
		return fmt.Errorf("reject %s: %w", username, err)
	}
	if row == nil {
		return fmt.Errorf("no pending registration for %s: %w", username, entity.ErrNotFound)
	}

	if err := s.pending.UpdateStatus(ctx, username, entity.StatusRejected); err != nil {
		return fmt.Errorf("reject %s: %w", username, err)
	}

	s.log.Info("Pending registration rejected", zap.String("username", username))
	return nil
}

// Delete removes a pending row regardless of status. Administrative cleanup,
// also part of the account deletion cascade.
func (s *approvalService) Delete(ctx context.Context, username string) error {
	if err := s.pending.Delete(ctx, username); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete pending registration %s: %w", username, err)
	}

	s.log.Info("Pending registration deleted", zap.String("username", username))
	return nil
}

func toPendingResponse(p *entity.PendingRegistration) response.PendingResponse {
	return response.PendingResponse{
		Username:    p.Username,
		Role:        p.Role,
		Identifier:  p.Identifier,
		Status:      string(p.Status),
		SubmittedAt: p.CreatedAt,
	}
}
