package repository

import (
	"context"
	"fmt"

	"greenvault/internal/data/entity"
	"greenvault/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PendingRepository is the Pending-Registration Store port. A username may
// have at most one Pending row at a time; the partial unique index on
// (username) WHERE status = 'Pending' enforces it.
type PendingRepository interface {
	Create(ctx context.Context, pending *entity.PendingRegistration) error
	FindPending(ctx context.Context, username string) (*entity.PendingRegistration, error)
	FindByUsername(ctx context.Context, username string) (*entity.PendingRegistration, error)
	FindAllPending(ctx context.Context, roleFilter string) ([]*entity.PendingRegistration, error)
	UpdateStatus(ctx context.Context, username string, status entity.RegistrationStatus) error
	Delete(ctx context.Context, username string) error
	Exists(ctx context.Context, username string) (bool, error)
}

type pendingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPendingRepository(db database.PgxIface, log *zap.Logger) PendingRepository {
	return &pendingRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new pending registration with status Pending. Returns
// entity.ErrDuplicateUsername when a Pending row for the username exists.
func (pr *pendingRepository) Create(ctx context.Context, pending *entity.PendingRegistration) error {
	query := `
		INSERT INTO pending_registrations (id, username, password, role, identifier,
		                  status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pr.db.Exec(ctx, query,
		pending.ID,
		pending.Username,
		pending.Password,
		pending.Role,
		pending.Identifier,
		pending.Status,
		pending.CreatedAt,
		pending.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return entity.ErrDuplicateUsername
	}
	if err != nil {
		pr.log.Error("Failed to create pending registration",
			zap.Error(err),
			zap.String("username", pending.Username),
			zap.String("role", pending.Role),
		)
		return fmt.Errorf("create pending registration %s: %w", pending.Username, err)
	}

	return nil
}

// FindPending returns the Pending row for username, or nil when the username
// has no row with status Pending.
func (pr *pendingRepository) FindPending(ctx context.Context, username string) (*entity.PendingRegistration, error) {
	return pr.findOne(ctx, username, true)
}

// FindByUsername returns the newest row for username regardless of status.
func (pr *pendingRepository) FindByUsername(ctx context.Context, username string) (*entity.PendingRegistration, error) {
	return pr.findOne(ctx, username, false)
}

func (pr *pendingRepository) findOne(ctx context.Context, username string, pendingOnly bool) (*entity.PendingRegistration, error) {
	query := `
		SELECT id, username, password, role, identifier, status,
		       created_at, updated_at
		FROM pending_registrations
		WHERE username = $1
	`
	if pendingOnly {
		query += ` AND status = 'Pending'`
	}
	query += ` ORDER BY created_at DESC LIMIT 1`

	var pending entity.PendingRegistration
	err := pr.db.QueryRow(ctx, query, username).Scan(
		&pending.ID,
		&pending.Username,
		&pending.Password,
		&pending.Role,
		&pending.Identifier,
		&pending.Status,
		&pending.CreatedAt,
		&pending.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find pending registration",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find pending registration %s: %w", username, err)
	}

	return &pending, nil
}

// FindAllPending lists rows with status Pending, oldest first. Admin rows are
// always hidden from the review queue; roleFilter narrows to one role when
// non-empty.
func (pr *pendingRepository) FindAllPending(ctx context.Context, roleFilter string) ([]*entity.PendingRegistration, error) {
	query := `
		SELECT id, username, password, role, identifier, status,
		       created_at, updated_at
		FROM pending_registrations
		WHERE status = 'Pending' AND role != 'Admin'
	`
	args := []any{}
	if roleFilter != "" {
		query += ` AND role = $1`
		args = append(args, roleFilter)
	}
	query += ` ORDER BY created_at`

	rows, err := pr.db.Query(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to get pending registrations",
			zap.Error(err),
			zap.String("role_filter", roleFilter),
		)
		return nil, fmt.Errorf("find pending registrations: %w", err)
	}
	defer rows.Close()

	var pendings []*entity.PendingRegistration
	for rows.Next() {
		var pending entity.PendingRegistration
		err := rows.Scan(
			&pending.ID,
			&pending.Username,
			&pending.Password,
			&pending.Role,
			&pending.Identifier,
			&pending.Status,
			&pending.CreatedAt,
			&pending.UpdatedAt,
		)
		if err != nil {
			pr.log.Error("Failed to scan pending registration row", zap.Error(err))
			return nil, fmt.Errorf("scan pending registration row: %w", err)
		}
		pendings = append(pendings, &pending)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate pending registration rows: %w", err)
	}

	return pendings, nil
}

// UpdateStatus sets the status of the row for username. Returns
// entity.ErrNotFound when no row matched.
func (pr *pendingRepository) UpdateStatus(ctx context.Context, username string, status entity.RegistrationStatus) error {
	query := `UPDATE pending_registrations SET status = $2, updated_at = NOW() WHERE username = $1`

	result, err := pr.db.Exec(ctx, query, username, status)
	if err != nil {
		pr.log.Error("Failed to update pending registration status",
			zap.Error(err),
			zap.String("username", username),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update pending registration %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Delete removes rows for username regardless of status. Returns
// entity.ErrNotFound when no row matched.
func (pr *pendingRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM pending_registrations WHERE username = $1`

	result, err := pr.db.Exec(ctx, query, username)
	if err != nil {
		pr.log.Error("Failed to delete pending registration",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("delete pending registration %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (pr *pendingRepository) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT COUNT(*) FROM pending_registrations WHERE username = $1`

	var count int64
	err := pr.db.QueryRow(ctx, query, username).Scan(&count)
	if err != nil {
		pr.log.Error("Failed to check pending registration existence",
			zap.Error(err),
			zap.String("username", username),
		)
		return false, fmt.Errorf("check pending registration %s: %w", username, err)
	}

	return count > 0, nil
}
