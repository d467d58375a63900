package repository

import (
	"context"
	"fmt"

	"greenvault/internal/data/entity"
	"greenvault/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UserRepository is the User Store port: the authoritative relational store
// for active accounts, keyed by username.
type UserRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	FindByCredentials(ctx context.Context, username, password string) (*entity.Account, error)
	FindAll(ctx context.Context) ([]*entity.Account, error)
	Delete(ctx context.Context, username string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new account. Returns entity.ErrDuplicateUsername when the
// unique index on username rejects the row.
func (ur *userRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO users (id, username, password, role, barangay, identifier,
		                  created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		account.ID,
		account.Username,
		account.Password,
		account.Role,
		account.Barangay,
		account.Identifier,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return entity.ErrDuplicateUsername
	}
	if err != nil {
		ur.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("username", account.Username),
			zap.String("role", account.Role),
		)
		return fmt.Errorf("create account %s: %w", account.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	query := `
		SELECT id, username, password, role, barangay, identifier,
		       created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var account entity.Account
	err := ur.db.QueryRow(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Password,
		&account.Role,
		&account.Barangay,
		&account.Identifier,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find account by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find account by username %s: %w", username, err)
	}

	return &account, nil
}

// FindByCredentials returns the account matching both username and password,
// or nil when no such account exists. Passwords are compared verbatim.
func (ur *userRepository) FindByCredentials(ctx context.Context, username, password string) (*entity.Account, error) {
	query := `
		SELECT id, username, password, role, barangay, identifier,
		       created_at, updated_at
		FROM users
		WHERE username = $1 AND password = $2
	`

	var account entity.Account
	err := ur.db.QueryRow(ctx, query, username, password).Scan(
		&account.ID,
		&account.Username,
		&account.Password,
		&account.Role,
		&account.Barangay,
		&account.Identifier,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find account by credentials",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find account by credentials %s: %w", username, err)
	}

	return &account, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	query := `
		SELECT id, username, password, role, barangay, identifier,
		       created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all accounts", zap.Error(err))
		return nil, fmt.Errorf("find all accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entity.Account
	for rows.Next() {
		var account entity.Account
		err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.Password,
			&account.Role,
			&account.Barangay,
			&account.Identifier,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan account row", zap.Error(err))
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}

// Delete removes the account row. Returns entity.ErrNotFound when no row
// matched.
func (ur *userRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`

	result, err := ur.db.Exec(ctx, query, username)
	if err != nil {
		ur.log.Error("Failed to delete account",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("delete account %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	ur.log.Info("Account deleted", zap.String("username", username))
	return nil
}
