package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"greenvault/internal/data/entity"
	"greenvault/internal/data/mirror"
	"greenvault/internal/data/repository"
	"greenvault/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportService loads accounts and pending registrations from pipe-delimited
// text, one record per line. Best-effort: malformed lines and duplicates are
// skipped and counted, never fatal.
type ImportService interface {
	ImportAccounts(ctx context.Context, src io.Reader) (*response.ImportResponse, error)
	ImportPending(ctx context.Context, src io.Reader) (*response.ImportResponse, error)
}

type importService struct {
	users   repository.UserRepository
	pending repository.PendingRepository
	log     *zap.Logger
}

func NewImportService(
	users repository.UserRepository,
	pending repository.PendingRepository,
	log *zap.Logger,
) ImportService {
	return &importService{
		users:   users,
		pending: pending,
		log:     log,
	}
}

func (s *importService) ImportAccounts(ctx context.Context, src io.Reader) (*response.ImportResponse, error) {
	imported, skipped := 0, 0

	err := eachRecordLine(src, func(line string) {
		rec, ok := splitAccountLine(line)
		if !ok {
			skipped++
			return
		}

		var identifier *string
		if rec.Identifier != "" {
			identifier = &rec.Identifier
		}

		now := time.Now()
		account := &entity.Account{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:   rec.Username,
			Password:   rec.Password,
			Role:       rec.Role,
			Barangay:   rec.Barangay,
			Identifier: identifier,
		}

		if err := s.users.Create(ctx, account); err != nil {
			if !errors.Is(err, entity.ErrDuplicateUsername) {
				s.log.Error("Failed to import account line",
					zap.Error(err),
					zap.String("username", rec.Username))
			}
			skipped++
			return
		}
		imported++
	})
	if err != nil {
		return nil, fmt.Errorf("read import source: %w", err)
	}

	s.log.Info("Account import complete",
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))
	return &response.ImportResponse{Imported: imported, Skipped: skipped}, nil
}

// ImportPending expects at least 5 fields per line:
// username|password|role|identifier|status.
func (s *importService) ImportPending(ctx context.Context, src io.Reader) (*response.ImportResponse, error) {
	imported, skipped := 0, 0

	err := eachRecordLine(src, func(line string) {
		parts := strings.Split(line, "|")
		if len(parts) < 5 {
			skipped++
			return
		}

		status := entity.RegistrationStatus(strings.TrimSpace(parts[4]))
		switch status {
		case entity.StatusPending, entity.StatusApproved, entity.StatusRejected:
		default:
			skipped++
			return
		}

		now := time.Now()
		pending := &entity.PendingRegistration{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:   strings.TrimSpace(parts[0]),
			Password:   strings.TrimSpace(parts[1]),
			Role:       strings.TrimSpace(parts[2]),
			Identifier: strings.TrimSpace(parts[3]),
			Status:     status,
		}

		if err := s.pending.Create(ctx, pending); err != nil {
			if !errors.Is(err, entity.ErrDuplicateUsername) {
				s.log.Error("Failed to import pending line",
					zap.Error(err),
					zap.String("username", pending.Username))
			}
			skipped++
			return
		}
		imported++
	})
	if err != nil {
		return nil, fmt.Errorf("read import source: %w", err)
	}

	s.log.Info("Pending import complete",
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))
	return &response.ImportResponse{Imported: imported, Skipped: skipped}, nil
}

// splitAccountLine parses an account line leniently: 4 fields is the plain
// layout, 5 the identifier layout, and anything past the barangay column is
// ignored. Lines with fewer than 4 fields are rejected.
func splitAccountLine(line string) (mirror.Record, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 4 {
		return mirror.Record{}, false
	}

	rec := mirror.Record{
		Username: strings.TrimSpace(parts[0]),
		Password: strings.TrimSpace(parts[1]),
		Role:     strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		rec.Barangay = strings.TrimSpace(parts[3])
	} else {
		rec.Identifier = strings.TrimSpace(parts[3])
		rec.Barangay = strings.TrimSpace(parts[4])
	}
	return rec, true
}

// eachRecordLine feeds every non-blank, non-comment line to fn.
func eachRecordLine(src io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}
