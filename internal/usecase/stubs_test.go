package usecase

import (
	"context"
	"testing"

	"greenvault/internal/data/entity"
	"greenvault/internal/data/mirror"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

// In-memory stand-ins for the two relational store ports.

type stubUserRepo struct {
	accounts map[string]*entity.Account
	order    []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{accounts: make(map[string]*entity.Account)}
}

func cloneAccount(a *entity.Account) *entity.Account {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Identifier != nil {
		id := *a.Identifier
		clone.Identifier = &id
	}
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, account *entity.Account) error {
	if _, exists := r.accounts[account.Username]; exists {
		return entity.ErrDuplicateUsername
	}
	r.accounts[account.Username] = cloneAccount(account)
	r.order = append(r.order, account.Username)
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	return cloneAccount(r.accounts[username]), nil
}

func (r *stubUserRepo) FindByCredentials(_ context.Context, username, password string) (*entity.Account, error) {
	account, ok := r.accounts[username]
	if !ok || account.Password != password {
		return nil, nil
	}
	return cloneAccount(account), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, username := range r.order {
		if account, ok := r.accounts[username]; ok {
			out = append(out, cloneAccount(account))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, exists := r.accounts[username]; !exists {
		return entity.ErrNotFound
	}
	delete(r.accounts, username)
	return nil
}

type stubPendingRepo struct {
	rows  map[string]*entity.PendingRegistration
	order []string
}

func newStubPendingRepo() *stubPendingRepo {
	return &stubPendingRepo{rows: make(map[string]*entity.PendingRegistration)}
}

func clonePending(p *entity.PendingRegistration) *entity.PendingRegistration {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPendingRepo) Create(_ context.Context, pending *entity.PendingRegistration) error {
	if existing, ok := r.rows[pending.Username]; ok && existing.Status == entity.StatusPending {
		return entity.ErrDuplicateUsername
	}
	if _, ok := r.rows[pending.Username]; !ok {
		r.order = append(r.order, pending.Username)
	}
	r.rows[pending.Username] = clonePending(pending)
	return nil
}

func (r *stubPendingRepo) FindPending(_ context.Context, username string) (*entity.PendingRegistration, error) {
	row, ok := r.rows[username]
	if !ok || row.Status != entity.StatusPending {
		return nil, nil
	}
	return clonePending(row), nil
}

func (r *stubPendingRepo) FindByUsername(_ context.Context, username string) (*entity.PendingRegistration, error) {
	return clonePending(r.rows[username]), nil
}

func (r *stubPendingRepo) FindAllPending(_ context.Context, roleFilter string) ([]*entity.PendingRegistration, error) {
	var out []*entity.PendingRegistration
	for _, username := range r.order {
		row, ok := r.rows[username]
		if !ok || row.Status != entity.StatusPending || row.Role == entity.RoleAdmin {
			continue
		}
		if roleFilter != "" && row.Role != roleFilter {
			continue
		}
		out = append(out, clonePending(row))
	}
	return out, nil
}

func (r *stubPendingRepo) UpdateStatus(_ context.Context, username string, status entity.RegistrationStatus) error {
	row, ok := r.rows[username]
	if !ok {
		return entity.ErrNotFound
	}
	row.Status = status
	return nil
}

func (r *stubPendingRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.rows[username]; !ok {
		return entity.ErrNotFound
	}
	delete(r.rows, username)
	return nil
}

func (r *stubPendingRepo) Exists(_ context.Context, username string) (bool, error) {
	_, ok := r.rows[username]
	return ok, nil
}

type testEnv struct {
	users     *stubUserRepo
	pending   *stubPendingRepo
	mirrorDir string
	mirror    *mirror.Store
	service   *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newStubUserRepo()
	pending := newStubPendingRepo()
	dir := t.TempDir()
	log := zap.NewNop()
	mirrorStore := mirror.NewStore(dir, log)

	config := &utils.Config{
		Data: utils.DataConfig{
			MirrorDir:       dir,
			DefaultBarangay: "Central",
			MinPasswordLen:  6,
		},
	}

	approval := NewApprovalService(pending, users, mirrorStore, config, log)
	service := &Service{
		Registration: NewRegistrationService(users, mirrorStore, approval, config, log),
		Approval:     approval,
		User:         NewUserService(users, pending, mirrorStore, log),
		Import:       NewImportService(users, pending, log),
	}

	return &testEnv{
		users:     users,
		pending:   pending,
		mirrorDir: dir,
		mirror:    mirrorStore,
		service:   service,
	}
}
