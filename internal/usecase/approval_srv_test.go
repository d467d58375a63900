package usecase

import (
	"context"
	"errors"
	"testing"

	"greenvault/internal/data/entity"
	"greenvault/internal/dto/request"
)

func submitPending(t *testing.T, env *testEnv, username, role, identifier string) {
	t.Helper()
	_, err := env.service.Registration.Register(context.Background(), &request.RegisterRequest{
		Username:   username,
		Password:   "secret1",
		Role:       role,
		Identifier: identifier,
	})
	if err != nil {
		t.Fatalf("submit %s: %v", username, err)
	}
}

func TestApprove_PromotesToAccount(t *testing.T) {
	env := newTestEnv(t)
	submitPending(t, env, "g1", "Garbage Collector", "GC-42")

	account, err := env.service.Approval.Approve(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if account.Role != "Garbage Collector" {
		t.Fatalf("unexpected role: %s", account.Role)
	}
	if account.Barangay != "Central" {
		t.Fatalf("expected default barangay, got %s", account.Barangay)
	}
	if account.Identifier == nil || *account.Identifier != "GC-42" {
		t.Fatalf("expected stored identifier on promoted account")
	}

	// The audit row stays, marked Approved
	row := env.pending.rows["g1"]
	if row == nil || row.Status != entity.StatusApproved {
		t.Fatalf("expected Approved audit row, got %+v", row)
	}

	// Promotion makes the account authenticatable with the stored password
	login, err := env.service.User.Authenticate(context.Background(), &request.LoginRequest{
		Username: "g1",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Authenticate after approve: %v", err)
	}
	if login.Role != "Garbage Collector" {
		t.Fatalf("unexpected role after approve: %s", login.Role)
	}
}

func TestApprove_AbsentOrNotPending(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.service.Approval.Approve(context.Background(), "ghost"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent username, got %v", err)
	}

	submitPending(t, env, "g1", "Garbage Collector", "GC-42")
	if err := env.service.Approval.Reject(context.Background(), "g1"); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	// Terminal state: a rejected row cannot be approved
	if _, err := env.service.Approval.Approve(context.Background(), "g1"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for rejected row, got %v", err)
	}
}

func TestReject_NeverPromotes(t *testing.T) {
	env := newTestEnv(t)
	submitPending(t, env, "c1", "City Officer", "CO-7")

	if err := env.service.Approval.Reject(context.Background(), "c1"); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	if len(env.users.accounts) != 0 {
		t.Fatalf("reject must not create an account")
	}
	row := env.pending.rows["c1"]
	if row == nil || row.Status != entity.StatusRejected {
		t.Fatalf("expected Rejected row, got %+v", row)
	}
}

func TestListPending_ExcludesAdminAndFilters(t *testing.T) {
	env := newTestEnv(t)
	submitPending(t, env, "g1", "Garbage Collector", "GC-1")
	submitPending(t, env, "c1", "City Officer", "CO-1")

	// A legacy Admin pending row must be hidden from the queue
	env.pending.Create(context.Background(), &entity.PendingRegistration{
		Username: "old-admin",
		Password: "secret1",
		Role:     entity.RoleAdmin,
		Status:   entity.StatusPending,
	})

	all, err := env.service.Approval.ListPending(context.Background(), "")
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 pending rows, got %d", len(all))
	}
	for _, p := range all {
		if p.Role == entity.RoleAdmin {
			t.Fatalf("Admin row leaked into review queue")
		}
	}

	officers, err := env.service.Approval.ListPending(context.Background(), "City Officer")
	if err != nil {
		t.Fatalf("ListPending with filter returned error: %v", err)
	}
	if len(officers) != 1 || officers[0].Username != "c1" {
		t.Fatalf("unexpected filtered result: %+v", officers)
	}
}

func TestDeletePending(t *testing.T) {
	env := newTestEnv(t)
	submitPending(t, env, "g1", "Garbage Collector", "GC-1")

	if err := env.service.Approval.Delete(context.Background(), "g1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := env.pending.rows["g1"]; ok {
		t.Fatalf("pending row still present after delete")
	}

	if err := env.service.Approval.Delete(context.Background(), "g1"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSubmitForApproval_DuplicatePending(t *testing.T) {
	env := newTestEnv(t)
	submitPending(t, env, "g1", "Garbage Collector", "GC-1")

	err := env.service.Approval.SubmitForApproval(context.Background(), "g1", "other", "Garbage Collector", "GC-2")
	if !errors.Is(err, entity.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}
