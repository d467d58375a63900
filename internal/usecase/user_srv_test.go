package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"greenvault/internal/data/entity"
	"greenvault/internal/dto/request"
)

func registerMember(t *testing.T, env *testEnv, username, barangay string) {
	t.Helper()
	_, err := env.service.Registration.Register(context.Background(), &request.RegisterRequest{
		Username: username,
		Password: "secret1",
		Role:     "Barangay Member",
		Barangay: barangay,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	registerMember(t, env, "m1", "Central")

	_, err := env.service.User.Authenticate(context.Background(), &request.LoginRequest{
		Username: "m1",
		Password: "wrong",
	})
	if !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Verbatim comparison, no hashing
	resp, err := env.service.User.Authenticate(context.Background(), &request.LoginRequest{
		Username: "m1",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if resp.Barangay != "Central" {
		t.Fatalf("unexpected barangay: %s", resp.Barangay)
	}
}

func TestDeleteAccount_Cascade(t *testing.T) {
	env := newTestEnv(t)
	registerMember(t, env, "m1", "Central")
	registerMember(t, env, "m2", "Matiao")

	// Give m1 a leftover pending row to exercise the best-effort cleanup
	env.pending.Create(context.Background(), &entity.PendingRegistration{
		Username: "m1",
		Password: "secret1",
		Role:     "Barangay Member",
		Status:   entity.StatusRejected,
	})

	if err := env.service.User.DeleteAccount(context.Background(), "m1"); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}

	if _, err := env.service.User.Authenticate(context.Background(), &request.LoginRequest{
		Username: "m1",
		Password: "secret1",
	}); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("deleted account still authenticates")
	}

	if exists, _ := env.pending.Exists(context.Background(), "m1"); exists {
		t.Fatalf("pending row survived the cascade")
	}

	data, err := os.ReadFile(filepath.Join(env.mirrorDir, "barangaymember.txt"))
	if err != nil {
		t.Fatalf("read mirror file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "m1|") {
		t.Fatalf("mirror file still lists m1:\n%s", content)
	}
	if !strings.Contains(content, "m2|secret1|Barangay Member|Matiao\n") {
		t.Fatalf("unrelated mirror record lost:\n%s", content)
	}
	if !strings.HasPrefix(content, "# User Accounts for Barangay Member\n") {
		t.Fatalf("mirror header lost:\n%s", content)
	}
}

func TestDeleteAccount_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.service.User.DeleteAccount(context.Background(), "ghost")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAll(t *testing.T) {
	env := newTestEnv(t)
	registerMember(t, env, "m1", "Central")
	registerMember(t, env, "m2", "Matiao")

	accounts, err := env.service.User.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Username != "m1" || accounts[1].Username != "m2" {
		t.Fatalf("unexpected order: %+v", accounts)
	}
}
