package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"med-reminder/internal/domain/users"
)

func TestUsersRepo_MissingFile_IsEmptyCollection(t *testing.T) {
	repo := NewUsersRepo(filepath.Join(t.TempDir(), "users.json"))

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty collection, got %d", len(all))
	}

	_, err = repo.GetByName(context.Background(), "Alice")
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUsersRepo_CreateAndGet_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	repo := NewUsersRepo(path)

	u := users.User{UUID: "u-1", Name: "Alice", BranchName: "b", BranchAddress: "a", Ailments: "-", PhoneNumber: "1"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// misma colección, instancia nueva: tiene que releer del archivo
	reopened := NewUsersRepo(path)
	got, err := reopened.GetByName(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if got != u {
		t.Fatalf("unexpected user: %+v", got)
	}

	all, err := reopened.List(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 user, got %d err=%v", len(all), err)
	}
}

func TestUsersRepo_StoredRecordWithoutUUID_IsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(`[{"name":"Alice"}]`), 0o644); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	repo := NewUsersRepo(path)
	_, err := repo.List(context.Background())
	if err == nil || errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected rehydration failure, got %v", err)
	}
}

func TestUsersRepo_CorruptFile_IsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	repo := NewUsersRepo(path)
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
