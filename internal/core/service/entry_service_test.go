package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/personal-diary/diary-api/internal/core/domain"
	"github.com/personal-diary/diary-api/internal/core/ports"
)

type stubEntryRepo struct {
	entries map[string]*domain.Entry
	nextID  int
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{entries: make(map[string]*domain.Entry)}
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.Entry) (*domain.Entry, error) {
	r.nextID++
	copy := *e
	copy.ID = "e_" + strconv.Itoa(r.nextID)
	r.entries[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubEntryRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Entry, error) {
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID {
		return nil, domain.ErrEntryNotFound
	}
	copy := *e
	return &copy, nil
}

func (r *stubEntryRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Entry, error) {
	out := make([]*domain.Entry, 0)
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			copy := *e
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) Delete(_ context.Context, id, ownerID string) error {
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func TestEntryService_CreateAndGet(t *testing.T) {
	svc := NewEntryService(newStubEntryRepo(), zerolog.Nop())

	entry, err := svc.Create(context.Background(), ports.CreateEntryInput{
		OwnerID: "u1",
		Title:   "  first  ",
		Content: "dear diary",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if entry.ID == "" || entry.Title != "first" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	got, err := svc.Get(context.Background(), entry.ID, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Content != "dear diary" {
		t.Fatalf("unexpected content: %q", got.Content)
	}
}

func TestEntryService_Create_EmptyContent(t *testing.T) {
	svc := NewEntryService(newStubEntryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateEntryInput{OwnerID: "u1", Content: "   "}); !errors.Is(err, domain.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry, got %v", err)
	}
}

func TestEntryService_OwnerScoping(t *testing.T) {
	repo := newStubEntryRepo()
	svc := NewEntryService(repo, zerolog.Nop())

	entry, err := svc.Create(context.Background(), ports.CreateEntryInput{OwnerID: "u1", Content: "private"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another user sees the entry as missing, for reads and deletes alike.
	if _, err := svc.Get(context.Background(), entry.ID, "u2"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for foreign read, got %v", err)
	}
	if err := svc.Delete(context.Background(), entry.ID, "u2"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for foreign delete, got %v", err)
	}

	entries, err := svc.List(context.Background(), "u2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list for other owner, got %d", len(entries))
	}

	if err := svc.Delete(context.Background(), entry.ID, "u1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestEntryService_MissingOwner(t *testing.T) {
	svc := NewEntryService(newStubEntryRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
