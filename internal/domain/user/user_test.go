package user

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uint]*User), nextID: 1}
}

func (f *fakeRepo) FindByIssuerAndSubject(ctx context.Context, issuer, subject string) (*User, error) {
	for _, u := range f.users {
		if u.Issuer == issuer && u.Subject == subject {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	return f.users[id], nil
}
func (f *fakeRepo) Upsert(ctx context.Context, u *User) (*User, error) {
	if existing, _ := f.FindByIssuerAndSubject(ctx, u.Issuer, u.Subject); existing != nil {
		existing.Username = u.Username
		existing.Email = u.Email
		return existing, nil
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return u, nil
}
func (f *fakeRepo) UpdateName(ctx context.Context, id uint, name string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Name = &name
	return nil
}

func TestEnsureUserRequiresIssuerAndSubject(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.EnsureUser(context.Background(), Identity{Subject: "sub"}); !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}
	if _, err := svc.EnsureUser(context.Background(), Identity{Issuer: "iss"}); !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}
}

func TestEnsureUserDefaultsProvider(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.EnsureUser(context.Background(), Identity{Issuer: "iss", Subject: "sub"})
	if err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	if u.AuthProvider != "oidc" {
		t.Fatalf("expected oidc default provider, got %q", u.AuthProvider)
	}
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	svc := NewService(newFakeRepo())

	first, err := svc.EnsureUser(context.Background(), Identity{Provider: "guest", Issuer: "autocart-guest", Subject: "g-1"})
	if err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	second, err := svc.EnsureUser(context.Background(), Identity{Provider: "guest", Issuer: "autocart-guest", Subject: "g-1"})
	if err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same identity must resolve to the same user, got %d and %d", first.ID, second.ID)
	}
}

func TestSetNameAndGetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	u, err := svc.EnsureUser(context.Background(), Identity{Issuer: "iss", Subject: "sub"})
	if err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	if err := svc.SetName(context.Background(), u.ID, "Alice"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}

	got, err := svc.GetByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name == nil || *got.Name != "Alice" {
		t.Fatalf("expected persisted name, got %v", got.Name)
	}
}
