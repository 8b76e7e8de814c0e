package mysql

import (
	"context"
	"errors"
	"testing"

	userDomain "github.com/Jaswanth86/Credit/internal/domain/user"
	"github.com/Jaswanth86/Credit/pkg/id"
)

func makeUser(userID string, role userDomain.Role) *userDomain.User {
	return &userDomain.User{
		UserID:     userID,
		FullName:   "Asha Rao",
		Email:      userID[:8] + "@example.com",
		Role:       role,
		IsActive:   true,
		IsVerified: true,
	}
}

func TestUserCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := id.NewID32()
	if err := repo.Create(ctx, makeUser(uid, userDomain.RoleUser)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByUserID(ctx, uid)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.UserID != uid || got.Role != userDomain.RoleUser {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByUserID(context.Background(), id.NewID32())
	if !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUserSaveAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := id.NewID32()
	u := makeUser(uid, userDomain.RoleUser)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeUser(id.NewID32(), userDomain.RoleVerifier)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u.Role = userDomain.RoleAdmin
	u.IsActive = false
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list len = %d, want 2", len(all))
	}

	got, err := repo.GetByUserID(ctx, uid)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Role != userDomain.RoleAdmin || got.IsActive {
		t.Fatalf("save not persisted: %+v", got)
	}
}
