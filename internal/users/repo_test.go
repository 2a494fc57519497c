package users

import (
	"context"
	"errors"
	"testing"

	"github.com/carebridge/eldercare-backend/pkg/db/models"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func seedGuardian(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()
	guardian, err := repo.Create(context.Background(), CreateUserDTO{
		FullName:     "Guardian " + username,
		Username:     username,
		PasswordHash: "hash",
		Role:         enums.RoleGuardian,
	})
	if err != nil {
		t.Fatalf("seed guardian: %v", err)
	}
	return guardian
}

func seedElder(t *testing.T, repo *Repository, username string, guardianID int64) *models.User {
	t.Helper()
	elder, err := repo.Create(context.Background(), CreateUserDTO{
		FullName:     "Elder " + username,
		Age:          intPtr(80),
		Username:     username,
		Phone:        strPtr("555-0101"),
		PasswordHash: "hash",
		Role:         enums.RoleElder,
		GuardianID:   &guardianID,
	})
	if err != nil {
		t.Fatalf("seed elder: %v", err)
	}
	return elder
}

func TestCreateAndFindByUsername(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created := seedGuardian(t, repo, "gwen")
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	found, err := repo.FindByUsername(ctx, "gwen")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, found.ID)
	}
	if found.GuardianID != nil {
		t.Fatal("guardian rows must carry a nil guardian_id")
	}

	if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}

func TestFindByUsernameAndRole(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	guardian := seedGuardian(t, repo, "gwen")
	seedElder(t, repo, "edna", guardian.ID)

	if _, err := repo.FindByUsernameAndRole(ctx, "edna", enums.RoleElder); err != nil {
		t.Fatalf("expected elder match: %v", err)
	}
	// role is part of the match key
	if _, err := repo.FindByUsernameAndRole(ctx, "edna", enums.RoleGuardian); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected role mismatch to miss, got %v", err)
	}
}

func TestListEldersByGuardianScoping(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	gwen := seedGuardian(t, repo, "gwen")
	hank := seedGuardian(t, repo, "hank")
	seedElder(t, repo, "edna", gwen.ID)
	seedElder(t, repo, "earl", gwen.ID)
	seedElder(t, repo, "eric", hank.ID)

	elders, err := repo.ListEldersByGuardian(ctx, gwen.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(elders) != 2 {
		t.Fatalf("expected 2 elders for gwen, got %d", len(elders))
	}
	for _, elder := range elders {
		if elder.GuardianID == nil || *elder.GuardianID != gwen.ID {
			t.Fatalf("listed elder %q not bound to gwen", elder.Username)
		}
	}

	elders, err = repo.ListEldersByGuardian(ctx, hank.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(elders) != 1 || elders[0].Username != "eric" {
		t.Fatalf("expected only eric for hank, got %+v", elders)
	}
}

func TestUpdatePassword(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	seedGuardian(t, repo, "gwen")
	if err := repo.UpdatePassword(ctx, "gwen", "new-hash"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, err := repo.FindByUsername(ctx, "gwen")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.PasswordHash != "new-hash" {
		t.Fatalf("expected overwritten hash, got %q", found.PasswordHash)
	}
}

func TestProfileFromModelExcludesPassword(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	guardian := seedGuardian(t, repo, "gwen")

	profile := ProfileFromModel(guardian)
	if profile == nil {
		t.Fatal("expected profile")
	}
	if profile.Username != "gwen" || profile.Role != enums.RoleGuardian {
		t.Fatalf("unexpected profile %+v", profile)
	}
}
