package storage

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amorgan/brandhub/internal/models"
)

// setupGormStore opens a fresh in-memory sqlite database with the schema
// migrated.
func setupGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Platform{},
		&models.BrandSettings{},
		&models.ContentPost{},
		&models.Analytics{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return NewGormStore(db)
}

func TestGormUserRoundTrip(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.User{Username: "demouser", Password: "pw", Name: "Alex Morgan"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}
	if created.Plan != models.PlanFree {
		t.Errorf("Expected default plan %q, got %q", models.PlanFree, created.Plan)
	}

	byName, err := s.GetUserByUsername(ctx, "demouser")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if byName == nil || byName.ID != created.ID || byName.Name != "Alex Morgan" {
		t.Errorf("Round trip mismatch: %+v", byName)
	}

	absent, err := s.GetUser(ctx, 999)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if absent != nil {
		t.Errorf("Expected absent for unknown id, got %+v", absent)
	}
}

func TestGormPlatformUpdateAndDelete(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	created, err := s.CreatePlatform(ctx, models.Platform{UserID: 1, Name: "Main", Type: models.PlatformLinkedIn})
	if err != nil {
		t.Fatalf("CreatePlatform failed: %v", err)
	}

	connected := true
	token := "tok-123"
	updated, err := s.UpdatePlatform(ctx, created.ID, models.PlatformUpdate{Connected: &connected, AccessToken: &token})
	if err != nil {
		t.Fatalf("UpdatePlatform failed: %v", err)
	}
	if updated == nil || !updated.Connected || updated.AccessToken != "tok-123" {
		t.Errorf("Expected connected platform with token, got %+v", updated)
	}
	if updated.Name != "Main" {
		t.Errorf("Partial update touched name: %+v", updated)
	}

	missing, err := s.UpdatePlatform(ctx, 999, models.PlatformUpdate{Connected: &connected})
	if err != nil {
		t.Fatalf("UpdatePlatform failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected absent for unknown id, got %+v", missing)
	}

	deleted, err := s.DeletePlatform(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeletePlatform failed: %v", err)
	}
	if !deleted {
		t.Error("Expected delete to report removal")
	}
	again, err := s.DeletePlatform(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeletePlatform failed: %v", err)
	}
	if again {
		t.Error("Expected second delete to report nothing removed")
	}
}

func TestGormBrandSettingsUpdateRefreshesTimestamp(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	created, err := s.CreateBrandSettings(ctx, models.BrandSettings{
		UserID:                  1,
		FormalToCasual:          50,
		TechnicalToAccessible:   50,
		ReservedToEnthusiastic:  50,
		TraditionalToInnovative: 50,
	})
	if err != nil {
		t.Fatalf("CreateBrandSettings failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	enthusiastic := 80
	updated, err := s.UpdateBrandSettings(ctx, 1, models.BrandSettingsUpdate{ReservedToEnthusiastic: &enthusiastic})
	if err != nil {
		t.Fatalf("UpdateBrandSettings failed: %v", err)
	}
	if updated == nil || updated.ReservedToEnthusiastic != 80 {
		t.Errorf("Expected reservedToEnthusiastic 80, got %+v", updated)
	}
	if updated.FormalToCasual != 50 {
		t.Errorf("Partial update touched other sliders: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.CreatedAt) {
		t.Errorf("Expected updatedAt (%v) after createdAt (%v)", updated.UpdatedAt, created.CreatedAt)
	}
}

func TestGormContentPostsByOwnerOrdered(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		if _, err := s.CreateContentPost(ctx, models.ContentPost{UserID: 1, PlatformID: 1, Content: content}); err != nil {
			t.Fatalf("CreateContentPost failed: %v", err)
		}
	}
	if _, err := s.CreateContentPost(ctx, models.ContentPost{UserID: 2, PlatformID: 1, Content: "other"}); err != nil {
		t.Fatalf("CreateContentPost failed: %v", err)
	}

	posts, err := s.GetContentPostsByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("GetContentPostsByUserID failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"first", "second", "third"} {
		if posts[i].Content != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, posts[i].Content)
		}
	}
	if posts[0].Status != models.PostStatusDraft {
		t.Errorf("Expected default status draft, got %q", posts[0].Status)
	}
}

func TestGormAnalyticsByPlatform(t *testing.T) {
	s := setupGormStore(t)
	ctx := context.Background()

	created, err := s.CreateAnalytics(ctx, models.Analytics{UserID: 1, PlatformID: 3, Followers: 500})
	if err != nil {
		t.Fatalf("CreateAnalytics failed: %v", err)
	}

	got, err := s.GetAnalyticsByPlatformID(ctx, 3)
	if err != nil {
		t.Fatalf("GetAnalyticsByPlatformID failed: %v", err)
	}
	if got == nil || got.ID != created.ID || got.Followers != 500 {
		t.Errorf("Expected snapshot for platform 3, got %+v", got)
	}

	followers := 650
	updated, err := s.UpdateAnalytics(ctx, created.ID, models.AnalyticsUpdate{Followers: &followers})
	if err != nil {
		t.Fatalf("UpdateAnalytics failed: %v", err)
	}
	if updated == nil || updated.Followers != 650 {
		t.Errorf("Expected followers 650, got %+v", updated)
	}
}
