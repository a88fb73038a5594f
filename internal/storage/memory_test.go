package storage

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/amorgan/brandhub/internal/models"
)

func TestSeededDemoUser(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	user, err := s.GetUserByUsername(ctx, "demouser")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if user == nil {
		t.Fatal("Expected seeded demo user, got absent")
	}
	if user.ID != 1 {
		t.Errorf("Expected seeded user id 1, got %d", user.ID)
	}
	if user.Name != "Alex Morgan" || user.Plan != "pro" {
		t.Errorf("Unexpected seeded user: %+v", user)
	}

	absent, err := s.GetUserByUsername(ctx, "nope")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if absent != nil {
		t.Errorf("Expected absent for unknown username, got %+v", absent)
	}
}

func TestCreateUserAssignsIncreasingIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.CreateUser(ctx, models.User{Username: "one", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	second, err := s.CreateUser(ctx, models.User{Username: "two", Password: "pw"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if second.ID <= first.ID {
		t.Errorf("Expected strictly increasing ids, got %d then %d", first.ID, second.ID)
	}
	if first.Plan != models.PlanFree {
		t.Errorf("Expected default plan %q, got %q", models.PlanFree, first.Plan)
	}

	got, err := s.GetUser(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || !reflect.DeepEqual(*got, *first) {
		t.Errorf("GetUser mismatch: created %+v, got %+v", first, got)
	}
}

func TestPlatformCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreatePlatform(ctx, models.Platform{UserID: 1, Name: "Work account", Type: models.PlatformLinkedIn})
	if err != nil {
		t.Fatalf("CreatePlatform failed: %v", err)
	}

	got, err := s.GetPlatform(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPlatform failed: %v", err)
	}
	if got == nil || !reflect.DeepEqual(*got, *created) {
		t.Errorf("Round trip mismatch: %+v vs %+v", created, got)
	}

	name := "Renamed"
	updated, err := s.UpdatePlatform(ctx, created.ID, models.PlatformUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdatePlatform failed: %v", err)
	}
	if updated == nil || updated.Name != "Renamed" {
		t.Errorf("Expected updated name, got %+v", updated)
	}
	if updated.Type != models.PlatformLinkedIn {
		t.Errorf("Update touched fields it should not have: %+v", updated)
	}

	// Unknown id: absent, nothing created
	missing, err := s.UpdatePlatform(ctx, 999, models.PlatformUpdate{Name: &name})
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

	gone, err := s.GetPlatform(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPlatform failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected absent after delete, got %+v", gone)
	}

	again, err := s.DeletePlatform(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeletePlatform failed: %v", err)
	}
	if again {
		t.Error("Expected second delete to report nothing removed")
	}
}

func TestPlatformIDsNeverReused(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p1, _ := s.CreatePlatform(ctx, models.Platform{UserID: 1, Name: "a", Type: models.PlatformTwitter})
	p2, _ := s.CreatePlatform(ctx, models.Platform{UserID: 1, Name: "b", Type: models.PlatformTwitter})
	if _, err := s.DeletePlatform(ctx, p2.ID); err != nil {
		t.Fatalf("DeletePlatform failed: %v", err)
	}
	p3, _ := s.CreatePlatform(ctx, models.Platform{UserID: 1, Name: "c", Type: models.PlatformTwitter})

	if p3.ID <= p2.ID {
		t.Errorf("Expected id after delete to keep increasing: %d, %d, %d", p1.ID, p2.ID, p3.ID)
	}
}

func TestBrandSettingsUpdateRefreshesTimestamp(t *testing.T) {
	s := NewMemoryStore()
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

	formal := 70
	updated, err := s.UpdateBrandSettings(ctx, 1, models.BrandSettingsUpdate{FormalToCasual: &formal})
	if err != nil {
		t.Fatalf("UpdateBrandSettings failed: %v", err)
	}
	if updated == nil {
		t.Fatal("Expected settings, got absent")
	}
	if updated.FormalToCasual != 70 {
		t.Errorf("Expected formalToCasual 70, got %d", updated.FormalToCasual)
	}
	if updated.TechnicalToAccessible != 50 {
		t.Errorf("Partial update touched other sliders: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.CreatedAt) {
		t.Errorf("Expected updatedAt (%v) strictly after createdAt (%v)", updated.UpdatedAt, created.CreatedAt)
	}

	// No settings row for this user
	missing, err := s.UpdateBrandSettings(ctx, 42, models.BrandSettingsUpdate{FormalToCasual: &formal})
	if err != nil {
		t.Fatalf("UpdateBrandSettings failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected absent for unknown user, got %+v", missing)
	}
}

func TestContentPostOwnerFiltersKeepInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i, spec := range []struct {
		userID     int
		platformID int
		content    string
	}{
		{1, 1, "first"},
		{2, 1, "other user"},
		{1, 2, "second"},
		{1, 1, "third"},
	} {
		if _, err := s.CreateContentPost(ctx, models.ContentPost{
			UserID:     spec.userID,
			PlatformID: spec.platformID,
			Content:    spec.content,
		}); err != nil {
			t.Fatalf("CreateContentPost %d failed: %v", i, err)
		}
	}

	mine, err := s.GetContentPostsByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("GetContentPostsByUserID failed: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("Expected 3 posts for user 1, got %d", len(mine))
	}
	for i, want := range []string{"first", "second", "third"} {
		if mine[i].Content != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, mine[i].Content)
		}
	}
	if mine[0].Status != models.PostStatusDraft {
		t.Errorf("Expected default status draft, got %q", mine[0].Status)
	}

	onPlatform, err := s.GetContentPostsByPlatformID(ctx, 1)
	if err != nil {
		t.Fatalf("GetContentPostsByPlatformID failed: %v", err)
	}
	if len(onPlatform) != 3 {
		t.Errorf("Expected 3 posts on platform 1, got %d", len(onPlatform))
	}
}

func TestAnalyticsByPlatform(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreateAnalytics(ctx, models.Analytics{UserID: 1, PlatformID: 7, Followers: 100})
	if err != nil {
		t.Fatalf("CreateAnalytics failed: %v", err)
	}

	got, err := s.GetAnalyticsByPlatformID(ctx, 7)
	if err != nil {
		t.Fatalf("GetAnalyticsByPlatformID failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Errorf("Expected snapshot %d, got %+v", created.ID, got)
	}

	absent, err := s.GetAnalyticsByPlatformID(ctx, 8)
	if err != nil {
		t.Fatalf("GetAnalyticsByPlatformID failed: %v", err)
	}
	if absent != nil {
		t.Errorf("Expected absent for unknown platform, got %+v", absent)
	}

	time.Sleep(5 * time.Millisecond)

	followers := 150
	updated, err := s.UpdateAnalytics(ctx, created.ID, models.AnalyticsUpdate{Followers: &followers})
	if err != nil {
		t.Fatalf("UpdateAnalytics failed: %v", err)
	}
	if updated == nil || updated.Followers != 150 {
		t.Errorf("Expected followers 150, got %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("Expected updatedAt refresh: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
}
