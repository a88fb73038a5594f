package storage

import (
	"context"

	"github.com/amorgan/brandhub/internal/models"
)

// Storage is the entity store contract over the five collections. Lookups
// that find nothing return (nil, nil): absence is a result, not an error.
// A non-nil error always means the store itself failed. Entities handed out
// are copies; mutating them does not touch stored state.
type Storage interface {
	// Users. Username uniqueness is a caller invariant checked through
	// GetUserByUsername before CreateUser; create itself never validates.
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// Platforms
	GetPlatform(ctx context.Context, id int) (*models.Platform, error)
	GetPlatformsByUserID(ctx context.Context, userID int) ([]models.Platform, error)
	CreatePlatform(ctx context.Context, platform models.Platform) (*models.Platform, error)
	UpdatePlatform(ctx context.Context, id int, upd models.PlatformUpdate) (*models.Platform, error)
	DeletePlatform(ctx context.Context, id int) (bool, error)

	// Brand settings: at most one row per user, addressed by userId.
	GetBrandSettings(ctx context.Context, userID int) (*models.BrandSettings, error)
	CreateBrandSettings(ctx context.Context, settings models.BrandSettings) (*models.BrandSettings, error)
	UpdateBrandSettings(ctx context.Context, userID int, upd models.BrandSettingsUpdate) (*models.BrandSettings, error)

	// Content posts
	GetContentPost(ctx context.Context, id int) (*models.ContentPost, error)
	GetContentPostsByUserID(ctx context.Context, userID int) ([]models.ContentPost, error)
	GetContentPostsByPlatformID(ctx context.Context, platformID int) ([]models.ContentPost, error)
	CreateContentPost(ctx context.Context, post models.ContentPost) (*models.ContentPost, error)
	UpdateContentPost(ctx context.Context, id int, upd models.ContentPostUpdate) (*models.ContentPost, error)
	DeleteContentPost(ctx context.Context, id int) (bool, error)

	// Analytics
	GetAnalytics(ctx context.Context, id int) (*models.Analytics, error)
	GetAnalyticsByUserID(ctx context.Context, userID int) ([]models.Analytics, error)
	GetAnalyticsByPlatformID(ctx context.Context, platformID int) (*models.Analytics, error)
	CreateAnalytics(ctx context.Context, analytics models.Analytics) (*models.Analytics, error)
	UpdateAnalytics(ctx context.Context, id int, upd models.AnalyticsUpdate) (*models.Analytics, error)
}
