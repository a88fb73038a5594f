package storage

import (
	"context"
	"errors"
	"time"

	"github.com/amorgan/brandhub/internal/models"
	"gorm.io/gorm"
)

// GormStore implements Storage on a GORM handle. The server runs it against
// an in-memory sqlite database, keeping the no-durability contract while the
// ids, insertion order and merge semantics match the memory store.
type GormStore struct {
	db *gorm.DB
}

var _ Storage = (*GormStore)(nil)

// NewGormStore wraps an already connected and migrated database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// first loads one row by condition, mapping ErrRecordNotFound to absent.
func first[T any](db *gorm.DB, dest *T, query string, args ...interface{}) (*T, error) {
	err := db.Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dest, nil
}

// Users

func (s *GormStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	return first(s.db.WithContext(ctx), &user, "id = ?", id)
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	return first(s.db.WithContext(ctx), &user, "username = ?", username)
}

func (s *GormStore) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.Plan == "" {
		user.Plan = models.PlanFree
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Platforms

func (s *GormStore) GetPlatform(ctx context.Context, id int) (*models.Platform, error) {
	var platform models.Platform
	return first(s.db.WithContext(ctx), &platform, "id = ?", id)
}

func (s *GormStore) GetPlatformsByUserID(ctx context.Context, userID int) ([]models.Platform, error) {
	var platforms []models.Platform
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&platforms).Error
	return platforms, err
}

func (s *GormStore) CreatePlatform(ctx context.Context, platform models.Platform) (*models.Platform, error) {
	if err := s.db.WithContext(ctx).Create(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

func (s *GormStore) UpdatePlatform(ctx context.Context, id int, upd models.PlatformUpdate) (*models.Platform, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Type != nil {
		updates["type"] = *upd.Type
	}
	if upd.Connected != nil {
		updates["connected"] = *upd.Connected
	}
	if upd.AccessToken != nil {
		updates["access_token"] = *upd.AccessToken
	}
	if upd.RefreshToken != nil {
		updates["refresh_token"] = *upd.RefreshToken
	}
	if upd.TokenExpiry != nil {
		updates["token_expiry"] = *upd.TokenExpiry
	}
	if upd.Settings != nil {
		updates["settings"] = upd.Settings
	}

	var platform models.Platform
	found, err := first(s.db.WithContext(ctx), &platform, "id = ?", id)
	if found == nil || err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&platform).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &platform, nil
}

func (s *GormStore) DeletePlatform(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Platform{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Brand settings

func (s *GormStore) GetBrandSettings(ctx context.Context, userID int) (*models.BrandSettings, error) {
	var settings models.BrandSettings
	return first(s.db.WithContext(ctx), &settings, "user_id = ?", userID)
}

func (s *GormStore) CreateBrandSettings(ctx context.Context, settings models.BrandSettings) (*models.BrandSettings, error) {
	if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *GormStore) UpdateBrandSettings(ctx context.Context, userID int, upd models.BrandSettingsUpdate) (*models.BrandSettings, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if upd.FormalToCasual != nil {
		updates["formal_to_casual"] = *upd.FormalToCasual
	}
	if upd.TechnicalToAccessible != nil {
		updates["technical_to_accessible"] = *upd.TechnicalToAccessible
	}
	if upd.ReservedToEnthusiastic != nil {
		updates["reserved_to_enthusiastic"] = *upd.ReservedToEnthusiastic
	}
	if upd.TraditionalToInnovative != nil {
		updates["traditional_to_innovative"] = *upd.TraditionalToInnovative
	}
	if upd.ContentPillars != nil {
		updates["content_pillars"] = upd.ContentPillars
	}

	var settings models.BrandSettings
	found, err := first(s.db.WithContext(ctx), &settings, "user_id = ?", userID)
	if found == nil || err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&settings).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Content posts

func (s *GormStore) GetContentPost(ctx context.Context, id int) (*models.ContentPost, error) {
	var post models.ContentPost
	return first(s.db.WithContext(ctx), &post, "id = ?", id)
}

func (s *GormStore) GetContentPostsByUserID(ctx context.Context, userID int) ([]models.ContentPost, error) {
	var posts []models.ContentPost
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&posts).Error
	return posts, err
}

func (s *GormStore) GetContentPostsByPlatformID(ctx context.Context, platformID int) ([]models.ContentPost, error) {
	var posts []models.ContentPost
	err := s.db.WithContext(ctx).Where("platform_id = ?", platformID).Order("id").Find(&posts).Error
	return posts, err
}

func (s *GormStore) CreateContentPost(ctx context.Context, post models.ContentPost) (*models.ContentPost, error) {
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) UpdateContentPost(ctx context.Context, id int, upd models.ContentPostUpdate) (*models.ContentPost, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if upd.PlatformID != nil {
		updates["platform_id"] = *upd.PlatformID
	}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Content != nil {
		updates["content"] = *upd.Content
	}
	if upd.Tone != nil {
		updates["tone"] = *upd.Tone
	}
	if upd.Length != nil {
		updates["length"] = *upd.Length
	}
	if upd.Type != nil {
		updates["type"] = *upd.Type
	}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.ScheduledAt != nil {
		updates["scheduled_at"] = *upd.ScheduledAt
	}
	if upd.PublishedAt != nil {
		updates["published_at"] = *upd.PublishedAt
	}

	var post models.ContentPost
	found, err := first(s.db.WithContext(ctx), &post, "id = ?", id)
	if found == nil || err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) DeleteContentPost(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.ContentPost{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Analytics

func (s *GormStore) GetAnalytics(ctx context.Context, id int) (*models.Analytics, error) {
	var analytics models.Analytics
	return first(s.db.WithContext(ctx), &analytics, "id = ?", id)
}

func (s *GormStore) GetAnalyticsByUserID(ctx context.Context, userID int) ([]models.Analytics, error) {
	var analytics []models.Analytics
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&analytics).Error
	return analytics, err
}

func (s *GormStore) GetAnalyticsByPlatformID(ctx context.Context, platformID int) (*models.Analytics, error) {
	var analytics models.Analytics
	return first(s.db.WithContext(ctx), &analytics, "platform_id = ?", platformID)
}

func (s *GormStore) CreateAnalytics(ctx context.Context, analytics models.Analytics) (*models.Analytics, error) {
	if err := s.db.WithContext(ctx).Create(&analytics).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (s *GormStore) UpdateAnalytics(ctx context.Context, id int, upd models.AnalyticsUpdate) (*models.Analytics, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if upd.Followers != nil {
		updates["followers"] = *upd.Followers
	}
	if upd.Engagement != nil {
		updates["engagement"] = upd.Engagement
	}
	if upd.PostPerformance != nil {
		updates["post_performance"] = upd.PostPerformance
	}
	if upd.GrowthTrends != nil {
		updates["growth_trends"] = upd.GrowthTrends
	}

	var analytics models.Analytics
	found, err := first(s.db.WithContext(ctx), &analytics, "id = ?", id)
	if found == nil || err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&analytics).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}
