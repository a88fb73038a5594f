package storage

import (
	"context"
	"time"

	"github.com/amorgan/brandhub/internal/models"
)

// MemoryStore is the default Storage implementation: five arena tables, no
// I/O, state lost on restart. Context is accepted for interface parity but
// never blocks.
type MemoryStore struct {
	users         *table[models.User]
	platforms     *table[models.Platform]
	brandSettings *table[models.BrandSettings]
	contentPosts  *table[models.ContentPost]
	analytics     *table[models.Analytics]

	now func() time.Time
}

var _ Storage = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store seeded with the demo user.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:         newTable[models.User](),
		platforms:     newTable[models.Platform](),
		brandSettings: newTable[models.BrandSettings](),
		contentPosts:  newTable[models.ContentPost](),
		analytics:     newTable[models.Analytics](),
		now:           time.Now,
	}

	s.users.insert(func(id int) models.User {
		return models.User{
			ID:        id,
			Username:  "demouser",
			Password:  "password123",
			Name:      "Alex Morgan",
			Email:     "alex@example.com",
			Plan:      "pro",
			CreatedAt: s.now(),
		}
	})

	return s
}

// Users

func (s *MemoryStore) GetUser(_ context.Context, id int) (*models.User, error) {
	if user, ok := s.users.get(id); ok {
		return &user, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if user, ok := s.users.find(func(u models.User) bool { return u.Username == username }); ok {
		return &user, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	if user.Plan == "" {
		user.Plan = models.PlanFree
	}
	created := s.users.insert(func(id int) models.User {
		user.ID = id
		user.CreatedAt = s.now()
		return user
	})
	return &created, nil
}

// Platforms

func (s *MemoryStore) GetPlatform(_ context.Context, id int) (*models.Platform, error) {
	if platform, ok := s.platforms.get(id); ok {
		return &platform, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetPlatformsByUserID(_ context.Context, userID int) ([]models.Platform, error) {
	return s.platforms.filter(func(p models.Platform) bool { return p.UserID == userID }), nil
}

func (s *MemoryStore) CreatePlatform(_ context.Context, platform models.Platform) (*models.Platform, error) {
	created := s.platforms.insert(func(id int) models.Platform {
		platform.ID = id
		platform.CreatedAt = s.now()
		return platform
	})
	return &created, nil
}

func (s *MemoryStore) UpdatePlatform(_ context.Context, id int, upd models.PlatformUpdate) (*models.Platform, error) {
	platform, ok := s.platforms.update(id, func(p models.Platform) models.Platform {
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Type != nil {
			p.Type = *upd.Type
		}
		if upd.Connected != nil {
			p.Connected = *upd.Connected
		}
		if upd.AccessToken != nil {
			p.AccessToken = *upd.AccessToken
		}
		if upd.RefreshToken != nil {
			p.RefreshToken = *upd.RefreshToken
		}
		if upd.TokenExpiry != nil {
			p.TokenExpiry = upd.TokenExpiry
		}
		if upd.Settings != nil {
			p.Settings = upd.Settings
		}
		return p
	})
	if !ok {
		return nil, nil
	}
	return &platform, nil
}

func (s *MemoryStore) DeletePlatform(_ context.Context, id int) (bool, error) {
	return s.platforms.remove(id), nil
}

// Brand settings

func (s *MemoryStore) GetBrandSettings(_ context.Context, userID int) (*models.BrandSettings, error) {
	if settings, ok := s.brandSettings.find(func(b models.BrandSettings) bool { return b.UserID == userID }); ok {
		return &settings, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateBrandSettings(_ context.Context, settings models.BrandSettings) (*models.BrandSettings, error) {
	created := s.brandSettings.insert(func(id int) models.BrandSettings {
		settings.ID = id
		now := s.now()
		settings.CreatedAt = now
		settings.UpdatedAt = now
		return settings
	})
	return &created, nil
}

func (s *MemoryStore) UpdateBrandSettings(_ context.Context, userID int, upd models.BrandSettingsUpdate) (*models.BrandSettings, error) {
	settings, ok := s.brandSettings.updateWhere(
		func(b models.BrandSettings) bool { return b.UserID == userID },
		func(b models.BrandSettings) models.BrandSettings {
			if upd.FormalToCasual != nil {
				b.FormalToCasual = *upd.FormalToCasual
			}
			if upd.TechnicalToAccessible != nil {
				b.TechnicalToAccessible = *upd.TechnicalToAccessible
			}
			if upd.ReservedToEnthusiastic != nil {
				b.ReservedToEnthusiastic = *upd.ReservedToEnthusiastic
			}
			if upd.TraditionalToInnovative != nil {
				b.TraditionalToInnovative = *upd.TraditionalToInnovative
			}
			if upd.ContentPillars != nil {
				b.ContentPillars = upd.ContentPillars
			}
			b.UpdatedAt = s.now()
			return b
		},
	)
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

// Content posts

func (s *MemoryStore) GetContentPost(_ context.Context, id int) (*models.ContentPost, error) {
	if post, ok := s.contentPosts.get(id); ok {
		return &post, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetContentPostsByUserID(_ context.Context, userID int) ([]models.ContentPost, error) {
	return s.contentPosts.filter(func(p models.ContentPost) bool { return p.UserID == userID }), nil
}

func (s *MemoryStore) GetContentPostsByPlatformID(_ context.Context, platformID int) ([]models.ContentPost, error) {
	return s.contentPosts.filter(func(p models.ContentPost) bool { return p.PlatformID == platformID }), nil
}

func (s *MemoryStore) CreateContentPost(_ context.Context, post models.ContentPost) (*models.ContentPost, error) {
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	created := s.contentPosts.insert(func(id int) models.ContentPost {
		post.ID = id
		now := s.now()
		post.CreatedAt = now
		post.UpdatedAt = now
		return post
	})
	return &created, nil
}

func (s *MemoryStore) UpdateContentPost(_ context.Context, id int, upd models.ContentPostUpdate) (*models.ContentPost, error) {
	post, ok := s.contentPosts.update(id, func(p models.ContentPost) models.ContentPost {
		if upd.PlatformID != nil {
			p.PlatformID = *upd.PlatformID
		}
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Content != nil {
			p.Content = *upd.Content
		}
		if upd.Tone != nil {
			p.Tone = *upd.Tone
		}
		if upd.Length != nil {
			p.Length = *upd.Length
		}
		if upd.Type != nil {
			p.Type = *upd.Type
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.ScheduledAt != nil {
			p.ScheduledAt = upd.ScheduledAt
		}
		if upd.PublishedAt != nil {
			p.PublishedAt = upd.PublishedAt
		}
		p.UpdatedAt = s.now()
		return p
	})
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (s *MemoryStore) DeleteContentPost(_ context.Context, id int) (bool, error) {
	return s.contentPosts.remove(id), nil
}

// Analytics

func (s *MemoryStore) GetAnalytics(_ context.Context, id int) (*models.Analytics, error) {
	if analytics, ok := s.analytics.get(id); ok {
		return &analytics, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetAnalyticsByUserID(_ context.Context, userID int) ([]models.Analytics, error) {
	return s.analytics.filter(func(a models.Analytics) bool { return a.UserID == userID }), nil
}

func (s *MemoryStore) GetAnalyticsByPlatformID(_ context.Context, platformID int) (*models.Analytics, error) {
	if analytics, ok := s.analytics.find(func(a models.Analytics) bool { return a.PlatformID == platformID }); ok {
		return &analytics, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateAnalytics(_ context.Context, analytics models.Analytics) (*models.Analytics, error) {
	created := s.analytics.insert(func(id int) models.Analytics {
		analytics.ID = id
		analytics.UpdatedAt = s.now()
		return analytics
	})
	return &created, nil
}

func (s *MemoryStore) UpdateAnalytics(_ context.Context, id int, upd models.AnalyticsUpdate) (*models.Analytics, error) {
	analytics, ok := s.analytics.update(id, func(a models.Analytics) models.Analytics {
		if upd.Followers != nil {
			a.Followers = *upd.Followers
		}
		if upd.Engagement != nil {
			a.Engagement = upd.Engagement
		}
		if upd.PostPerformance != nil {
			a.PostPerformance = upd.PostPerformance
		}
		if upd.GrowthTrends != nil {
			a.GrowthTrends = upd.GrowthTrends
		}
		a.UpdatedAt = s.now()
		return a
	})
	if !ok {
		return nil, nil
	}
	return &analytics, nil
}
